package flaget

import "strings"

// CamelCase converts a kebab-case key to camelCase: every hyphen followed
// by a lowercase ASCII letter is replaced by the uppercased letter.
// "dash-flag" becomes "dashFlag"; "foo--bar" becomes "foo-Bar".
func CamelCase(key string) string {
	if strings.IndexByte(key, '-') < 0 {
		return key
	}
	var sb strings.Builder
	sb.Grow(len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c == '-' && i+1 < len(key) && key[i+1] >= 'a' && key[i+1] <= 'z' {
			sb.WriteByte(key[i+1] - 'a' + 'A')
			i++
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// resolve maps key through the alias table. One hop only: an alias whose
// target is itself an alias is not followed further.
func (s *scanner) resolve(key string) string {
	if canonical, ok := s.p.aliases[key]; ok {
		return canonical
	}
	return key
}

// writeMirrored stores v under key and, when it differs, under the
// camelCase form of key.
func (s *scanner) writeMirrored(key string, v Value) {
	key = s.keys.Intern(key)
	s.flags.Set(key, v)
	if camel := s.keys.Camel(key, CamelCase); camel != key {
		s.flags.Set(camel, v)
	}
}

// appendMirrored concatenates values onto whatever list is stored under key
// and writes the result mirrored. A non-list value left by an earlier write
// (a negation, for instance) is discarded.
func (s *scanner) appendMirrored(key string, values []Value) {
	var prev []Value
	if v, ok := s.flags.Get(key); ok {
		prev, _ = v.AsList()
	}
	merged := make([]Value, 0, len(prev)+len(values))
	merged = append(merged, prev...)
	merged = append(merged, values...)
	s.writeMirrored(key, Value{kind: KindList, list: merged})
}
