package flaget

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dzonerzy/go-flaget/internal/tokenize"
)

func TestParseFlat(t *testing.T) {
	tests := []struct {
		name string
		line string
		cfg  Config
		want map[string]Value
	}{
		{
			name: "long flag with value",
			line: "--name value",
			want: map[string]Value{"name": String("value"), "_": Strings()},
		},
		{
			name: "grouped short flags",
			line: "-abc",
			want: map[string]Value{"a": Bool(true), "b": Bool(true), "c": Bool(true), "_": Strings()},
		},
		{
			name: "multi value flags",
			line: "--tag a b --tag=c",
			cfg:  Config{Arrays: []string{"tag"}},
			want: map[string]Value{"tag": Strings("a", "b", "c"), "_": Strings()},
		},
		{
			name: "terminator folds into positionals",
			line: "a --no-x -- b --c",
			want: map[string]Value{"no-x": Bool(true), "noX": Bool(true), "_": Strings("a", "b", "--c")},
		},
		{
			name: "booleans and args are ignored",
			line: "--verbose file",
			cfg:  Config{Booleans: []string{"verbose"}, Args: []string{"input"}},
			want: map[string]Value{"verbose": String("file"), "_": Strings()},
		},
		{
			name: "inline value keeps later equals signs",
			line: "--k=a=b --opt==x",
			want: map[string]Value{"k": String("a=b"), "opt": String("=x"), "_": Strings()},
		},
		{
			name: "empty token is a value",
			line: "--tag '' x -n '' y",
			cfg:  Config{Arrays: []string{"tag"}},
			want: map[string]Value{"tag": Strings("", "x"), "n": String(""), "_": Strings("y")},
		},
		{
			name: "aliases and defaults",
			line: "-f a.js --files b.js",
			cfg: Config{
				Aliases:  map[string]string{"f": "files"},
				Arrays:   []string{"files"},
				Defaults: map[string]any{"mode": "production"},
			},
			want: map[string]Value{"files": Strings("a.js", "b.js"), "mode": String("production"), "_": Strings()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFlat(tokenize.MustSplit(tt.line), tt.cfg)
			if diff := cmp.Diff(tt.want, got.Map()); diff != "" {
				t.Errorf("flat mismatch (-want +got):\n%s", diff)
			}
			if keys := got.Keys(); keys[0] != PositionalKey {
				t.Errorf("Expected %q to be the first key, got %v", PositionalKey, keys)
			}
		})
	}
}
