// Package flaget parses command-line tokens into flags, positionals and a
// tail, without a flag schema.
//
// Every flag is accepted. A flag followed by a non-flag token takes it as
// its value; otherwise it is true:
//
//	res := flaget.Parse(flaget.Config{
//	    Tokens:  []string{"build", "-abc", "--mode=production", "-f", "a.js", "b.js", "--", "input.txt"},
//	    Aliases: map[string]string{"f": "files"},
//	    Arrays:  []string{"files"},
//	})
//	// res.Flags:       a=true b=true c=true mode="production" files=["a.js" "b.js"]
//	// res.Positionals: ["build"]
//	// res.Tail:        ["input.txt"]
//
// # Flag Syntax
//
//   - --key value, --key=value: long flag with a value
//   - --key: long flag without a value, set to true
//   - --no-key: sets key to false
//   - -f value, -f: single short flag
//   - -abc: grouped short flags, each set to true; groups never take values
//   - --: ends flag parsing, the remaining tokens become the tail
//
// A token starting with "-" is never taken as a value, so "--offset -5"
// sets offset to true and then sees a short flag "5".
//
// # Values
//
// Values are coerced: "true" and "false" become booleans, integer and
// decimal literals become numbers, anything else stays a string. Keys with
// hyphens are also written under their camelCase form ("dry-run" and
// "dryRun").
//
// # Configuration
//
// Config and the fluent Parser describe aliases (one hop, "f" -> "files"),
// array keys that collect every following value and accumulate across
// occurrences, boolean keys that never take a value, defaults for keys the
// command line did not set, and named positionals where the last name may
// be variadic:
//
//	p := flaget.New().
//	    Alias("f", "force").
//	    Boolean("force").
//	    Args("command", "remote", "...files")
//	res := p.Parse(os.Args[1:])
//	files := res.ArgStrings("files")
//
// Decode copies a Result into a tagged struct for typed access.
package flaget
