// Package pattern implements typed search over text.
//
// A pattern is a value that knows how to find itself in a string and
// declares what a match looks like. Every variant fixes exactly one match
// type through its Search method:
//
//	pos, ok := pattern.Char('f').Search("asdf asdf asdf")      // Position 3
//	span, ok := pattern.Substring("df").Search("asdf")         // Span{2, 4}
//	idx, ok := pattern.Word("asdf").Search("qwer asdf")        // WordIndex 1
//	all, ok := pattern.Occurrences('a').Search("asdf asdf")    // {0, 5}
//
// Code that is generic over patterns accepts a Pattern[M] and gets M back
// without naming it at the call site:
//
//	func report[M any](p pattern.Pattern[M], texts []string) {
//	    if hit, ok := pattern.First(p, texts); ok {
//	        fmt.Println(hit.Text, hit.Match)
//	    }
//	}
//
// All positions are rune indexes, never byte offsets, so results stay correct
// for multi-byte UTF-8 input. Searches are pure: they never mutate the pattern
// or the text and make a single left-to-right pass.
package pattern
