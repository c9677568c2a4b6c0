package pattern

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Substring matches a contiguous run of runes.
//
// The empty substring matches every text, including the empty one, at
// Span{0, 0}.
type Substring string

var _ Pattern[Span] = Substring("")

// Search returns the rune span of the first occurrence of s in text.
func (s Substring) Search(text string) (Span, bool) {
	i := strings.Index(text, string(s))
	if i < 0 {
		return Span{}, false
	}
	start := Position(utf8.RuneCountInString(text[:i]))
	return Span{Start: start, End: start + Position(utf8.RuneCountInString(string(s)))}, true
}

// String implements fmt.Stringer.
func (s Substring) String() string { return fmt.Sprintf("substring(%q)", string(s)) }

// Word matches a whole whitespace-delimited field.
// Fields are never empty, so the empty Word never matches.
type Word string

var _ Pattern[WordIndex] = Word("")

// Search returns the index of the first field of text equal to w.
func (w Word) Search(text string) (WordIndex, bool) {
	idx := 0
	for field := range strings.FieldsSeq(text) {
		if field == string(w) {
			return WordIndex(idx), true
		}
		idx++
	}
	return 0, false
}

// String implements fmt.Stringer.
func (w Word) String() string { return fmt.Sprintf("word(%q)", string(w)) }
