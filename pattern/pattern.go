package pattern

import "fmt"

// Pattern is implemented by values that can search a text for occurrences of
// themselves. M is the match type of the implementation; a concrete pattern
// type implements Pattern for exactly one M.
type Pattern[M any] interface {
	// Search reports the first match in text. The boolean is false when text
	// contains no occurrence, in which case the match is the zero value.
	Search(text string) (M, bool)
}

// Position is the index of a rune within a text.
type Position int

// Span is a half-open range [Start, End) of rune positions.
type Span struct {
	Start Position
	End   Position
}

// Len returns the number of runes covered by the span.
func (s Span) Len() int { return int(s.End - s.Start) }

// String implements fmt.Stringer.
func (s Span) String() string { return fmt.Sprintf("[%d,%d)", s.Start, s.End) }

// WordIndex is the index of a whitespace-delimited field within a text.
type WordIndex int

// Hit is a match found in one of several texts.
type Hit[M any] struct {
	// Text is the index of the text that matched.
	Text int
	// Match is the pattern-specific match.
	Match M
}

// Search reports the first match of p in text.
func Search[M any](p Pattern[M], text string) (M, bool) {
	return p.Search(text)
}

// Contains reports whether p occurs in text.
func Contains[M any](p Pattern[M], text string) bool {
	_, ok := p.Search(text)
	return ok
}

// First returns the match of p in the first text of texts that contains it.
func First[M any](p Pattern[M], texts []string) (Hit[M], bool) {
	for i, text := range texts {
		if m, ok := p.Search(text); ok {
			return Hit[M]{Text: i, Match: m}, true
		}
	}
	return Hit[M]{}, false
}

// Name returns a short label for a pattern, suitable for logs.
func Name(p any) string {
	if s, ok := p.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", p)
}
