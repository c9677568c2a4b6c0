package pattern

import "fmt"

// Char matches a single rune.
type Char rune

var _ Pattern[Position] = Char(0)

// Search returns the position of the first rune in text equal to c.
func (c Char) Search(text string) (Position, bool) {
	pos := 0
	for _, r := range text {
		if r == rune(c) {
			return Position(pos), true
		}
		pos++
	}
	return 0, false
}

// String implements fmt.Stringer.
func (c Char) String() string { return fmt.Sprintf("char(%q)", rune(c)) }

// Func matches the first rune for which the predicate returns true.
// A nil Func never matches.
type Func func(rune) bool

var _ Pattern[Position] = Func(nil)

// Search returns the position of the first rune in text satisfying f.
func (f Func) Search(text string) (Position, bool) {
	if f == nil {
		return 0, false
	}
	pos := 0
	for _, r := range text {
		if f(r) {
			return Position(pos), true
		}
		pos++
	}
	return 0, false
}

// String implements fmt.Stringer.
func (f Func) String() string { return "func" }
