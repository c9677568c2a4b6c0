package pattern

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Occurrences matches every position of a rune at once.
// Its match is a bitmap of rune positions; the bitmap is owned by the caller.
type Occurrences rune

var _ Pattern[*roaring.Bitmap] = Occurrences(0)

// Search returns the positions of all runes in text equal to o.
// It returns (nil, false) when there are none.
func (o Occurrences) Search(text string) (*roaring.Bitmap, bool) {
	var bm *roaring.Bitmap
	var pos uint32
	for _, r := range text {
		if r == rune(o) {
			if bm == nil {
				bm = roaring.New()
			}
			bm.Add(pos)
		}
		pos++
	}
	return bm, bm != nil
}

// String implements fmt.Stringer.
func (o Occurrences) String() string { return fmt.Sprintf("occurrences(%q)", rune(o)) }
