package card

import (
	"github.com/lucasb-eyer/go-colorful"
)

// PairColor returns the colour used for a pair's icon. Hues are spread evenly
// around the wheel so that every pair in a deck of the given size is distinct.
func PairColor(matchID, pairs int) colorful.Color {
	if pairs <= 0 {
		pairs = 1
	}
	hue := 360.0 * float64(matchID%pairs) / float64(pairs)
	return colorful.Hcl(hue, 0.6, 0.7).Clamped()
}
