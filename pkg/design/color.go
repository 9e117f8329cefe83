package design

import (
	"fmt"
	"math"
)

// colorStep is the hue advance between consecutive slots, in turns.
// Stepping by 1/MaxColors would bunch the first few colors into one arc of
// the wheel; stepping by ((MaxColors+1)/3)/MaxColors spreads low indices far
// apart while still visiting MaxColors distinct points.
const colorStep = float64((MaxColors+1)/3) / MaxColors

// DefaultColor returns the generated color for palette slot i as "#rrggbb".
//
// The hue angle for slot i is i*colorStep turns. Red, green and blue are
// cosines of that angle offset by 0, 1/3 and 2/3 of a turn, mapped from
// [-1, 1] onto [0, 255]. The result depends only on i.
func DefaultColor(i int) string {
	theta := 2 * math.Pi * colorStep * float64(i)
	r := channel(theta)
	g := channel(theta + 2*math.Pi/3)
	b := channel(theta + 4*math.Pi/3)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func channel(theta float64) int {
	v := math.Round((math.Cos(theta) + 1) * 127.5)
	return int(math.Max(0, math.Min(255, v)))
}
