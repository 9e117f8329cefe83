package design

import (
	"math"
	"regexp"
	"strconv"
	"testing"
)

var canonicalHex = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func hexToRGB(t *testing.T, hex string) [3]float64 {
	t.Helper()
	var rgb [3]float64
	for i := range rgb {
		v, err := strconv.ParseUint(hex[1+2*i:3+2*i], 16, 8)
		if err != nil {
			t.Fatalf("parse %q: %v", hex, err)
		}
		rgb[i] = float64(v)
	}
	return rgb
}

func colorDistance(t *testing.T, a, b string) float64 {
	ra, rb := hexToRGB(t, a), hexToRGB(t, b)
	return math.Sqrt(math.Pow(ra[0]-rb[0], 2) + math.Pow(ra[1]-rb[1], 2) + math.Pow(ra[2]-rb[2], 2))
}

func assertWellDistributed(t *testing.T, colors []string, minDistance float64) {
	t.Helper()
	for i := range colors {
		for j := i + 1; j < len(colors); j++ {
			if d := colorDistance(t, colors[i], colors[j]); d < minDistance {
				t.Errorf("colors %d (%s) and %d (%s) are %.1f apart, want >= %.0f", i, colors[i], j, colors[j], d, minDistance)
			}
		}
	}
}

func TestDefaultColorFormat(t *testing.T) {
	for i := 0; i < MaxColors; i++ {
		if c := DefaultColor(i); !canonicalHex.MatchString(c) {
			t.Errorf("DefaultColor(%d) = %q, not canonical hex", i, c)
		}
	}
}

func TestDefaultColorDeterministic(t *testing.T) {
	first := make([]string, MaxColors)
	for i := range first {
		first[i] = DefaultColor(i)
	}
	// Reverse order to make sure nothing depends on call history.
	for i := MaxColors - 1; i >= 0; i-- {
		if got := DefaultColor(i); got != first[i] {
			t.Errorf("DefaultColor(%d) = %q on second call, want %q", i, got, first[i])
		}
	}
}

func TestDefaultColorFirstSlot(t *testing.T) {
	// cos(0) = 1 puts red at full intensity and the other two channels a
	// quarter of the way up.
	if got, want := DefaultColor(0), "#ff4040"; got != want {
		t.Errorf("DefaultColor(0) = %q, want %q", got, want)
	}
}

func TestDefaultColorDistribution(t *testing.T) {
	t.Run("default slots", func(t *testing.T) {
		colors := make([]string, DefaultNumColors)
		for i := range colors {
			colors[i] = DefaultColor(i)
		}
		assertWellDistributed(t, colors, 80)
	})

	t.Run("all slots", func(t *testing.T) {
		colors := make([]string, MaxColors)
		for i := range colors {
			colors[i] = DefaultColor(i)
		}
		assertWellDistributed(t, colors, 40)
	})
}
