package design

import (
	"slices"
	"strings"

	errs "github.com/matzehuels/glassblock/pkg/errors"
)

// Palette limits.
const (
	MinColors        = 1
	MaxColors        = 20
	DefaultNumColors = 3
)

// BlockSupply is the palette of available blocks. Slot i pairs colors[i]
// with blockCounts[i]; both slices always have the same length.
type BlockSupply struct {
	colors      []string
	blockCounts []int
}

// BlockSupplyData is the serialized form of a [BlockSupply].
type BlockSupplyData struct {
	NumColors   *int     `json:"numColors,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	BlockCounts []int    `json:"blockCounts,omitempty"`
}

// NewBlockSupply returns a palette of DefaultNumColors generated colors with
// zero blocks each.
func NewBlockSupply() *BlockSupply {
	s := &BlockSupply{}
	s.resize(DefaultNumColors)
	return s
}

// NumColors returns the number of palette slots.
func (s *BlockSupply) NumColors() int { return len(s.colors) }

// Colors returns a copy of the slot colors.
func (s *BlockSupply) Colors() []string { return slices.Clone(s.colors) }

// BlockCounts returns a copy of the slot block counts.
func (s *BlockSupply) BlockCounts() []int { return slices.Clone(s.blockCounts) }

// Color returns the color of slot i.
func (s *BlockSupply) Color(i int) (string, error) {
	if err := errs.ValidateIndex("color", i, len(s.colors)); err != nil {
		return "", err
	}
	return s.colors[i], nil
}

// BlockCount returns the number of blocks available in slot i.
func (s *BlockSupply) BlockCount(i int) (int, error) {
	if err := errs.ValidateIndex("color", i, len(s.blockCounts)); err != nil {
		return 0, err
	}
	return s.blockCounts[i], nil
}

// SetNumColors resizes the palette to n slots. New slots get
// [DefaultColor] and a zero count; removed slots come off the end.
func (s *BlockSupply) SetNumColors(n int) error {
	if err := errs.ValidateRange("number of colors", n, MinColors, MaxColors); err != nil {
		return err
	}
	s.resize(n)
	return nil
}

// SetColor sets the color of slot i. The hex value is matched
// case-insensitively and stored lowercased.
func (s *BlockSupply) SetColor(i int, hex string) error {
	if err := errs.ValidateIndex("color", i, len(s.colors)); err != nil {
		return err
	}
	if err := errs.ValidateHexColor(hex); err != nil {
		return err
	}
	s.colors[i] = strings.ToLower(hex)
	return nil
}

// SetBlockCount sets the number of blocks available in slot i.
func (s *BlockSupply) SetBlockCount(i, n int) error {
	if err := errs.ValidateIndex("color", i, len(s.blockCounts)); err != nil {
		return err
	}
	if err := errs.ValidateNonNegative("block count", n); err != nil {
		return err
	}
	s.blockCounts[i] = n
	return nil
}

// TotalBlocks returns the sum of all slot block counts.
func (s *BlockSupply) TotalBlocks() int {
	total := 0
	for _, n := range s.blockCounts {
		total += n
	}
	return total
}

// Serialize returns a snapshot of the palette.
func (s *BlockSupply) Serialize() BlockSupplyData {
	return BlockSupplyData{
		NumColors:   intPtr(len(s.colors)),
		Colors:      s.Colors(),
		BlockCounts: s.BlockCounts(),
	}
}

// BlockSupplyFromData builds a palette from its serialized form.
//
// NumColors is applied first and fixes the slot count. Colors and BlockCounts
// are then laid over the generated defaults index by index; entries at or
// beyond the slot count are ignored. No palette is returned if any value is
// rejected.
func BlockSupplyFromData(d BlockSupplyData) (*BlockSupply, error) {
	s := NewBlockSupply()
	if d.NumColors != nil {
		if err := s.SetNumColors(*d.NumColors); err != nil {
			return nil, err
		}
	}
	for i, c := range d.Colors {
		if i >= s.NumColors() {
			break
		}
		if err := s.SetColor(i, c); err != nil {
			return nil, errs.WithContext(err, "color %d", i+1)
		}
	}
	for i, n := range d.BlockCounts {
		if i >= s.NumColors() {
			break
		}
		if err := s.SetBlockCount(i, n); err != nil {
			return nil, errs.WithContext(err, "color %d", i+1)
		}
	}
	return s, nil
}

// ParseBlockSupply decodes a JSON palette and builds it with
// [BlockSupplyFromData].
func ParseBlockSupply(text []byte) (*BlockSupply, error) {
	var d BlockSupplyData
	if err := decode(text, &d, "block supply"); err != nil {
		return nil, err
	}
	return BlockSupplyFromData(d)
}

// resize grows or truncates both slot slices to n.
func (s *BlockSupply) resize(n int) {
	if n < len(s.colors) {
		s.colors = s.colors[:n]
		s.blockCounts = s.blockCounts[:n]
		return
	}
	for i := len(s.colors); i < n; i++ {
		s.colors = append(s.colors, DefaultColor(i))
		s.blockCounts = append(s.blockCounts, 0)
	}
}
