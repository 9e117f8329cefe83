package design

import (
	"slices"

	errs "github.com/matzehuels/glassblock/pkg/errors"
)

// Window count limits.
const (
	MinWindows = 1
	MaxWindows = 20
)

// State is a complete design: the windows to fill and the block supply to
// fill them from. A State exclusively owns its windows and block supply.
type State struct {
	windows []*Window
	supply  *BlockSupply
}

// Data is the serialized form of a [State].
type Data struct {
	NumWindows  *int             `json:"numWindows,omitempty"`
	Windows     []WindowData     `json:"windows,omitempty"`
	BlockSupply *BlockSupplyData `json:"blockSupply,omitempty"`
}

// New returns a design with one default window and a default block supply.
func New() *State {
	return &State{
		windows: []*Window{NewWindow()},
		supply:  NewBlockSupply(),
	}
}

// NumWindows returns the number of windows.
func (s *State) NumWindows() int { return len(s.windows) }

// Windows returns the owned windows. The slice is a copy but the windows are
// live: edit them through their setters.
func (s *State) Windows() []*Window { return slices.Clone(s.windows) }

// Window returns window i.
func (s *State) Window(i int) (*Window, error) {
	if err := errs.ValidateIndex("window", i, len(s.windows)); err != nil {
		return nil, err
	}
	return s.windows[i], nil
}

// BlockSupply returns the owned block supply.
func (s *State) BlockSupply() *BlockSupply { return s.supply }

// SetNumWindows resizes the window collection to n. New windows are
// appended with default dimensions; removed windows come off the end.
func (s *State) SetNumWindows(n int) error {
	if err := errs.ValidateRange("number of windows", n, MinWindows, MaxWindows); err != nil {
		return err
	}
	if n < len(s.windows) {
		clear(s.windows[n:])
		s.windows = s.windows[:n]
		return nil
	}
	for len(s.windows) < n {
		s.windows = append(s.windows, NewWindow())
	}
	return nil
}

// BlocksNeeded returns the total number of blocks needed to fill every window.
func (s *State) BlocksNeeded() int {
	total := 0
	for _, w := range s.windows {
		total += w.Area()
	}
	return total
}

// Serialize returns a snapshot of the whole design.
func (s *State) Serialize() Data {
	windows := make([]WindowData, len(s.windows))
	for i, w := range s.windows {
		windows[i] = w.Serialize()
	}
	supply := s.supply.Serialize()
	return Data{
		NumWindows:  intPtr(len(s.windows)),
		Windows:     windows,
		BlockSupply: &supply,
	}
}

// FromData builds a design from its serialized form.
//
// NumWindows is applied first and fixes the window count. Windows entries are
// then built with [WindowFromData] and laid over the defaults index by index,
// the same policy [BlockSupplyFromData] uses for slots; entries beyond the
// window count are ignored. A present BlockSupply replaces the default one.
// No design is returned if any value is rejected.
func FromData(d Data) (*State, error) {
	s := New()
	if d.NumWindows != nil {
		if err := s.SetNumWindows(*d.NumWindows); err != nil {
			return nil, err
		}
	}
	for i, wd := range d.Windows {
		if i >= len(s.windows) {
			break
		}
		w, err := WindowFromData(wd)
		if err != nil {
			return nil, errs.WithContext(err, "window %d", i+1)
		}
		s.windows[i] = w
	}
	if d.BlockSupply != nil {
		supply, err := BlockSupplyFromData(*d.BlockSupply)
		if err != nil {
			return nil, errs.WithContext(err, "block supply")
		}
		s.supply = supply
	}
	return s, nil
}

// Parse decodes a JSON design and builds it with [FromData].
func Parse(text []byte) (*State, error) {
	var d Data
	if err := decode(text, &d, "design"); err != nil {
		return nil, err
	}
	return FromData(d)
}

// MarshalJSON encodes the design in its wire format.
func (s *State) MarshalJSON() ([]byte, error) {
	return marshal(s.Serialize())
}

// UnmarshalJSON replaces s with the decoded design. On error s is unchanged.
func (s *State) UnmarshalJSON(text []byte) error {
	parsed, err := Parse(text)
	if err != nil {
		return err
	}
	*s = *parsed
	return nil
}
