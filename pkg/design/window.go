package design

import (
	errs "github.com/matzehuels/glassblock/pkg/errors"
)

// Window dimension limits, in blocks.
const (
	MinDimension     = 1
	MaxDimension     = 100
	DefaultDimension = 6
)

// Window is one rectangular opening measured in blocks.
type Window struct {
	width  int
	height int
}

// WindowData is the serialized form of a [Window].
// Nil fields are treated as absent and take the default dimension.
type WindowData struct {
	Width  *int `json:"width,omitempty"`
	Height *int `json:"height,omitempty"`
}

// NewWindow returns a window of DefaultDimension x DefaultDimension.
func NewWindow() *Window {
	return &Window{width: DefaultDimension, height: DefaultDimension}
}

// Width returns the window width.
func (w *Window) Width() int { return w.width }

// Height returns the window height.
func (w *Window) Height() int { return w.height }

// SetWidth sets the width. Values outside [MinDimension, MaxDimension] are
// rejected and the width is left unchanged.
func (w *Window) SetWidth(v int) error {
	if err := errs.ValidateRange("width", v, MinDimension, MaxDimension); err != nil {
		return err
	}
	w.width = v
	return nil
}

// SetHeight sets the height. Values outside [MinDimension, MaxDimension] are
// rejected and the height is left unchanged.
func (w *Window) SetHeight(v int) error {
	if err := errs.ValidateRange("height", v, MinDimension, MaxDimension); err != nil {
		return err
	}
	w.height = v
	return nil
}

// Area returns the number of blocks needed to fill the window.
func (w *Window) Area() int { return w.width * w.height }

// Serialize returns a snapshot of the window.
func (w *Window) Serialize() WindowData {
	return WindowData{Width: intPtr(w.width), Height: intPtr(w.height)}
}

// WindowFromData builds a window from its serialized form.
// Present fields go through the setters; no window is returned if any fails.
func WindowFromData(d WindowData) (*Window, error) {
	w := NewWindow()
	if d.Width != nil {
		if err := w.SetWidth(*d.Width); err != nil {
			return nil, err
		}
	}
	if d.Height != nil {
		if err := w.SetHeight(*d.Height); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// ParseWindow decodes a JSON window and builds it with [WindowFromData].
func ParseWindow(text []byte) (*Window, error) {
	var d WindowData
	if err := decode(text, &d, "window"); err != nil {
		return nil, err
	}
	return WindowFromData(d)
}

func intPtr(v int) *int { return &v }
