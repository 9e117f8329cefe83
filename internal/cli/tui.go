package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/glassblock/pkg/design"
	errs "github.com/matzehuels/glassblock/pkg/errors"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listLabelStyle    = lipgloss.NewStyle().Width(18)
)

// =============================================================================
// Fields
// =============================================================================

type fieldKind int

const (
	fieldNumWindows fieldKind = iota
	fieldWidth
	fieldHeight
	fieldNumColors
	fieldColor
	fieldBlockCount
)

// field is one editable row. index addresses the window or palette slot.
type field struct {
	kind  fieldKind
	index int
}

func (f field) label() string {
	switch f.kind {
	case fieldNumWindows:
		return "Windows"
	case fieldWidth:
		return fmt.Sprintf("  %d width", f.index+1)
	case fieldHeight:
		return fmt.Sprintf("  %d height", f.index+1)
	case fieldNumColors:
		return "Colors"
	case fieldColor:
		return fmt.Sprintf("  %d hex", f.index+1)
	case fieldBlockCount:
		return fmt.Sprintf("  %d blocks", f.index+1)
	}
	return ""
}

// name is the noun used in "must be an integer" messages.
func (f field) name() string {
	switch f.kind {
	case fieldNumWindows:
		return "number of windows"
	case fieldWidth:
		return "width"
	case fieldHeight:
		return "height"
	case fieldNumColors:
		return "number of colors"
	case fieldBlockCount:
		return "block count"
	}
	return "color"
}

// value returns the current value of f in s as it is typed by the user.
func (f field) value(s *design.State) string {
	supply := s.BlockSupply()
	switch f.kind {
	case fieldNumWindows:
		return strconv.Itoa(s.NumWindows())
	case fieldWidth, fieldHeight:
		w, err := s.Window(f.index)
		if err != nil {
			return ""
		}
		if f.kind == fieldWidth {
			return strconv.Itoa(w.Width())
		}
		return strconv.Itoa(w.Height())
	case fieldNumColors:
		return strconv.Itoa(supply.NumColors())
	case fieldColor:
		hex, _ := supply.Color(f.index)
		return hex
	case fieldBlockCount:
		n, _ := supply.BlockCount(f.index)
		return strconv.Itoa(n)
	}
	return ""
}

// apply sets f in s from raw text. On error s is unchanged.
func (f field) apply(s *design.State, raw string) error {
	raw = strings.TrimSpace(raw)
	if f.kind == fieldColor {
		return s.BlockSupply().SetColor(f.index, raw)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return errs.NotInteger(f.name())
	}
	supply := s.BlockSupply()
	switch f.kind {
	case fieldNumWindows:
		return s.SetNumWindows(n)
	case fieldWidth, fieldHeight:
		w, err := s.Window(f.index)
		if err != nil {
			return err
		}
		if f.kind == fieldWidth {
			return w.SetWidth(n)
		}
		return w.SetHeight(n)
	case fieldNumColors:
		return supply.SetNumColors(n)
	case fieldBlockCount:
		return supply.SetBlockCount(f.index, n)
	}
	return errs.New(errs.ErrCodeInternal, "unknown field")
}

// fieldsFor lists the editable rows of s in display order.
func fieldsFor(s *design.State) []field {
	fields := []field{{kind: fieldNumWindows}}
	for i := range s.NumWindows() {
		fields = append(fields, field{fieldWidth, i}, field{fieldHeight, i})
	}
	fields = append(fields, field{kind: fieldNumColors})
	for i := range s.BlockSupply().NumColors() {
		fields = append(fields, field{fieldColor, i}, field{fieldBlockCount, i})
	}
	return fields
}

// =============================================================================
// editModel - Interactive design editor
// =============================================================================

// editModel is the bubbletea model for editing a design in place.
//
// An entry the design rejects leaves the field at its last valid value and
// shows the error until the next key press. Nothing is written until the
// user saves with "w".
type editModel struct {
	State *design.State
	Path  string

	Cursor  int
	Editing bool
	Dirty   bool
	Saved   bool
	Err     string
	Status  string

	fields []field
	input  textinput.Model
	save   func(*design.State) error
}

// newEditModel creates an editor for s. save is called when the user writes
// the design.
func newEditModel(s *design.State, path string, save func(*design.State) error) editModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 7
	return editModel{
		State:  s,
		Path:   path,
		fields: fieldsFor(s),
		input:  ti,
		save:   save,
	}
}

func (m editModel) Init() tea.Cmd {
	return nil
}

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.Editing {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	if m.Editing {
		return m.updateEditing(key)
	}

	m.Err = ""
	m.Status = ""
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.fields)-1 {
			m.Cursor++
		}
	case "enter":
		m.Editing = true
		m.input.SetValue(m.fields[m.Cursor].value(m.State))
		m.input.CursorEnd()
		return m, m.input.Focus()
	case "w":
		if err := m.save(m.State); err != nil {
			m.Err = errs.UserMessage(err)
			return m, nil
		}
		m.Dirty = false
		m.Saved = true
		m.Status = "saved " + m.Path
	}
	return m, nil
}

func (m editModel) updateEditing(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.Editing = false
		m.input.Blur()
		return m, nil
	case "enter":
		m.Editing = false
		m.input.Blur()
		if err := m.fields[m.Cursor].apply(m.State, m.input.Value()); err != nil {
			m.Err = errs.UserMessage(err)
			return m, nil
		}
		m.Dirty = true
		m.fields = fieldsFor(m.State)
		m.Cursor = min(m.Cursor, len(m.fields)-1)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m editModel) View() string {
	var b strings.Builder

	title := m.Path
	if m.Dirty {
		title += " *"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ edit  w save  q quit"))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		var value string
		switch {
		case i == m.Cursor && m.Editing:
			value = m.input.View()
		case f.kind == fieldColor:
			value = swatch(f.value(m.State))
		default:
			value = f.value(m.State)
		}

		label := listLabelStyle.Render(f.label())
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(cursor+label) + value)
		} else {
			b.WriteString(listNormalStyle.Render(cursor+label) + value)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	needed := m.State.BlocksNeeded()
	available := m.State.BlockSupply().TotalBlocks()
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d blocks needed, %d on hand", needed, available)))
	b.WriteString("\n")

	switch {
	case m.Err != "":
		b.WriteString(StyleError.Render("  " + iconError + " " + m.Err))
		b.WriteString("\n")
	case m.Status != "":
		b.WriteString(StyleSuccess.Render("  " + iconSuccess + " " + m.Status))
		b.WriteString("\n")
	}

	return b.String()
}

// runEditorProgram runs m full screen until the user quits.
func runEditorProgram(ctx context.Context, m editModel) (editModel, error) {
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return m, errs.Wrap(errs.ErrCodeInternal, err, "run editor")
	}
	return final.(editModel), nil
}
