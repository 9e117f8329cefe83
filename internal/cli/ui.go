package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// out receives all user-facing output. Tests replace it with a buffer.
var out io.Writer = os.Stdout

// Terminal palette (ANSI 256).
var (
	colorCyan   = lipgloss.Color("38")
	colorGreen  = lipgloss.Color("78")
	colorYellow = lipgloss.Color("221")
	colorRed    = lipgloss.Color("203")
	colorWhite  = lipgloss.Color("254")
	colorGray   = lipgloss.Color("246")
	colorDim    = lipgloss.Color("241")
)

// Styles shared by the commands, the editor and main.
var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	StyleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	StyleError   = lipgloss.NewStyle().Foreground(colorRed)

	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleKey    = lipgloss.NewStyle().Foreground(colorGray).Width(16)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// status is one kind of one-line message: an icon in its color followed by
// the text, optionally styled.
type status struct {
	icon string
	mark lipgloss.Style
	text *lipgloss.Style
}

var (
	statusSuccess = status{icon: iconSuccess, mark: StyleSuccess}
	statusWarning = status{icon: iconWarning, mark: StyleWarning, text: &StyleWarning}
	statusInfo    = status{icon: iconInfo, mark: lipgloss.NewStyle().Foreground(colorGray)}
)

func (s status) print(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if s.text != nil {
		msg = s.text.Render(msg)
	}
	fmt.Fprintln(out, s.mark.Render(s.icon)+" "+msg)
}

func printSuccess(format string, args ...any) { statusSuccess.print(format, args...) }
func printWarning(format string, args ...any) { statusWarning.print(format, args...) }
func printInfo(format string, args ...any)    { statusInfo.print(format, args...) }

// printDetail prints an indented, muted line under a status message.
func printDetail(format string, args ...any) {
	fmt.Fprintln(out, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints the path of a file that was written.
func printFile(path string) {
	fmt.Fprintln(out, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Fprintln(out, styleKey.Render(key)+" "+StyleValue.Render(value))
}

func printNewline() {
	fmt.Fprintln(out)
}

// swatch renders hex as a block of that color labeled with its own value.
func swatch(hex string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(contrastColor(hex))).
		Padding(0, 1).
		Render(hex)
}

// contrastColor picks black text for light colors and white for dark ones,
// judged by CIE L*. Unparseable input gets white.
func contrastColor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#ffffff"
	}
	if l, _, _ := c.Lab(); l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}
