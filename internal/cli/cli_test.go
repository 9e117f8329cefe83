package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/glassblock/internal/config"
	"github.com/matzehuels/glassblock/pkg/design"
	errs "github.com/matzehuels/glassblock/pkg/errors"
	dio "github.com/matzehuels/glassblock/pkg/io"
)

// testCLI runs commands against a temp directory with a fake clipboard and
// editor.
type testCLI struct {
	t          *testing.T
	dir        string
	configPath string
	clipboard  string
	copyErr    error
	editor     func(editModel) editModel
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()
	dir := t.TempDir()
	return &testCLI{
		t:          t,
		dir:        dir,
		configPath: filepath.Join(dir, "config.toml"),
	}
}

// path returns name inside the test directory.
func (tc *testCLI) path(name string) string {
	return filepath.Join(tc.dir, name)
}

// run executes the root command with args and returns user-facing output.
func (tc *testCLI) run(args ...string) (string, error) {
	tc.t.Helper()

	var buf bytes.Buffer
	prev := out
	out = &buf
	defer func() { out = prev }()

	c := New(io.Discard, LogInfo)
	c.copyText = func(s string) error {
		if tc.copyErr != nil {
			return tc.copyErr
		}
		tc.clipboard = s
		return nil
	}
	c.runEditor = func(_ context.Context, m editModel) (editModel, error) {
		if tc.editor == nil {
			return m, nil
		}
		return tc.editor(m), nil
	}

	root := c.RootCommand()
	root.SetArgs(append([]string{"--config", tc.configPath}, args...))
	root.SetOut(&buf)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

// mustRun is run for commands expected to succeed.
func (tc *testCLI) mustRun(args ...string) string {
	tc.t.Helper()
	got, err := tc.run(args...)
	if err != nil {
		tc.t.Fatalf("%v: %v", args, err)
	}
	return got
}

// load imports the design at name.
func (tc *testCLI) load(name string) *design.State {
	tc.t.Helper()
	s, err := dio.ImportJSON(tc.path(name))
	if err != nil {
		tc.t.Fatalf("ImportJSON(%s): %v", name, err)
	}
	return s
}

// read returns the raw bytes of name.
func (tc *testCLI) read(name string) []byte {
	tc.t.Helper()
	data, err := os.ReadFile(tc.path(name))
	if err != nil {
		tc.t.Fatal(err)
	}
	return data
}

func TestNewCommand(t *testing.T) {
	tc := newTestCLI(t)
	file := tc.path("d.json")

	got := tc.mustRun("new", file)
	if !strings.Contains(got, "1 window and 3 colors") {
		t.Errorf("output = %q", got)
	}
	s := tc.load("d.json")
	if s.NumWindows() != 1 || s.BlockSupply().NumColors() != 3 {
		t.Errorf("new design has %d windows, %d colors", s.NumWindows(), s.BlockSupply().NumColors())
	}

	_, err := tc.run("new", file)
	if !errs.Is(err, errs.ErrCodeFileExists) {
		t.Errorf("second new: error = %v, want FILE_EXISTS", err)
	}

	tc.mustRun("new", file, "--force", "--windows", "3", "--colors", "5")
	s = tc.load("d.json")
	if s.NumWindows() != 3 || s.BlockSupply().NumColors() != 5 {
		t.Errorf("forced design has %d windows, %d colors", s.NumWindows(), s.BlockSupply().NumColors())
	}
}

func TestNewCommandRejectsCounts(t *testing.T) {
	tc := newTestCLI(t)
	file := tc.path("d.json")

	_, err := tc.run("new", file, "--windows", "0")
	if !errs.IsValidation(err) {
		t.Fatalf("error = %v, want validation error", err)
	}
	if dio.Exists(file) {
		t.Error("no file should be written for a rejected design")
	}
}

func TestWindowsCommand(t *testing.T) {
	tc := newTestCLI(t)
	file := tc.path("d.json")
	tc.mustRun("new", file)

	tc.mustRun("windows", "4", file)
	if n := tc.load("d.json").NumWindows(); n != 4 {
		t.Errorf("NumWindows() = %d, want 4", n)
	}

	before := tc.read("d.json")
	tests := []struct {
		arg     string
		wantMsg string
	}{
		{"21", "number of windows must be between 1 and 20"},
		{"0", "number of windows must be between 1 and 20"},
		{"many", "number of windows must be an integer"},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			_, err := tc.run("windows", tt.arg, file)
			if !errs.IsValidation(err) {
				t.Fatalf("error = %v, want validation error", err)
			}
			if msg := errs.UserMessage(err); msg != tt.wantMsg {
				t.Errorf("message = %q, want %q", msg, tt.wantMsg)
			}
			if !bytes.Equal(tc.read("d.json"), before) {
				t.Error("file should be unchanged after a rejected edit")
			}
		})
	}
}

func TestWindowSetCommand(t *testing.T) {
	tc := newTestCLI(t)
	file := tc.path("d.json")
	tc.mustRun("new", file, "--windows", "2")

	got := tc.mustRun("window", "set", "2", file, "--width", "8")
	if !strings.Contains(got, "Window 2 is 8x6") {
		t.Errorf("output = %q", got)
	}
	w, _ := tc.load("d.json").Window(1)
	if w.Width() != 8 || w.Height() != design.DefaultDimension {
		t.Errorf("window 2 = %dx%d, want 8x6", w.Width(), w.Height())
	}

	before := tc.read("d.json")
	tests := []struct {
		name  string
		args  []string
		check func(error) bool
	}{
		{"no such window", []string{"3", file, "--width", "4"}, errs.IsIndex},
		{"zero index", []string{"0", file, "--width", "4"}, errs.IsIndex},
		{"too wide", []string{"1", file, "--width", "101"}, errs.IsValidation},
		{"second field rejected", []string{"1", file, "--width", "4", "--height", "0"}, errs.IsValidation},
		{"nothing to change", []string{"1", file}, func(err error) bool { return errs.Is(err, errs.ErrCodeInvalidInput) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tc.run(append([]string{"window", "set"}, tt.args...)...)
			if !tt.check(err) {
				t.Fatalf("unexpected error %v", err)
			}
			if !bytes.Equal(tc.read("d.json"), before) {
				t.Error("file should be unchanged after a rejected edit")
			}
		})
	}
}

func TestColorsCommand(t *testing.T) {
	tc := newTestCLI(t)
	file := tc.path("d.json")
	tc.mustRun("new", file)

	got := tc.mustRun("colors", "5", file)
	if !strings.Contains(got, design.DefaultColor(4)) {
		t.Errorf("output should list the new color, got %q", got)
	}
	supply := tc.load("d.json").BlockSupply()
	if supply.NumColors() != 5 {
		t.Errorf("NumColors() = %d, want 5", supply.NumColors())
	}

	_, err := tc.run("colors", "21", file)
	if !errs.IsValidation(err) {
		t.Errorf("error = %v, want validation error", err)
	}
}

func TestColorSetCommand(t *testing.T) {
	tc := newTestCLI(t)
	file := tc.path("d.json")
	tc.mustRun("new", file)

	tc.mustRun("color", "set", "2", file, "--hex", "#ABCDEF", "--count", "40")
	supply := tc.load("d.json").BlockSupply()
	if c, _ := supply.Color(1); c != "#abcdef" {
		t.Errorf("Color(1) = %q, want %q", c, "#abcdef")
	}
	if n, _ := supply.BlockCount(1); n != 40 {
		t.Errorf("BlockCount(1) = %d, want 40", n)
	}

	before := tc.read("d.json")
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"bad hex", []string{"1", file, "--hex", "red"}, `color must be a valid hex color (e.g., #ff0000), got "red"`},
		{"negative count", []string{"1", file, "--count=-1"}, "block count must be a non-negative integer"},
		{"no such color", []string{"4", file, "--count", "1"}, "color 4 does not exist (design has 3 colors)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tc.run(append([]string{"color", "set"}, tt.args...)...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if msg := errs.UserMessage(err); msg != tt.wantMsg {
				t.Errorf("message = %q, want %q", msg, tt.wantMsg)
			}
			if !bytes.Equal(tc.read("d.json"), before) {
				t.Error("file should be unchanged after a rejected edit")
			}
		})
	}
}

func TestShowCommand(t *testing.T) {
	tc := newTestCLI(t)
	file := tc.path("d.json")
	tc.mustRun("new", file, "--windows", "2")
	tc.mustRun("color", "set", "1", file, "--count", "50")

	got := tc.mustRun("show", file)
	for _, want := range []string{"Blocks needed", "72", "Blocks on hand", "50", "22 blocks short", design.DefaultColor(0)} {
		if !strings.Contains(got, want) {
			t.Errorf("show output missing %q:\n%s", want, got)
		}
	}

	got = tc.mustRun("show", file, "--json")
	s, err := design.Parse([]byte(got))
	if err != nil {
		t.Fatalf("--json output does not parse: %v", err)
	}
	if s.NumWindows() != 2 || s.BlockSupply().TotalBlocks() != 50 {
		t.Errorf("--json output = %s", got)
	}
}

func TestValidateCommand(t *testing.T) {
	tc := newTestCLI(t)
	tc.mustRun("new", tc.path("ok.json"))

	got := tc.mustRun("validate", tc.path("ok.json"))
	if !strings.Contains(got, "is valid") {
		t.Errorf("output = %q", got)
	}

	tests := []struct {
		name    string
		content string
		code    errs.Code
	}{
		{"malformed", `{"numWindows": `, errs.ErrCodeParse},
		{"rejected value", `{"numWindows": 0}`, errs.ErrCodeInvalidValue},
		{"not an integer", `{"windows": [{"width": "wide"}]}`, errs.ErrCodeInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := tc.path(strings.ReplaceAll(tt.name, " ", "_") + ".json")
			if err := os.WriteFile(file, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := tc.run("validate", file)
			if code := errs.GetCode(err); code != tt.code {
				t.Errorf("code = %q, want %q (err %v)", code, tt.code, err)
			}
		})
	}

	t.Run("missing", func(t *testing.T) {
		_, err := tc.run("validate", tc.path("missing.json"))
		if !errs.Is(err, errs.ErrCodeFileNotFound) {
			t.Errorf("error = %v, want FILE_NOT_FOUND", err)
		}
	})
}

func TestCopyCommand(t *testing.T) {
	tc := newTestCLI(t)
	file := tc.path("d.json")
	tc.mustRun("new", file)

	tc.mustRun("copy", file)
	if tc.clipboard != string(tc.read("d.json")) {
		t.Errorf("clipboard = %q, want the file contents", tc.clipboard)
	}

	tc.copyErr = errors.New("no clipboard")
	_, err := tc.run("copy", file)
	if !errs.Is(err, errs.ErrCodeUnsupported) {
		t.Errorf("error = %v, want UNSUPPORTED", err)
	}
}

func TestEditCommand(t *testing.T) {
	tc := newTestCLI(t)
	file := tc.path("d.json")
	tc.mustRun("new", file)

	tc.editor = func(m editModel) editModel {
		m = press(t, m, keyDown)
		m = enterValue(t, m, "9")
		return press(t, m, runeKey('w'))
	}
	got := tc.mustRun("edit", file)
	if !strings.Contains(got, "Saved") {
		t.Errorf("output = %q", got)
	}
	if w, _ := tc.load("d.json").Window(0); w.Width() != 9 {
		t.Errorf("Width() = %d, want 9", w.Width())
	}

	before := tc.read("d.json")
	tc.editor = func(m editModel) editModel {
		m = press(t, m, keyDown)
		return enterValue(t, m, "3")
	}
	got = tc.mustRun("edit", file)
	if !strings.Contains(got, "Discarded unsaved changes") {
		t.Errorf("output = %q", got)
	}
	if !bytes.Equal(tc.read("d.json"), before) {
		t.Error("quitting without saving should leave the file unchanged")
	}
}

func TestEditCommandNewFile(t *testing.T) {
	tc := newTestCLI(t)
	file := tc.path("fresh.json")

	tc.editor = func(m editModel) editModel {
		return press(t, m, runeKey('w'))
	}
	tc.mustRun("edit", file)
	if s := tc.load("fresh.json"); s.NumWindows() != 1 {
		t.Errorf("NumWindows() = %d, want 1", s.NumWindows())
	}
}

func TestConfigDefaults(t *testing.T) {
	tc := newTestCLI(t)
	file := tc.path("from-config.json")
	cfg := config.Default()
	cfg.DesignPath = file
	cfg.NumWindows = 2
	cfg.NumColors = 4
	cfg.Indent = ""
	if err := config.Write(tc.configPath, cfg); err != nil {
		t.Fatal(err)
	}

	tc.mustRun("new")
	s := tc.load("from-config.json")
	if s.NumWindows() != 2 || s.BlockSupply().NumColors() != 4 {
		t.Errorf("design has %d windows, %d colors", s.NumWindows(), s.BlockSupply().NumColors())
	}
	if data := bytes.TrimSpace(tc.read("from-config.json")); bytes.ContainsRune(data, '\n') {
		t.Error("empty indent should write compact JSON")
	}
}

func TestConfigInvalid(t *testing.T) {
	tc := newTestCLI(t)
	if err := os.WriteFile(tc.configPath, []byte("num_windows = 50\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := tc.run("show", tc.path("d.json"))
	if !errs.IsValidation(err) {
		t.Errorf("error = %v, want validation error", err)
	}
}

func TestConfigInit(t *testing.T) {
	tc := newTestCLI(t)

	tc.mustRun("config", "init")
	cfg, err := config.Load(tc.configPath)
	if err != nil {
		t.Fatal(err)
	}
	if cfg != config.Default() {
		t.Errorf("config = %+v, want defaults", cfg)
	}

	_, err = tc.run("config", "init")
	if !errs.Is(err, errs.ErrCodeFileExists) {
		t.Errorf("error = %v, want FILE_EXISTS", err)
	}

	got := tc.mustRun("config", "show")
	if !strings.Contains(got, tc.configPath) {
		t.Errorf("config show should print the file path, got %q", got)
	}
}

func TestCompletionCommand(t *testing.T) {
	tc := newTestCLI(t)
	got := tc.mustRun("completion", "bash")
	if !strings.Contains(got, "glassblock") {
		t.Error("completion script should mention the command name")
	}
}

func TestPlural(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 windows"},
		{1, "1 window"},
		{2, "2 windows"},
	}
	for _, tt := range tests {
		if got := plural(tt.n, "window"); got != tt.want {
			t.Errorf("plural(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestContrastColor(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"#ffffff", "#000000"},
		{"#ffff00", "#000000"},
		{"#000000", "#ffffff"},
		{"#0000ff", "#ffffff"},
		{"nope", "#ffffff"},
	}
	for _, tt := range tests {
		if got := contrastColor(tt.hex); got != tt.want {
			t.Errorf("contrastColor(%q) = %q, want %q", tt.hex, got, tt.want)
		}
	}
}
