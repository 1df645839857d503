package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/boxlayout/cmd/boxlayout/internal/config"
	"github.com/go-drift/boxlayout/pkg/document"
	"github.com/go-drift/boxlayout/pkg/errors"
)

const columnDoc = `
version: v1
viewport: {width: 100, height: 60}
root:
  kind: column
  name: col
  padding: 4
  spacing: 4
  children:
    - {kind: fixed, name: a, width: 50, height: 20}
    - {kind: fixed, name: b, width: 30, height: 10}
`

// workspace moves the test into an empty directory without a config file.
func workspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv(config.EnvVar, "")
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	oldOut, oldErr := stdout, stderr
	stdout, stderr = &out, &errOut
	defer func() {
		stdout, stderr = oldOut, oldErr
		errors.SetHandler(nil)
	}()
	err := Run(args)
	return out.String(), errOut.String(), err
}

func TestHelpAndVersion(t *testing.T) {
	workspace(t)

	out, _, err := runCLI(t)
	if err != nil || !strings.Contains(out, "Commands:") {
		t.Errorf("no args: err=%v out=%q", err, out)
	}
	for _, name := range []string{"measure", "arrange", "check", "env"} {
		if !strings.Contains(out, name) {
			t.Errorf("help should list %s", name)
		}
	}

	out, _, err = runCLI(t, "--version")
	if err != nil || !strings.HasPrefix(out, "boxlayout version "+Version) {
		t.Errorf("--version: err=%v out=%q", err, out)
	}

	out, _, err = runCLI(t, "measure", "--help")
	if err != nil || !strings.Contains(out, "boxlayout measure FILE...") {
		t.Errorf("measure --help: err=%v out=%q", err, out)
	}
}

func TestUnknownCommand(t *testing.T) {
	workspace(t)
	_, errOut, err := runCLI(t, "render")
	if err == nil || !strings.Contains(errOut, `unknown command "render"`) {
		t.Errorf("err=%v stderr=%q", err, errOut)
	}
}

func TestGlobalFlags(t *testing.T) {
	workspace(t)
	if _, _, err := runCLI(t, "env", "--config"); err == nil {
		t.Error("--config without a value should fail")
	}
	_, _, err := runCLI(t, "--config=missing.yaml", "env")
	if err == nil || !strings.Contains(err.Error(), "config file") {
		t.Errorf("missing config error = %v", err)
	}
}

func TestMeasure(t *testing.T) {
	dir := workspace(t)
	doc := writeFile(t, dir, "col.yaml", columnDoc)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{doc}, "58x42\n"},
		{[]string{doc, "--width", "200"}, "200x42\n"},
		{[]string{doc, "--height=100"}, "58x100\n"},
	}
	for _, tt := range tests {
		out, _, err := runCLI(t, append([]string{"measure"}, tt.args...)...)
		if err != nil {
			t.Fatalf("measure %v: %v", tt.args, err)
		}
		if out != tt.want {
			t.Errorf("measure %v = %q, want %q", tt.args, out, tt.want)
		}
	}
}

func TestMeasureMany(t *testing.T) {
	dir := workspace(t)
	a := writeFile(t, dir, "a.yaml", columnDoc)
	b := writeFile(t, dir, "b.yaml", "version: v1\nroot: {kind: fixed, width: 7, height: 3}\n")

	out, _, err := runCLI(t, "measure", a, b)
	if err != nil {
		t.Fatal(err)
	}
	want := a + ": 58x42\n" + b + ": 7x3\n"
	if out != want {
		t.Errorf("out = %q, want %q", out, want)
	}
}

func TestMeasureArgErrors(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{nil, "at least one document"},
		{[]string{"x.yaml", "--width", "1", "--height", "2"}, "mutually exclusive"},
		{[]string{"x.yaml", "--width", "wide"}, "invalid size"},
		{[]string{"x.yaml", "--width", "-5"}, "invalid size"},
		{[]string{"x.yaml", "--depth", "3"}, "unknown flag"},
		{[]string{"x.yaml", "--width"}, "requires a value"},
	}
	for _, tt := range tests {
		_, err := parseMeasureArgs(tt.args)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("parseMeasureArgs(%v) error = %v, want containing %q", tt.args, err, tt.want)
		}
	}
}

func TestArrangeText(t *testing.T) {
	dir := workspace(t)
	doc := writeFile(t, dir, "col.yaml", columnDoc)

	tests := []struct {
		name string
		args []string
		root string
	}{
		{"document viewport", nil, "col column [0,0 100x60]"},
		{"fit", []string{"--fit"}, "col column [0,0 58x42]"},
		{"width only", []string{"--width", "80"}, "col column [0,0 80x42]"},
		{"both", []string{"--width", "70", "--height", "50"}, "col column [0,0 70x50]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, append([]string{"arrange", doc}, tt.args...)...)
			if err != nil {
				t.Fatal(err)
			}
			want := tt.root + "\n" +
				"  a fixed [4,4 50x20]\n" +
				"  b fixed [4,28 30x10]\n"
			if out != want {
				t.Errorf("out =\n%s\nwant\n%s", out, want)
			}
		})
	}
}

func TestArrangeConfigViewport(t *testing.T) {
	dir := workspace(t)
	doc := writeFile(t, dir, "plain.yaml", "version: v1\nroot: {kind: column, name: c}\n")
	writeFile(t, dir, config.FileName, "viewport: {width: 320, height: 240}\n")

	out, _, err := runCLI(t, "arrange", doc)
	if err != nil {
		t.Fatal(err)
	}
	if out != "c column [0,0 320x240]\n" {
		t.Errorf("out = %q", out)
	}
}

func TestArrangeYAMLAndExpect(t *testing.T) {
	dir := workspace(t)
	doc := writeFile(t, dir, "col.yaml", columnDoc)

	out, _, err := runCLI(t, "arrange", doc, "--format", "yaml")
	if err != nil {
		t.Fatal(err)
	}
	got, err := document.ReadSnapshot(strings.NewReader(out))
	if err != nil {
		t.Fatalf("ReadSnapshot: %v\n%s", err, out)
	}
	if got.Name != "col" || got.Kind != "column" || len(got.Children) != 2 {
		t.Fatalf("snapshot = %+v", got)
	}
	if b := got.Children[1]; b.Name != "b" || b.X != 4 || b.Y != 28 || b.Width != 30 || b.Height != 10 {
		t.Errorf("b = %+v, want b at (4,28) 30x10", b)
	}
	snap := writeFile(t, dir, "col.snap.yaml", out)

	out, _, err = runCLI(t, "arrange", doc, "--expect", snap)
	if err != nil {
		t.Fatalf("--expect at the same size: %v", err)
	}
	if !strings.HasPrefix(out, "matches ") {
		t.Errorf("out = %q", out)
	}

	out, _, err = runCLI(t, "arrange", doc, "--width", "80", "--expect", snap)
	if err == nil || !strings.Contains(err.Error(), "difference") {
		t.Errorf("--expect at another size: err = %v", err)
	}
	if !strings.Contains(out, "root: bounds") {
		t.Errorf("diff output = %q", out)
	}
}

func TestArrangeArgErrors(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{nil, "requires a document"},
		{[]string{"a.yaml", "b.yaml"}, "one document"},
		{[]string{"a.yaml", "--fit", "--width", "3"}, "--fit"},
		{[]string{"a.yaml", "--format", "json"}, "unknown output format"},
	}
	for _, tt := range tests {
		_, err := parseArrangeArgs(tt.args)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("parseArrangeArgs(%v) error = %v, want containing %q", tt.args, err, tt.want)
		}
	}
}

func TestArrangeInvalidDocument(t *testing.T) {
	dir := workspace(t)
	doc := writeFile(t, dir, "bad.yaml", "version: v1\nroot: {kind: box, children: [{kind: empty}, {kind: empty}]}\n")
	_, _, err := runCLI(t, "arrange", doc)
	if err == nil || !strings.Contains(err.Error(), "at most one child") {
		t.Errorf("err = %v", err)
	}
}

func TestCheck(t *testing.T) {
	dir := workspace(t)
	good := writeFile(t, dir, "good.yaml", columnDoc)
	bad := writeFile(t, dir, "bad.yaml", "version: v2\nroot: {kind: empty}\n")
	missing := filepath.Join(dir, "missing.yaml")

	out, errOut, err := runCLI(t, "check", good, bad, missing)
	if err == nil || !strings.Contains(err.Error(), "2 of 3 documents failed") {
		t.Errorf("err = %v", err)
	}
	if out != "ok  "+good+" 58x42\n" {
		t.Errorf("stdout = %q", out)
	}
	if !strings.Contains(errOut, "bad.yaml") || !strings.Contains(errOut, "missing.yaml") {
		t.Errorf("stderr should name the failing documents: %q", errOut)
	}

	if _, _, err := runCLI(t, "check", good); err != nil {
		t.Errorf("check good: %v", err)
	}
}

func TestEnv(t *testing.T) {
	dir := workspace(t)
	writeFile(t, dir, "go.mod", "module example.com/team/cards/v2\n")
	cfg := writeFile(t, dir, "alt.yaml", "viewport: {width: 320, height: 240}\nfont: {face: basic}\n")

	out, _, err := runCLI(t, "--config", cfg, "--verbose", "env")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"Config:   " + cfg,
		"Viewport: 320x240",
		"Font:     basic",
		"Verbose:  true",
		"Project:  cards (example.com/team/cards/v2)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("env output missing %q:\n%s", want, out)
		}
	}
}

func TestEnvDefaults(t *testing.T) {
	workspace(t)
	out, _, err := runCLI(t, "env")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Config:   (defaults)") || !strings.Contains(out, "Viewport: 800x600") {
		t.Errorf("out = %q", out)
	}
}

func TestGuardRecoversEnginePanics(t *testing.T) {
	var buf bytes.Buffer
	errors.SetHandler(&errors.LogHandler{Out: &buf})
	defer errors.SetHandler(nil)

	err := guard("measure x.yaml", func() error {
		panic(&errors.ContractError{Op: "layout.Box", Reason: "box holds at most one child, got 2"})
	})
	if err == nil || !strings.Contains(err.Error(), "internal error") {
		t.Errorf("guard error = %v", err)
	}
	if !strings.Contains(buf.String(), "[boxlayout panic] measure x.yaml") {
		t.Errorf("panic should be reported, got %q", buf.String())
	}
}

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
