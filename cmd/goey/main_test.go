package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/goey/internal/config"
	"github.com/vango-dev/goey/internal/errors"
	"github.com/vango-dev/goey/pkg/export"
	"github.com/vango-dev/goey/pkg/shell"
	"github.com/vango-dev/goey/pkg/timeline"
)

// run executes the CLI with a fresh goey.json in a temp dir.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, config.ConfigFileName)
	if err := config.New().SaveTo(cfgPath); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionShort(t *testing.T) {
	out, err := run(t, "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version = %q, want %q", out, version)
	}
}

func TestOutlinePath(t *testing.T) {
	out, err := run(t, "outline", "--path", "--t", "0")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(strings.TrimSpace(out), "M") {
		t.Errorf("path output %q does not start with a moveto", out)
	}
}

func TestOutlineSVG(t *testing.T) {
	out, err := run(t, "outline", "--anchor", "center", "--stroke", "#000")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "<path") {
		t.Errorf("expected an SVG document, got %q", out)
	}
}

func TestOutlineBadAnchor(t *testing.T) {
	_, err := run(t, "outline", "--anchor", "diagonal")
	if errors.CodeOf(err) != "G031" {
		t.Fatalf("code = %q, want G031 (err %v)", errors.CodeOf(err), err)
	}
}

func TestRenderCheck(t *testing.T) {
	out, err := run(t, "render", "--check")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(shell.RequiredClasses()) {
		t.Errorf("printed %d classes, want %d", len(lines), len(shell.RequiredClasses()))
	}
}

func TestRenderMarkup(t *testing.T) {
	out, err := run(t, "render", "--title", "Uploaded", "--at", "500ms")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Uploaded") {
		t.Errorf("markup does not contain the title: %q", out)
	}
}

func TestRenderBadPhase(t *testing.T) {
	_, err := run(t, "render", "--phase", "mystery")
	if errors.CodeOf(err) != "G032" {
		t.Fatalf("code = %q, want G032 (err %v)", errors.CodeOf(err), err)
	}
}

func TestSimulateJSON(t *testing.T) {
	out, err := run(t, "simulate", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var frames []timeline.Frame
	if err := json.Unmarshal([]byte(out), &frames); err != nil {
		t.Fatalf("output is not a frame list: %v", err)
	}
	if len(frames) < 2 {
		t.Fatalf("got %d frames", len(frames))
	}
	if frames[0].At != 0 {
		t.Errorf("first frame at %dms, want 0", frames[0].At)
	}
}

func TestSimulateScriptTable(t *testing.T) {
	script := `{
  "phase": "loading",
  "title": "Uploading...",
  "limit": "2s",
  "steps": [{"at": "500ms", "action": "update", "phase": "success", "title": "Uploaded"}]
}`
	path := filepath.Join(t.TempDir(), "script.json")
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "simulate", "--script", path, "--every", "10")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "FRAME") {
		t.Errorf("missing table header: %q", out)
	}
	if !strings.Contains(out, "loading") || !strings.Contains(out, "success") {
		t.Errorf("expected both phases in the table:\n%s", out)
	}
}

func TestSimulateBadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.json")
	if err := os.WriteFile(path, []byte(`{"phase": `), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := run(t, "simulate", "--script", path)
	if errors.CodeOf(err) != "G010" {
		t.Fatalf("code = %q, want G010 (err %v)", errors.CodeOf(err), err)
	}
}

func TestExportToDir(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "export", "--dir", dir, "--fps", "10", "--concurrency", "2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Exported") {
		t.Errorf("unexpected output %q", out)
	}

	data, err := os.ReadFile(filepath.Join(dir, export.ManifestName))
	if err != nil {
		t.Fatal(err)
	}
	var m export.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if len(m.Frames) == 0 {
		t.Fatal("manifest lists no frames")
	}
	if m.FrameInterval < 100 {
		t.Errorf("frame interval %dms, want at least 100ms at 10fps", m.FrameInterval)
	}
	if _, err := os.Stat(filepath.Join(dir, m.Frames[0].Name)); err != nil {
		t.Errorf("first frame missing: %v", err)
	}
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	if err := os.WriteFile(path, []byte(`{"toaster": {"position": "middle"}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", path, "outline"})
	if err := cmd.Execute(); errors.CodeOf(err) != "G030" {
		t.Fatalf("code = %q, want G030 (err %v)", errors.CodeOf(err), err)
	}
}
