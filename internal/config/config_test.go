package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vango-dev/goey/internal/errors"
	"github.com/vango-dev/goey/pkg/toast"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Toaster.Position != string(toast.BottomRight) {
		t.Errorf("Toaster.Position = %q, want %q", cfg.Toaster.Position, toast.BottomRight)
	}
	if cfg.Preview.Port != DefaultPort {
		t.Errorf("Preview.Port = %d, want %d", cfg.Preview.Port, DefaultPort)
	}
	if cfg.Export.FPS != DefaultFPS {
		t.Errorf("Export.FPS = %d, want %d", cfg.Export.FPS, DefaultFPS)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	tc, err := cfg.ToasterConfig()
	if err != nil {
		t.Fatal(err)
	}
	if tc != toast.DefaultConfig() {
		t.Errorf("ToasterConfig() = %+v, want defaults %+v", tc, toast.DefaultConfig())
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(tmpDir)
	if err == nil {
		t.Fatal("expected error for missing config")
	}
	if errors.CodeOf(err) != "G011" {
		t.Errorf("missing config code = %q, want G011", errors.CodeOf(err))
	}

	configJSON := `{
  "toaster": {
    "position": "top-center",
    "spring": false,
    "theme": "dark",
    "displayDuration": "2500ms"
  },
  "preview": {"host": "127.0.0.1", "port": 8080},
  "export": {"bucket": "toasts", "prefix": "demo", "fps": 30}
}
`
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(configJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	tc, err := cfg.ToasterConfig()
	if err != nil {
		t.Fatal(err)
	}
	if tc.Position != toast.TopCenter || tc.Spring || tc.Theme != toast.ThemeDark {
		t.Errorf("toaster = %+v", tc)
	}
	if tc.DisplayDuration != 2500*time.Millisecond {
		t.Errorf("DisplayDuration = %v, want 2.5s", tc.DisplayDuration)
	}
	// Untouched fields keep their defaults.
	if tc.Gap != toast.DefaultConfig().Gap || tc.VisibleToasts != 3 {
		t.Errorf("defaults lost: gap=%v visible=%d", tc.Gap, tc.VisibleToasts)
	}

	if got := cfg.Addr(); got != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q", got)
	}
	if got := cfg.FrameInterval(); got != time.Second/30 {
		t.Errorf("FrameInterval() = %v", got)
	}
	if cfg.Dir() != tmpDir {
		t.Errorf("Dir() = %q, want %q", cfg.Dir(), tmpDir)
	}

	sc, err := cfg.StoreConfig()
	if err != nil {
		t.Fatal(err)
	}
	if sc.Kind != "s3" || sc.Bucket != "toasts" || sc.Prefix != "demo" {
		t.Errorf("StoreConfig() = %+v", sc)
	}

	pc, err := cfg.PreviewServerConfig()
	if err != nil {
		t.Fatal(err)
	}
	if pc.Addr != "127.0.0.1:8080" || pc.Toaster.Position != toast.TopCenter {
		t.Errorf("PreviewServerConfig() = %+v", pc)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte(`{"toaster": `), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFile(path)
	if errors.CodeOf(err) != "G011" {
		t.Fatalf("code = %q, want G011 (err %v)", errors.CodeOf(err), err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		code   string
	}{
		{"port too large", func(c *Config) { c.Preview.Port = 70000 }, "G010"},
		{"fps zero", func(c *Config) { c.Export.FPS = 0 }, "G010"},
		{"negative concurrency", func(c *Config) { c.Export.Concurrency = -1 }, "G010"},
		{"unknown store", func(c *Config) { c.Export.Store = "ftp" }, "G021"},
		{"bad position", func(c *Config) { c.Toaster.Position = "middle" }, "G030"},
		{"bad duration", func(c *Config) { c.Toaster.DisplayDuration = "soon" }, "G010"},
		{"bounce out of range", func(c *Config) { c.Toaster.Bounce = 2 }, "G010"},
		{"unknown theme", func(c *Config) { c.Toaster.Theme = "sepia" }, "G010"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.CodeOf(err); got != tt.code {
				t.Errorf("code = %q, want %q (err %v)", got, tt.code, err)
			}
		})
	}
}

func TestStoreConfigResolvesDir(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := New()
	if err := cfg.SaveTo(filepath.Join(tmpDir, ConfigFileName)); err != nil {
		t.Fatal(err)
	}

	sc, err := cfg.StoreConfig()
	if err != nil {
		t.Fatal(err)
	}
	if sc.Kind != "disk" {
		t.Errorf("Kind = %q, want disk", sc.Kind)
	}
	if want := filepath.Join(tmpDir, DefaultExportDir); sc.Dir != want {
		t.Errorf("Dir = %q, want %q", sc.Dir, want)
	}

	reloaded, err := Load(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Toaster != cfg.Toaster || reloaded.Export != cfg.Export {
		t.Errorf("saved config did not round trip")
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Discover(nested)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Path() != "" {
		t.Errorf("expected defaults without a file, got path %q", cfg.Path())
	}

	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte(`{"preview":{"port":9000}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	found, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatal(err)
	}
	if found != root {
		t.Errorf("FindProjectRoot = %q, want %q", found, root)
	}
	cfg, err = Discover(nested)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Preview.Port != 9000 {
		t.Errorf("Preview.Port = %d, want 9000", cfg.Preview.Port)
	}
}
