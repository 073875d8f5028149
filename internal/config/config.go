package config

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/vango-dev/goey/internal/errors"
	"github.com/vango-dev/goey/pkg/export"
	"github.com/vango-dev/goey/pkg/preview"
	"github.com/vango-dev/goey/pkg/toast"
)

// Config is the contents of goey.json.
type Config struct {
	Toaster ToasterConfig `json:"toaster"`
	Preview PreviewConfig `json:"preview"`
	Export  ExportConfig  `json:"export"`

	configPath string
}

// ToasterConfig mirrors toast.Config with JSON-friendly field types.
type ToasterConfig struct {
	Position      string  `json:"position"`
	Gap           float64 `json:"gap"`
	Offset        string  `json:"offset,omitempty"`
	VisibleToasts int     `json:"visibleToasts"`
	Spring        bool    `json:"spring"`
	Bounce        float64 `json:"bounce"`
	Theme         string  `json:"theme"`

	// DisplayDuration is a Go duration string such as "4s".
	DisplayDuration string `json:"displayDuration"`

	Fill string `json:"fill,omitempty"`
}

// PreviewConfig configures `goey serve`.
type PreviewConfig struct {
	Host string `json:"host,omitempty"`
	Port int    `json:"port"`
}

// ExportConfig configures `goey export`.
type ExportConfig struct {
	// Store is "disk" or "s3". Empty picks s3 when a bucket is set.
	Store       string `json:"store,omitempty"`
	Dir         string `json:"dir"`
	Bucket      string `json:"bucket,omitempty"`
	Prefix      string `json:"prefix,omitempty"`
	Region      string `json:"region,omitempty"`
	FPS         int    `json:"fps"`
	Concurrency int    `json:"concurrency"`
}

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "goey.json"

	DefaultPort        = 7420
	DefaultExportDir   = "frames"
	DefaultFPS         = 60
	DefaultConcurrency = 4
)

// New returns a configuration holding every default.
func New() *Config {
	d := toast.DefaultConfig()
	return &Config{
		Toaster: ToasterConfig{
			Position:        string(d.Position),
			Gap:             d.Gap,
			Offset:          d.Offset,
			VisibleToasts:   d.VisibleToasts,
			Spring:          d.Spring,
			Bounce:          d.Bounce,
			Theme:           string(d.Theme),
			DisplayDuration: d.DisplayDuration.String(),
		},
		Preview: PreviewConfig{
			Port: DefaultPort,
		},
		Export: ExportConfig{
			Dir:         DefaultExportDir,
			FPS:         DefaultFPS,
			Concurrency: DefaultConcurrency,
		},
	}
}

// Load reads goey.json from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from path. Fields absent from the file keep
// their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("G011").
				WithDetail("No goey.json found at " + path).
				WithSuggestion("Run goey without --config to use the defaults").
				Wrap(err)
		}
		return nil, errors.New("G011").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.FromJSON("G011", path, data, err).
			WithSuggestion("Check that goey.json is valid JSON")
	}
	cfg.configPath = path
	cfg.applyDefaults()
	return cfg, nil
}

// SaveTo writes the configuration to path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("G011").Wrap(err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New("G011").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path the config was loaded from, or "".
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in zero values a partial file leaves behind.
func (c *Config) applyDefaults() {
	d := New()
	if c.Toaster.Position == "" {
		c.Toaster.Position = d.Toaster.Position
	}
	if c.Toaster.Theme == "" {
		c.Toaster.Theme = d.Toaster.Theme
	}
	if c.Toaster.DisplayDuration == "" {
		c.Toaster.DisplayDuration = d.Toaster.DisplayDuration
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = DefaultPort
	}
	if c.Export.Dir == "" {
		c.Export.Dir = DefaultExportDir
	}
	if c.Export.FPS == 0 {
		c.Export.FPS = DefaultFPS
	}
	if c.Export.Concurrency == 0 {
		c.Export.Concurrency = DefaultConcurrency
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	if c.Preview.Port < 0 || c.Preview.Port > 65535 {
		return errors.New("G010").
			WithDetail("preview.port must be between 0 and 65535")
	}
	if c.Export.FPS < 1 || c.Export.FPS > 240 {
		return errors.New("G010").
			WithDetailf("export.fps %d outside [1, 240]", c.Export.FPS)
	}
	if c.Export.Concurrency < 0 {
		return errors.New("G010").
			WithDetail("export.concurrency must not be negative")
	}
	if _, err := c.storeKind(); err != nil {
		return err
	}
	tc, err := c.ToasterConfig()
	if err != nil {
		return err
	}
	return tc.Validate()
}

// ToasterConfig converts the toaster section.
func (c *Config) ToasterConfig() (toast.Config, error) {
	pos, err := toast.ParsePosition(c.Toaster.Position)
	if err != nil {
		return toast.Config{}, err
	}
	d, err := time.ParseDuration(c.Toaster.DisplayDuration)
	if err != nil {
		return toast.Config{}, errors.New("G010").
			WithDetailf("toaster.displayDuration %q", c.Toaster.DisplayDuration).
			WithSuggestion("Use a duration such as \"4s\" or \"2500ms\"")
	}
	return toast.Config{
		Position:        pos,
		Gap:             c.Toaster.Gap,
		Offset:          c.Toaster.Offset,
		VisibleToasts:   c.Toaster.VisibleToasts,
		Spring:          c.Toaster.Spring,
		Bounce:          c.Toaster.Bounce,
		Theme:           toast.Theme(c.Toaster.Theme),
		DisplayDuration: d,
		FillColor:       c.Toaster.Fill,
	}, nil
}

// Addr is the preview server's listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Preview.Host, strconv.Itoa(c.Preview.Port))
}

// FrameInterval is the spacing between exported frames.
func (c *Config) FrameInterval() time.Duration {
	if c.Export.FPS <= 0 {
		return time.Second / DefaultFPS
	}
	return time.Second / time.Duration(c.Export.FPS)
}

// PreviewServerConfig builds the preview server configuration.
func (c *Config) PreviewServerConfig() (preview.Config, error) {
	tc, err := c.ToasterConfig()
	if err != nil {
		return preview.Config{}, err
	}
	pc := preview.DefaultConfig()
	pc.Addr = c.Addr()
	pc.Toaster = tc
	return pc, nil
}

// StoreConfig builds the export store selection. A relative dir is
// resolved against the config file's directory.
func (c *Config) StoreConfig() (export.StoreConfig, error) {
	kind, err := c.storeKind()
	if err != nil {
		return export.StoreConfig{}, err
	}
	dir := c.Export.Dir
	if !filepath.IsAbs(dir) && c.Dir() != "" {
		dir = filepath.Join(c.Dir(), dir)
	}
	return export.StoreConfig{
		Kind:   kind,
		Dir:    dir,
		Bucket: c.Export.Bucket,
		Prefix: c.Export.Prefix,
		Region: c.Export.Region,
	}, nil
}

func (c *Config) storeKind() (string, error) {
	switch c.Export.Store {
	case "":
		if c.Export.Bucket != "" {
			return "s3", nil
		}
		return "disk", nil
	case "disk", "s3":
		return c.Export.Store, nil
	}
	return "", errors.New("G021").WithDetailf("export.store %q", c.Export.Store)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// ErrNotFound is returned by FindProjectRoot when no goey.json exists in
// startDir or above.
var ErrNotFound = stderrors.New("config: goey.json not found")

// FindProjectRoot walks up from startDir to the nearest directory holding
// goey.json.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}
	for {
		if Exists(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w in %s or any parent directory", ErrNotFound, startDir)
		}
		dir = parent
	}
}

// Discover loads the nearest goey.json at or above startDir, or returns
// the defaults when there is none.
func Discover(startDir string) (*Config, error) {
	root, err := FindProjectRoot(startDir)
	if stderrors.Is(err, ErrNotFound) {
		return New(), nil
	}
	if err != nil {
		return nil, err
	}
	return Load(root)
}
