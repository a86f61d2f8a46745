package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultTemplate is used when neither a flag nor the config file names one.
	DefaultTemplate = "Next.js"

	// DefaultErrorPreview caps how many failing paths a deletion summary lists.
	DefaultErrorPreview = 5
)

// Config is the on-disk user configuration.
type Config struct {
	DefaultTemplate string           `toml:"default_template"`
	ErrorPreview    int              `toml:"error_preview"`
	Confirm         *bool            `toml:"confirm"`
	Templates       []TemplateConfig `toml:"templates"`
}

// TemplateConfig is a user-defined template as written in the config file.
type TemplateConfig struct {
	Name    string   `toml:"name"`
	Folders []string `toml:"folders"`
	Files   []string `toml:"files"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	confirm := true
	return &Config{
		DefaultTemplate: DefaultTemplate,
		ErrorPreview:    DefaultErrorPreview,
		Confirm:         &confirm,
	}
}

// DefaultPath returns the config file location under the user config dir.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			home = "."
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "projclean", "config.toml")
}

// Load reads the config file at path. A missing file yields DefaultConfig.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.WithField("path", path).Debug("no config file, using defaults")
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	log.WithFields(log.Fields{
		"path":      path,
		"templates": len(cfg.Templates),
	}).Debug("loaded config")
	return cfg, nil
}

func (c *Config) validate() error {
	if c.ErrorPreview < 0 {
		return fmt.Errorf("error_preview must not be negative, got %d", c.ErrorPreview)
	}
	for i, t := range c.Templates {
		if t.Name == "" {
			return fmt.Errorf("templates[%d]: name is required", i)
		}
		if len(t.Folders) == 0 && len(t.Files) == 0 {
			return fmt.Errorf("template %q: needs at least one folder or file", t.Name)
		}
	}
	return nil
}

// ConfirmDeletes reports whether deletions must be confirmed interactively.
func (c *Config) ConfirmDeletes() bool {
	return c.Confirm == nil || *c.Confirm
}

// Registry builds the template registry from the built-ins plus the
// templates defined in the file.
func (c *Config) Registry() *Registry {
	extra := make([]Template, 0, len(c.Templates))
	for _, tc := range c.Templates {
		t := Template{Name: tc.Name, Folders: tc.Folders, Files: tc.Files}
		if bad := t.UnsupportedPatterns(); len(bad) > 0 {
			log.WithFields(log.Fields{
				"template": t.Name,
				"patterns": bad,
			}).Warn("wildcards are only supported at the start or end of a pattern; these will never match")
		}
		extra = append(extra, t)
	}
	return NewRegistry(extra...)
}
