package config

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"atlas/keys"
)

//go:embed config.toml
var config embed.FS

const confName = "config.toml"

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	TabStop        int               `toml:"tab_stop" yaml:"tab_stop" json:"tab_stop"`
	QuitTimes      int               `toml:"quit_times" yaml:"quit_times" json:"quit_times"`
	MessageTimeout int               `toml:"message_timeout" yaml:"message_timeout" json:"message_timeout"`
	LogLevel       string            `toml:"log_level" yaml:"log_level" json:"log_level"`
	Keys           map[string]string `toml:"keys" yaml:"keys" json:"keys"`
}

// Default returns the embedded default configuration.
func Default() *Config {
	content, err := fs.ReadFile(config, confName)
	if err != nil {
		panic(fmt.Sprintf("read embedded config: %v", err))
	}
	cfg := &Config{}
	if err := decode(confName, content, cfg); err != nil {
		panic(fmt.Sprintf("decode embedded config: %v", err))
	}
	return cfg
}

// MessageDuration is how long a status message stays visible.
func (c *Config) MessageDuration() time.Duration {
	return time.Duration(c.MessageTimeout) * time.Second
}

func (c *Config) Validate() error {
	var errs []error
	if c.TabStop < 1 || c.TabStop > 16 {
		errs = append(errs, fmt.Errorf("tab_stop must be between 1 and 16, got %d", c.TabStop))
	}
	if c.QuitTimes < 0 || c.QuitTimes > 10 {
		errs = append(errs, fmt.Errorf("quit_times must be between 0 and 10, got %d", c.QuitTimes))
	}
	if c.MessageTimeout < 1 {
		errs = append(errs, fmt.Errorf("message_timeout must be positive, got %d", c.MessageTimeout))
	}
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		errs = append(errs, fmt.Errorf("unknown log_level %q", c.LogLevel))
	}
	for spec := range c.Keys {
		if _, err := keys.Parse(spec); err != nil {
			errs = append(errs, fmt.Errorf("keys: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// Dir is the directory holding the configuration and the log file.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "atlas")
	}
	return filepath.Join(os.Getenv("HOME"), ".atlas")
}

// Path is the configuration file to use; ATLAS_CONFIG overrides the default.
func Path() string {
	if p := os.Getenv("ATLAS_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(Dir(), confName)
}

// Init writes the default configuration to path if no file exists there,
// then loads it.
func Init(path string) (*Config, error) {
	if err := writeConfigIfMissing(path); err != nil {
		return nil, err
	}
	return Load(path)
}

func writeConfigIfMissing(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}

	content, err := fs.ReadFile(config, confName)
	if err != nil {
		return fmt.Errorf("read embedded config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load reads the file at path over the defaults and validates the result.
// The format follows the extension: .toml, .yaml, .yml or .json.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	defaults := cfg.Keys
	cfg.Keys = nil
	if err := decode(path, content, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
	}
	user, err := canonicalKeys(cfg.Keys)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
	}
	cfg.Keys = defaults
	maps.Copy(cfg.Keys, user)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(path string, content []byte, cfg *Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return toml.NewDecoder(bytes.NewReader(content)).DisallowUnknownFields().Decode(cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(content))
		dec.DisallowUnknownFields()
		return dec.Decode(cfg)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
}

// canonicalKeys rewrites every key spec to the form keys.Event.String
// produces, so that "C-h" in a user file replaces the default "ctrl-h".
func canonicalKeys(bindings map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(bindings))
	from := make(map[string]string, len(bindings))
	for spec, name := range bindings {
		ev, err := keys.Parse(spec)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", spec, err)
		}
		key := ev.String()
		if prev, ok := from[key]; ok && out[key] != name {
			return nil, fmt.Errorf("keys %q and %q are the same key bound to %q and %q", prev, spec, out[key], name)
		}
		out[key] = name
		from[key] = spec
	}
	return out, nil
}
