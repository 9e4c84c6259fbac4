package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/assetsym/assetsym/internal/schema"
	"github.com/assetsym/assetsym/internal/symbols"
	"github.com/assetsym/assetsym/pkg/log"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file name looked up in the working directory.
const DefaultFile = "assetsym.yaml"

// Config represents the top-level configuration structure parsed from assetsym.yaml.
type Config struct {
	// Catalogs are the .xcassets directories or manifest files to read.
	Catalogs []string `yaml:"catalogs"`
	// Naming controls identifier generation.
	Naming NamingConfig `yaml:"naming"`
	// Outputs is the list of artifacts to generate.
	Outputs []Output `yaml:"outputs"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// NamingConfig controls identifier generation.
type NamingConfig struct {
	// Prefix is the namespace token prepended to identifiers (default "AC").
	Prefix string `yaml:"prefix"`
	// Collisions is the collision policy: "fail" (default) or "suffix".
	Collisions string `yaml:"collisions"`
}

// Output is one generated artifact.
type Output struct {
	// Target is the language rendered: "objc", "swift" or "go".
	Target string `yaml:"target"`
	// Path is where the artifact is written.
	Path string `yaml:"path"`
	// Package is the Go package name (go target only, default "assets").
	Package string `yaml:"package"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty logs to stderr.
	Path string `yaml:"path"`
}

// Targets lists the supported output targets.
var Targets = []string{"objc", "swift", "go"}

// defaultFileNames are used when an output omits its path.
var defaultFileNames = map[string]string{
	"objc":  "GeneratedAssetSymbols.h",
	"swift": "GeneratedAssetSymbols.swift",
	"go":    "assets_gen.go",
}

// Load reads, normalizes and validates the configuration file at path.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read reads and normalizes the configuration file at path without
// validating it, so callers can layer further overrides first. Relative
// catalog and output paths are resolved against the directory containing
// the file. Environment overrides are applied last and are taken relative
// to the working directory.
func Read(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	ApplyDefaults(cfg)
	cfg.Resolve(filepath.Dir(path))

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes configuration data without applying defaults.
func Parse(data []byte) (*Config, error) {
	if err := schema.Validate(schema.Config, data); err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return &cfg, nil
}

// Resolve makes relative catalog, output and log paths relative to dir.
func (c *Config) Resolve(dir string) {
	if dir == "" || dir == "." {
		return
	}
	for i, p := range c.Catalogs {
		c.Catalogs[i] = resolvePath(dir, p)
	}
	for i := range c.Outputs {
		if c.Outputs[i].Path != "" {
			c.Outputs[i].Path = resolvePath(dir, c.Outputs[i].Path)
		}
	}
	if c.Logging.Path != "" {
		c.Logging.Path = resolvePath(dir, c.Logging.Path)
	}
}

func resolvePath(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// ApplyDefaults sets default values for configuration fields that are missing.
func ApplyDefaults(config *Config) {
	if config.Naming.Prefix == "" {
		config.Naming.Prefix = symbols.DefaultPrefix
	}
	if config.Naming.Collisions == "" {
		config.Naming.Collisions = string(symbols.PolicyFail)
	}
	for i := range config.Outputs {
		out := &config.Outputs[i]
		if out.Path == "" {
			out.Path = defaultFileNames[out.Target]
		}
		if out.Target == "go" && out.Package == "" {
			out.Package = "assets"
		}
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
}

// Validate checks the configuration for errors such as missing catalogs,
// unknown targets or two outputs writing the same file.
func Validate(config *Config) error {
	if len(config.Catalogs) == 0 {
		return fmt.Errorf("no catalogs configured")
	}
	if len(config.Outputs) == 0 {
		return fmt.Errorf("no outputs configured")
	}

	if !isIdentifier(config.Naming.Prefix) {
		return fmt.Errorf("naming prefix %q is not a valid identifier", config.Naming.Prefix)
	}
	switch symbols.Policy(config.Naming.Collisions) {
	case symbols.PolicyFail, symbols.PolicySuffix:
		// ok
	default:
		return fmt.Errorf("invalid collision policy: %s (allowed: fail, suffix)", config.Naming.Collisions)
	}

	seenPaths := make(map[string]bool)
	for _, out := range config.Outputs {
		if _, ok := defaultFileNames[out.Target]; !ok {
			return fmt.Errorf("output '%s': target '%s' is not supported (allowed: %s)", out.Path, out.Target, strings.Join(Targets, ", "))
		}
		if out.Path == "" {
			return fmt.Errorf("output for target '%s' has no path", out.Target)
		}
		clean := filepath.Clean(out.Path)
		if seenPaths[clean] {
			return fmt.Errorf("duplicate output path: %s", out.Path)
		}
		seenPaths[clean] = true
		if out.Target == "go" && !isIdentifier(out.Package) {
			return fmt.Errorf("output '%s': package %q is not a valid Go identifier", out.Path, out.Package)
		}
	}

	if _, err := log.ParseLevel(config.Logging.Level); err != nil {
		return err
	}

	return nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
