package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/assetsym/assetsym/internal/config"
)

// overrides are the command-line settings layered over assetsym.yaml.
type overrides struct {
	catalogs   []string
	outputs    []string
	goPackage  string
	prefix     string
	collisions string
}

// loadConfig reads the configuration file, applies command-line overrides
// and validates the result once. When the file does not exist, a
// configuration built purely from --catalog and --output flags is accepted.
// Commands that never write outputs pass requireOutputs=false.
func loadConfig(path string, o overrides, requireOutputs bool) (*config.Config, error) {
	var cfg *config.Config

	if _, err := os.Stat(path); err == nil {
		cfg, err = config.Read(path)
		if err != nil {
			return nil, err
		}
	} else if os.IsNotExist(err) && len(o.catalogs) > 0 && (len(o.outputs) > 0 || !requireOutputs) {
		cfg = &config.Config{}
		config.ApplyDefaults(cfg)
		if err := config.ApplyEnv(cfg); err != nil {
			return nil, err
		}
	} else {
		return nil, fmt.Errorf("failed to read %s (run 'assetsym init' or pass --catalog and --output): %w", path, err)
	}

	if len(o.catalogs) > 0 {
		cfg.Catalogs = o.catalogs
	}
	if len(o.outputs) > 0 {
		outputs, err := parseOutputs(o.outputs, o.goPackage)
		if err != nil {
			return nil, err
		}
		cfg.Outputs = outputs
	}
	if o.prefix != "" {
		cfg.Naming.Prefix = o.prefix
	}
	if o.collisions != "" {
		cfg.Naming.Collisions = o.collisions
	}

	if !requireOutputs && len(cfg.Outputs) == 0 {
		cfg.Outputs = []config.Output{{Target: "objc"}}
	}

	config.ApplyDefaults(cfg)
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseOutputs parses --output values of the form "target" or "target=path".
func parseOutputs(values []string, goPackage string) ([]config.Output, error) {
	outputs := make([]config.Output, 0, len(values))
	for _, v := range values {
		target, path, _ := strings.Cut(v, "=")
		target = strings.TrimSpace(target)
		if target == "" {
			return nil, fmt.Errorf("invalid --output %q (expected target=path)", v)
		}
		out := config.Output{Target: target, Path: strings.TrimSpace(path)}
		if target == "go" {
			out.Package = goPackage
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}
