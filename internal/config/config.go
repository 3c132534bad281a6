package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the runner's own settings. Tasks themselves are declared in
// code, not configured here.
type Config struct {
	Debug bool `yaml:"debug"` // Enable debug tracing, same effect as --debug
	Color bool `yaml:"color"` // Colorized output; set false for dumb terminals
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Debug: false,
		Color: true,
	}
}

// Load reads the runner configuration from the YAML file at path.
// A missing file is not an error; the defaults apply. A file that exists
// but does not parse is an error, since silently ignoring a config the
// operator wrote would be worse than refusing to run.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// DebugFromEnv reports whether the TASKRUN_DEBUG environment variable asks
// for debug tracing. Any value other than empty, "0", "false" or "no"
// counts as enabled.
func DebugFromEnv() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("TASKRUN_DEBUG"))) {
	case "", "0", "false", "no":
		return false
	default:
		return true
	}
}
