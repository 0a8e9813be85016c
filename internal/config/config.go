package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the server configuration, loaded from a YAML file. Flags
// override whatever the file provides.
type Config struct {
	// Listen is the TCP address of the game server.
	Listen string `yaml:"listen"`
	// WebListen is the HTTP address of the browser UI.
	WebListen string `yaml:"web_listen"`
	// Seed fixes the shuffle for every run (0 = random).
	Seed int64 `yaml:"seed"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Listen:    ":9000",
		WebListen: ":8080",
	}
}

// Load reads a YAML config file over the defaults. A missing file is not an
// error: the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
