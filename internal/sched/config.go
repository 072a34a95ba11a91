package sched

import (
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors config.yml. Capacity and tick period would be fixed at
// compile time on a microcontroller; here they are load-time knobs.
type Config struct {
	Capacity int    `yaml:"capacity"` // max concurrent pending tasks (10 by default)
	TickMS   int    `yaml:"tick_ms"`  // SoftwareCPU tick period, ms (5 by default)
	CSVPath  string `yaml:"csv_path"` // optional dispatch log; empty disables it
}

// defaultConfig returns the values used when no config file is present.
func defaultConfig() Config {
	return Config{
		Capacity: 10,
		TickMS:   5,
	}
}

// Load reads YAML and overrides defaults; an empty path returns defaults
// only, and a missing or malformed file falls back to defaults rather
// than failing the caller.
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	// sanity clamps
	if cfg.Capacity <= 0 {
		cfg.Capacity = 10
	}
	if cfg.TickMS <= 0 {
		cfg.TickMS = 5
	}

	return cfg
}
