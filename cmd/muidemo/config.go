package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// config is the demo binary's optional muidemo.toml configuration,
// grounded in the ambient-stack choice of github.com/BurntSushi/toml
// (present as an indirect dependency across the retrieval pack's
// javanhut-RavenTerminal and phroun-pawscript trees).
type config struct {
	Width     int   `toml:"width"`
	Height    int   `toml:"height"`
	Windowed  bool  `toml:"windowed"`
	Verbose   bool  `toml:"verbose"`
	StartForm uint8 `toml:"start_form"`
}

func defaultConfig() config {
	return config{
		Width:     128,
		Height:    64,
		Windowed:  false,
		Verbose:   false,
		StartForm: 0,
	}
}

// loadConfig reads path if present, overlaying values onto the defaults;
// a missing file is not an error — the demo runs fine with defaults alone,
// matching §7's "degrades defensively" posture applied to ambient config.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
