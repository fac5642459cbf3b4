package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the CLI/REPL configuration, loaded from quill.toml.
type Config struct {
	REPL   REPLConfig   `toml:"repl"`
	Output OutputConfig `toml:"output"`
}

// REPLConfig holds interactive-session settings.
type REPLConfig struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"`
}

// OutputConfig holds rendering settings shared by all commands.
type OutputConfig struct {
	Color bool `toml:"color"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		REPL: REPLConfig{
			Prompt:      ">> ",
			HistoryFile: ".quill_history",
		},
		Output: OutputConfig{
			Color: true,
		},
	}
}

// Load reads the TOML config at path on top of the defaults. A missing file
// is not an error: the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}
