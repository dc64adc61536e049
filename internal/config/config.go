package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/pflag"
)

const configFile = ".fadelist/config.json"

// Config holds list animation and source settings.
type Config struct {
	DebounceMS     int    `json:"debounce_ms"`
	DurationMS     int    `json:"duration_ms"`
	FrameRate      int    `json:"fps"`
	ItemHeight     int    `json:"item_height"`
	PollIntervalMS int    `json:"poll_interval_ms"`
	Foreground     string `json:"foreground,omitempty"`
	Background     string `json:"background,omitempty"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DebounceMS:     500,
		DurationMS:     200,
		FrameRate:      60,
		ItemHeight:     0,
		PollIntervalMS: 1000,
		Foreground:     "#dadada",
		Background:     "#000000",
	}
}

// Load reads the config from disk on top of the defaults
func Load(baseDir string) (*Config, error) {
	configPath := filepath.Join(baseDir, configFile)
	cfg := Default()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Path returns the config file location for baseDir.
func Path(baseDir string) string {
	return filepath.Join(baseDir, configFile)
}

// Save writes the config to disk
func Save(baseDir string, cfg *Config) error {
	configPath := filepath.Join(baseDir, configFile)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// ApplyEnv overrides settings from FADELIST_* variables. Unparseable or
// out-of-range values are ignored.
func ApplyEnv(cfg *Config) {
	envInt("FADELIST_DEBOUNCE_MS", 0, &cfg.DebounceMS)
	envInt("FADELIST_DURATION_MS", 1, &cfg.DurationMS)
	envInt("FADELIST_FPS", 1, &cfg.FrameRate)
	envInt("FADELIST_ITEM_HEIGHT", 0, &cfg.ItemHeight)
	envInt("FADELIST_POLL_INTERVAL_MS", 1, &cfg.PollIntervalMS)
	if v := os.Getenv("FADELIST_FOREGROUND"); v != "" {
		cfg.Foreground = v
	}
	if v := os.Getenv("FADELIST_BACKGROUND"); v != "" {
		cfg.Background = v
	}
}

func envInt(name string, floor int, dst *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < floor {
		return
	}
	*dst = n
}

// Flag names shared by RegisterFlags and ApplyFlags.
const (
	FlagDebounce   = "debounce"
	FlagDuration   = "duration"
	FlagFPS        = "fps"
	FlagItemHeight = "item-height"
	FlagPoll       = "interval"
)

// RegisterFlags adds the animation flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Duration(FlagDebounce, ms(d.DebounceMS), "Quiet period before a data change is applied")
	fs.Duration(FlagDuration, ms(d.DurationMS), "Length of the enter and exit transitions")
	fs.Int(FlagFPS, d.FrameRate, "Animation frames per second")
	fs.Int(FlagItemHeight, d.ItemHeight, "Fixed row height in lines (0 = intrinsic, fade only)")
	fs.Duration(FlagPoll, ms(d.PollIntervalMS), "Poll interval for polling sources")
}

// ApplyFlags copies flags the user set explicitly into cfg, so flags win
// over env and file values while unset flags leave them alone.
func ApplyFlags(fs *pflag.FlagSet, cfg *Config) error {
	if f := fs.Lookup(FlagDebounce); f != nil && f.Changed {
		v, err := fs.GetDuration(FlagDebounce)
		if err != nil {
			return err
		}
		cfg.DebounceMS = int(v.Milliseconds())
	}
	if f := fs.Lookup(FlagDuration); f != nil && f.Changed {
		v, err := fs.GetDuration(FlagDuration)
		if err != nil {
			return err
		}
		cfg.DurationMS = int(v.Milliseconds())
	}
	if f := fs.Lookup(FlagFPS); f != nil && f.Changed {
		v, err := fs.GetInt(FlagFPS)
		if err != nil {
			return err
		}
		cfg.FrameRate = v
	}
	if f := fs.Lookup(FlagItemHeight); f != nil && f.Changed {
		v, err := fs.GetInt(FlagItemHeight)
		if err != nil {
			return err
		}
		cfg.ItemHeight = v
	}
	if f := fs.Lookup(FlagPoll); f != nil && f.Changed {
		v, err := fs.GetDuration(FlagPoll)
		if err != nil {
			return err
		}
		cfg.PollIntervalMS = int(v.Milliseconds())
	}
	return nil
}

// Resolve loads the file config for baseDir, then applies env and flags.
func Resolve(baseDir string, fs *pflag.FlagSet) (*Config, error) {
	cfg, err := Load(baseDir)
	if err != nil {
		return nil, err
	}
	ApplyEnv(cfg)
	if fs != nil {
		if err := ApplyFlags(fs, cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Debounce returns the debounce window.
func (c Config) Debounce() time.Duration { return ms(c.DebounceMS) }

// Duration returns the transition length.
func (c Config) Duration() time.Duration { return ms(c.DurationMS) }

// PollInterval returns the polling source interval.
func (c Config) PollInterval() time.Duration { return ms(c.PollIntervalMS) }

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }
