// Package config loads service configuration from an optional YAML file with
// environment overrides. The loaded Config is passed explicitly to whatever
// needs it; nothing here is process-global.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrInvalidLogLevel = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidTZOffset = errors.New("sheet.tz_offset_hours must be between -12 and 14")
	ErrMissingAddr     = errors.New("server.addr is required")
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Sheet   SheetConfig   `yaml:"sheet"`
	Auth    AuthConfig    `yaml:"auth"`
	Browser BrowserConfig `yaml:"browser"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Addr   string `yaml:"addr"`
	DBPath string `yaml:"db_path"`
}

// SheetConfig carries the document's fixed text and the target display zone.
type SheetConfig struct {
	TZOffsetHours  int    `yaml:"tz_offset_hours"`
	TZLabel        string `yaml:"tz_label"`
	DefaultTitle   string `yaml:"default_title"`
	Banner         string `yaml:"banner"`
	Footer         string `yaml:"footer"`
	SentenceTable  *bool  `yaml:"sentence_table"`  // nil means on
	TrustedMessage bool   `yaml:"trusted_message"` // embed narrative as raw markup
}

type AuthConfig struct {
	Secret   string `yaml:"secret"` // empty disables auth
	Issuer   string `yaml:"issuer"`
	TTLHours int    `yaml:"ttl_hours"`
}

type BrowserConfig struct {
	Bin string `yaml:"bin"` // empty lets the launcher locate a browser
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration the original deployment shipped with:
// open service, Asia/Dhaka display zone, sentence table on.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr: ":8080",
		},
		Sheet: SheetConfig{
			TZOffsetHours: 6,
			TZLabel:       "GMT+6",
			DefaultTitle:  "No Title",
			Banner:        "AI Powered English Learning Notes from contemporary news",
			Footer:        "Generated by EnglishKaku  AI powered Workflow",
		},
		Auth: AuthConfig{
			Issuer:   "englishkaku",
			TTLHours: 24,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the file at path (when non-empty) over the defaults, then
// applies environment overrides, then validates.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ENGLISHKAKU_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("ENGLISHKAKU_DB_PATH"); v != "" {
		cfg.Server.DBPath = v
	}
	if v := os.Getenv("ENGLISHKAKU_JWT_SECRET"); v != "" {
		cfg.Auth.Secret = v
	}
	if v := os.Getenv("ENGLISHKAKU_BROWSER_BIN"); v != "" {
		cfg.Browser.Bin = v
	}
	if v := os.Getenv("ENGLISHKAKU_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("ENGLISHKAKU_TZ_OFFSET_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Sheet.TZOffsetHours = n
		}
	}
}

func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return ErrMissingAddr
	}
	if c.Sheet.TZOffsetHours < -12 || c.Sheet.TZOffsetHours > 14 {
		return ErrInvalidTZOffset
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	return nil
}

// SentenceTableEnabled resolves the tri-state flag; the superset layout is
// the default.
func (c SheetConfig) SentenceTableEnabled() bool {
	return c.SentenceTable == nil || *c.SentenceTable
}

func (c AuthConfig) TTL() time.Duration {
	if c.TTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.TTLHours) * time.Hour
}
