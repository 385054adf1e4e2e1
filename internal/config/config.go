// Package config loads the sheet configuration from defaults, an optional
// YAML file, SHEET_ environment variables and command-line flags.
package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/kv"
)

// EnvPrefix is prepended to every environment override: SHEET_STORAGE_DRIVER
const EnvPrefix = "SHEET"

// Keys shared by flags, files and environment
const (
	KeyProfile             = "profile"
	KeyStorageDriver       = "storage.driver"
	KeyStorageSQLitePath   = "storage.sqlite_path"
	KeyRedisAddr           = "redis.addr"
	KeyRedisPassword       = "redis.password"
	KeyRedisDB             = "redis.db"
	KeyDiceRollDelay       = "dice.roll_delay"
	KeyDiceHistoryCapacity = "dice.history_capacity"
	KeyDiceDisplayLimit    = "dice.display_limit"
	KeyLoggingLevel        = "logging.level"
	KeyLoggingFormat       = "logging.format"
)

var profilePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// StorageConfig selects the key/value backend.
type StorageConfig struct {
	// Driver is one of kv.Drivers
	Driver     string `mapstructure:"driver"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

// RedisConfig holds Redis connection settings, used by the redis driver.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// DiceConfig tunes the dice service.
type DiceConfig struct {
	RollDelay       time.Duration `mapstructure:"roll_delay"`
	HistoryCapacity int           `mapstructure:"history_capacity"`
	DisplayLimit    int           `mapstructure:"display_limit"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "text".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Profile string        `mapstructure:"profile"`
	Storage StorageConfig `mapstructure:"storage"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Dice    DiceConfig    `mapstructure:"dice"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SheetProfile returns the configured profile as an entity
func (c Config) SheetProfile() sheet.Profile {
	return sheet.Profile{ID: c.Profile}
}

// Validate checks all configuration invariants and reports every violation.
func (c Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if !profilePattern.MatchString(c.Profile) {
		vb.InvalidField(KeyProfile, "must be letters, digits, '-' or '_'")
	}
	validateStorage(c.Storage, c.Redis, vb)
	validateDice(c.Dice, vb)
	validateLogging(c.Logging, vb)

	return vb.Build()
}

func validateStorage(s StorageConfig, r RedisConfig, vb *errors.ValidationBuilder) {
	errors.ValidateEnum(KeyStorageDriver, s.Driver, kv.Drivers, vb)

	switch s.Driver {
	case kv.DriverSQLite:
		errors.ValidateRequired(KeyStorageSQLitePath, strings.TrimSpace(s.SQLitePath), vb)
	case kv.DriverRedis:
		errors.ValidateRequired(KeyRedisAddr, strings.TrimSpace(r.Addr), vb)
		if r.DB < 0 {
			vb.InvalidField(KeyRedisDB, "must not be negative")
		}
	}
}

func validateDice(d DiceConfig, vb *errors.ValidationBuilder) {
	if d.RollDelay < 0 {
		vb.InvalidField(KeyDiceRollDelay, "must not be negative")
	}
	if d.HistoryCapacity < 1 {
		vb.Fieldf(KeyDiceHistoryCapacity, "must be >= 1, got %d", d.HistoryCapacity)
	}
	if d.DisplayLimit < 1 {
		vb.Fieldf(KeyDiceDisplayLimit, "must be >= 1, got %d", d.DisplayLimit)
	}
	if d.HistoryCapacity >= 1 && d.DisplayLimit > d.HistoryCapacity {
		vb.Field(KeyDiceDisplayLimit, "must not exceed dice.history_capacity")
	}
}

func validateLogging(l LoggingConfig, vb *errors.ValidationBuilder) {
	errors.ValidateEnum(KeyLoggingLevel, l.Level, []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum(KeyLoggingFormat, l.Format, []string{"json", "text"}, vb)
}

// DefaultSQLitePath is ~/.rpg-sheet/sheet.db, or sheet.db when there is no home.
func DefaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "sheet.db"
	}
	return filepath.Join(home, ".rpg-sheet", "sheet.db")
}

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyProfile, sheet.DefaultProfileID)

	v.SetDefault(KeyStorageDriver, kv.DriverSQLite)
	v.SetDefault(KeyStorageSQLitePath, DefaultSQLitePath())

	v.SetDefault(KeyRedisAddr, "localhost:6379")
	v.SetDefault(KeyRedisPassword, "")
	v.SetDefault(KeyRedisDB, 0)

	v.SetDefault(KeyDiceRollDelay, "800ms")
	v.SetDefault(KeyDiceHistoryCapacity, 50)
	v.SetDefault(KeyDiceDisplayLimit, 10)

	v.SetDefault(KeyLoggingLevel, "warn")
	v.SetDefault(KeyLoggingFormat, "text")
}

// NewViper returns a Viper with defaults and SHEET_ environment overrides.
// When path is non-empty the YAML file is read as well.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.InvalidArgumentf("reading config file %s: %v", path, err)
		}
	}

	return v, nil
}

// Load reads configuration from the optional file path plus environment and
// validates the result.
func Load(path string) (Config, error) {
	v, err := NewViper(path)
	if err != nil {
		return Config{}, err
	}
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.InvalidArgumentf("unmarshalling config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SlogLevel maps the configured level name to a slog.Level
func (l LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewLogger builds the slog logger described by l, writing to w
func (l LoggingConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if strings.ToLower(l.Format) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
