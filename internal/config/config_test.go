package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/kv"
)

func validConfig() config.Config {
	return config.Config{
		Profile: "default",
		Storage: config.StorageConfig{
			Driver:     kv.DriverSQLite,
			SQLitePath: "/tmp/sheet.db",
		},
		Redis: config.RedisConfig{Addr: "localhost:6379"},
		Dice: config.DiceConfig{
			RollDelay:       800 * time.Millisecond,
			HistoryCapacity: 50,
			DisplayLimit:    10,
		},
		Logging: config.LoggingConfig{Level: "warn", Format: "text"},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_Violations(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*config.Config)
		field  string
	}{
		{"empty profile", func(c *config.Config) { c.Profile = "" }, "profile"},
		{"profile with separator", func(c *config.Config) { c.Profile = "a:b" }, "profile"},
		{"unknown driver", func(c *config.Config) { c.Storage.Driver = "postgres" }, "storage.driver"},
		{"sqlite without path", func(c *config.Config) { c.Storage.SQLitePath = " " }, "storage.sqlite_path"},
		{"redis without addr", func(c *config.Config) {
			c.Storage.Driver = kv.DriverRedis
			c.Redis.Addr = ""
		}, "redis.addr"},
		{"negative redis db", func(c *config.Config) {
			c.Storage.Driver = kv.DriverRedis
			c.Redis.DB = -1
		}, "redis.db"},
		{"negative delay", func(c *config.Config) { c.Dice.RollDelay = -time.Second }, "dice.roll_delay"},
		{"zero capacity", func(c *config.Config) { c.Dice.HistoryCapacity = 0 }, "dice.history_capacity"},
		{"zero display limit", func(c *config.Config) { c.Dice.DisplayLimit = 0 }, "dice.display_limit"},
		{"display over capacity", func(c *config.Config) { c.Dice.DisplayLimit = 51 }, "dice.display_limit"},
		{"bad level", func(c *config.Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"bad format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestValidate_MemoryDriverIgnoresPaths(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.Driver = kv.DriverMemory
	cfg.Storage.SQLitePath = ""
	cfg.Redis.Addr = ""

	assert.NoError(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.Profile)
	assert.Equal(t, kv.DriverSQLite, cfg.Storage.Driver)
	assert.NotEmpty(t, cfg.Storage.SQLitePath)
	assert.Equal(t, 800*time.Millisecond, cfg.Dice.RollDelay)
	assert.Equal(t, 50, cfg.Dice.HistoryCapacity)
	assert.Equal(t, 10, cfg.Dice.DisplayLimit)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.yaml")
	content := `
profile: hero
storage:
  driver: memory
dice:
  roll_delay: 50ms
  history_capacity: 20
  display_limit: 5
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("SHEET_PROFILE", "villain")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "villain", cfg.Profile, "env overrides file")
	assert.Equal(t, kv.DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 50*time.Millisecond, cfg.Dice.RollDelay)
	assert.Equal(t, 20, cfg.Dice.HistoryCapacity)
	assert.Equal(t, 5, cfg.Dice.DisplayLimit)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestLoadFromViper_InvalidValues(t *testing.T) {
	v, err := config.NewViper("")
	require.NoError(t, err)
	v.Set(config.KeyStorageDriver, "floppy")

	_, err = config.LoadFromViper(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage.driver")
}

func TestSheetProfile(t *testing.T) {
	cfg := validConfig()
	cfg.Profile = "hero"

	assert.Equal(t, "hero", cfg.SheetProfile().GetID())
}

func TestLoggingConfig_NewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := config.LoggingConfig{Level: "info", Format: "json"}.NewLogger(&buf)

	logger.Debug("hidden")
	logger.Info("shown", "key", "value")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Equal(t, slog.LevelError, config.LoggingConfig{Level: "error"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, config.LoggingConfig{Level: "bogus"}.SlogLevel())
}

func TestProperty_DiceLimits(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		capacity := rapid.IntRange(-5, 100).Draw(rt, "capacity")
		limit := rapid.IntRange(-5, 100).Draw(rt, "limit")

		cfg := validConfig()
		cfg.Dice.HistoryCapacity = capacity
		cfg.Dice.DisplayLimit = limit

		err := cfg.Validate()
		valid := capacity >= 1 && limit >= 1 && limit <= capacity
		if valid && err != nil {
			rt.Fatalf("capacity=%d limit=%d should be valid: %v", capacity, limit, err)
		}
		if !valid && err == nil {
			rt.Fatalf("capacity=%d limit=%d should be invalid", capacity, limit)
		}
	})
}
