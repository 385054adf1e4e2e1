package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-sheet/internal/app"
	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/kv"
)

// skipStorage marks commands that never touch the store
const skipStorage = "skip-storage"

// cli carries the state shared by every command of one invocation
type cli struct {
	configFile string
	overrides  *app.Options

	sheet *app.App
}

// flagKeys binds persistent flags to config keys
var flagKeys = map[string]string{
	"profile":     config.KeyProfile,
	"storage":     config.KeyStorageDriver,
	"sqlite-path": config.KeyStorageSQLitePath,
	"redis-addr":  config.KeyRedisAddr,
	"roll-delay":  config.KeyDiceRollDelay,
	"log-level":   config.KeyLoggingLevel,
	"log-format":  config.KeyLoggingFormat,
}

// run executes one command line. overrides replaces runtime collaborators
// and is nil outside tests.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, overrides *app.Options) error {
	c := &cli{overrides: overrides}
	defer func() {
		if err := c.sheet.Close(); err != nil {
			slog.Warn("Failed to close store", "error", err)
		}
	}()

	root := c.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sheet",
		Short: "Tabletop character sheet",
		Long: `sheet keeps a character's stats, equipment, inventory, NPCs, dice rolls
and notes in a local store. Every command works on one profile.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.open,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configFile, "config", "", "YAML config file")
	flags.String("profile", "default", "character profile")
	flags.String("storage", kv.DriverSQLite, "storage driver: memory, sqlite or redis")
	flags.String("sqlite-path", config.DefaultSQLitePath(), "sqlite database file")
	flags.String("redis-addr", "localhost:6379", "redis address")
	flags.Duration("roll-delay", 800*time.Millisecond, "time a roll stays pending")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")

	root.AddCommand(
		c.statsCmd(),
		c.baseCmd(),
		c.hpCmd(),
		c.resetCmd(),
		c.rollCmd(),
		c.historyCmd(),
		c.equipmentCmd(),
		c.inventoryCmd(),
		c.npcCmd(),
		c.infoCmd(),
		c.noteCmd(),
		c.describeCmd(),
		c.exportCmd(),
		c.doctorCmd(),
	)

	return root
}

func (c *cli) loadConfig(cmd *cobra.Command) (config.Config, error) {
	v, err := config.NewViper(c.configFile)
	if err != nil {
		return config.Config{}, err
	}
	if err := bindFlags(v, cmd); err != nil {
		return config.Config{}, err
	}
	return config.LoadFromViper(v)
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}

func (c *cli) open(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[skipStorage] == "true" {
		return nil
	}

	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := &app.Options{}
	if c.overrides != nil {
		*opts = *c.overrides
	}
	if opts.Logger == nil {
		opts.Logger = cfg.Logging.NewLogger(cmd.ErrOrStderr())
	}
	slog.SetDefault(opts.Logger)

	sheet, err := app.New(cmd.Context(), cfg, opts)
	if err != nil {
		return err
	}
	c.sheet = sheet
	return nil
}
