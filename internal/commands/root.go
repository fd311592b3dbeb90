package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/balkashynov/dialr/internal/config"
	"github.com/balkashynov/dialr/internal/db"
	"github.com/balkashynov/dialr/internal/dialer"
	"github.com/balkashynov/dialr/internal/followups"
	"github.com/balkashynov/dialr/internal/history"
	"github.com/balkashynov/dialr/internal/logger"
	"github.com/balkashynov/dialr/internal/sample"
	"github.com/balkashynov/dialr/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app is what every command runs against
type app struct {
	cfg       *config.Config
	log       *zap.Logger
	closeLog  func() error
	calls     *history.Store
	followUps *followups.Scheduler
	now       func() time.Time
}

// NewRootCmd builds the dialr command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dialr",
		Short: "A terminal phone dialer with call history and follow-ups",
		Long: `dialr is a dial pad, call history and follow-up planner for the terminal.
Run it with no arguments for the full-screen app, or use the subcommands to script it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:         cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			return tui.Run(a.tuiDeps(""))
		}),
	}

	rootCmd.PersistentFlags().Bool("memory", false, "Keep everything in memory, starting from the sample data")
	rootCmd.PersistentFlags().String("db", "", "Path to the sqlite database (overrides DIALR_DB_PATH)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newCallCmd())
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newFollowUpCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.SetHelpCommand(newHelpCmd())
	return rootCmd
}

// withApp wraps a command function to load config and open storage first
func withApp(fn func(*cobra.Command, []string, *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd)
		if err != nil {
			return err
		}
		defer a.close()
		return fn(cmd, args, a)
	}
}

// setup loads config, applies flag overrides and opens the stores
func setup(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if memory, _ := cmd.Flags().GetBool("memory"); memory {
		cfg.Storage = config.StorageMemory
	}
	if path, _ := cmd.Flags().GetString("db"); path != "" {
		cfg.DBPath = path
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logger.Level = level
	}

	log, closeLog, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
		File:     cfg.Logger.File,
	})
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, log: log, closeLog: closeLog, now: time.Now}
	if err := a.openStores(); err != nil {
		_ = closeLog()
		return nil, err
	}
	log.Debug("dialr started",
		zap.String("command", cmd.CommandPath()),
		zap.String("storage", cfg.Storage),
		zap.String("version", version),
	)
	return a, nil
}

func (a *app) openStores() error {
	var (
		callProvider     history.Provider
		followUpProvider followups.Provider
	)

	switch a.cfg.Storage {
	case config.StorageMemory:
		now := a.now()
		callProvider = history.NewMemoryProvider(sample.Calls(now)...)
		followUpProvider = followups.NewMemoryProvider(sample.FollowUps(now)...)
	default:
		created, err := db.Initialize(a.cfg.DBPath)
		if err != nil {
			return err
		}
		// Seed only a brand new database so deleted demo data stays deleted
		if created && a.cfg.SeedSample {
			if err := db.SeedSample(db.DB, a.now()); err != nil {
				return err
			}
			a.log.Info("seeded sample data", zap.String("db_path", a.cfg.DBPath))
		}
		callProvider = db.NewCallRepository(db.DB)
		followUpProvider = db.NewFollowUpRepository(db.DB)
	}

	a.calls = history.NewStore(callProvider)
	if err := a.calls.Load(); err != nil {
		return fmt.Errorf("failed to load call history: %w", err)
	}
	a.followUps = followups.NewScheduler(followUpProvider, a.now)
	if err := a.followUps.Load(); err != nil {
		return fmt.Errorf("failed to load follow-ups: %w", err)
	}
	return nil
}

func (a *app) close() {
	if a.cfg.Storage != config.StorageMemory {
		if err := db.Close(); err != nil {
			a.log.Warn("failed to close database", zap.Error(err))
		}
	}
	_ = a.closeLog()
}

func (a *app) newSession() *dialer.Session {
	return dialer.NewSession(dialer.LogPlacer{Log: a.log}, a.now)
}

func (a *app) tuiDeps(number string) tui.Deps {
	session := a.newSession()
	for _, r := range number {
		if dialer.IsDialKey(r) {
			_ = session.AppendDigit(r)
		}
	}
	return tui.Deps{
		Session:   session,
		Calls:     a.calls,
		FollowUps: a.followUps,
		Profile:   a.cfg.Profile,
		Log:       a.log,
		Now:       a.now,
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
