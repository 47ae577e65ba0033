package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathpath/internal/config"
	"github.com/abhisek/mathpath/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mathpath",
	Short: "Mastery progression engine for exam practice",
	Long: "mathpath evaluates exercise answers, adapts difficulty and tracks exam " +
		"readiness. Run `mathpath serve` to start the HTTP service.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHPATH_DB env var and db.path)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: ./config.yaml or $XDG_CONFIG_HOME/mathpath/config.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(oracleCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the configuration named by --config.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then db.path from config, then MATHPATH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DB.Path != "" {
		return cfg.DB.Path, store.EnsureDir(cfg.DB.Path)
	}
	return store.DefaultDBPath()
}

// openStore loads config and opens the database it points at.
func openStore(cmd *cobra.Command) (*config.Config, *store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return cfg, s, nil
}

// newLogger builds the process logger from cfg and installs it as default.
func newLogger(cfg *config.Config) *slog.Logger {
	logger := cfg.Log.NewLogger(os.Stderr)
	slog.SetDefault(logger)
	return logger
}
