// Root command for the hub CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/princewidd/widhi-productivity-hub/internal/backup"
	"github.com/princewidd/widhi-productivity-hub/internal/collection"
	"github.com/princewidd/widhi-productivity-hub/internal/store"
)

// Version is the CLI release version.
const Version = "1.0.0"

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagBackend   string
	flagServerURL string
)

// Config keys read from config.yaml.
const (
	cfgKeyDataDir   = "data_dir"
	cfgKeyBackend   = "backend"
	cfgKeyServerURL = "server_url"

	defaultBackend = "file"
)

// cfg holds the loaded configuration. Set by PersistentPreRunE so all
// subcommands can use it.
var cfg *viper.Viper

var rootCmd = &cobra.Command{
	Use:     "hub",
	Short:   "Hub is a local-first study planner",
	Long:    "Hub tracks tasks, weekly schedules, expenses, and notes in a local store,\nwith optional file attachments held by a companion server.",
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		cfg, err = loadConfig(configDir)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $HOME/.hub)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $HOME/.hub/data)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend, file or sqlite (default: file)")
	rootCmd.PersistentFlags().StringVar(&flagServerURL, "server-url", "", "attachment server base URL")

	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(expenseCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfigDir returns the configuration directory:
// --config-dir flag > HUB_CONFIG_DIR env > $HOME/.hub.
func resolveConfigDir() (string, error) {
	if flagConfigDir != "" {
		return flagConfigDir, nil
	}
	if dir := os.Getenv("HUB_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".hub"), nil
}

// resolveDataDir returns the data directory:
// --data-dir flag > config.yaml data_dir > HUB_DATA_DIR env > <config dir>/data.
func resolveDataDir() (string, error) {
	if flagDataDir != "" {
		return flagDataDir, nil
	}
	if dir := cfg.GetString(cfgKeyDataDir); dir != "" {
		return dir, nil
	}
	if dir := os.Getenv("HUB_DATA_DIR"); dir != "" {
		return dir, nil
	}
	configDir, err := resolveConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "data"), nil
}

func resolveBackend() string {
	if flagBackend != "" {
		return flagBackend
	}
	if b := cfg.GetString(cfgKeyBackend); b != "" {
		return b
	}
	return defaultBackend
}

func resolveServerURL() string {
	if flagServerURL != "" {
		return flagServerURL
	}
	if u := cfg.GetString(cfgKeyServerURL); u != "" {
		return u
	}
	return os.Getenv("HUB_SERVER_URL")
}

// app bundles the wired collection managers for a subcommand run.
type app struct {
	store     store.Store
	tasks     *collection.Tasks
	schedules *collection.Schedules
	expenses  *collection.Expenses
	notes     *collection.Notes
	engine    *backup.Engine

	close func() error
}

// newApp opens the configured store and loads every collection.
func newApp() (*app, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, err
	}

	var (
		st      store.Store
		closeFn = func() error { return nil }
	)
	switch backend := resolveBackend(); backend {
	case "file":
		fs, err := store.NewFileStore(dataDir)
		if err != nil {
			return nil, fmt.Errorf("open file store: %w", err)
		}
		st = fs
	case "sqlite":
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		ss, err := store.OpenSQLite(filepath.Join(dataDir, "hub.db"))
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		st = ss
		closeFn = ss.Close
	default:
		return nil, fmt.Errorf("unknown backend %q (valid: file, sqlite)", backend)
	}

	a := &app{
		store:     st,
		tasks:     collection.NewTasks(st),
		schedules: collection.NewSchedules(st),
		expenses:  collection.NewExpenses(st),
		notes:     collection.NewNotes(st),
		close:     closeFn,
	}
	a.engine = backup.NewEngine(a.tasks, a.schedules, a.expenses, a.notes)
	return a, nil
}
