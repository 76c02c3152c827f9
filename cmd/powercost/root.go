package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"power-cost-backend/config"
	"power-cost-backend/internal/db"
	"power-cost-backend/internal/store"
)

var (
	cfgFile string
	dbPath  string
)

var rootCmd = &cobra.Command{
	Use:   "powercost",
	Short: "Estimate household appliance electricity costs",
	Long: `powercost estimates the daily and monthly energy use and the monthly
electricity cost of a household appliance, and keeps a history of saved estimates.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $CONFIG_PATH or ./config/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "sqlite database file (overrides the configured database)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return filepath.Join("config", "config.yaml")
}

// loadConfig loads the configuration file, falling back to defaults when
// no file exists at the default location.
func loadConfig() (*config.Config, error) {
	path := getConfigPath()
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) && cfgFile == "" {
		return config.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

// openStore opens the database and wraps it in a store.
func openStore(cfg *config.Config) (store.Store, func(), error) {
	dbCfg := cfg.Database
	if dbPath != "" {
		if dir := filepath.Dir(dbPath); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, nil, fmt.Errorf("creating database directory: %w", err)
			}
		}
		dbCfg = config.DatabaseConfig{Driver: "sqlite", DSN: dbPath}
	}

	gormDB, err := db.Init(&dbCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return store.NewGormStore(gormDB), func() { closeDB(gormDB) }, nil
}

func closeDB(gormDB *gorm.DB) {
	if sqlDB, err := gormDB.DB(); err == nil {
		sqlDB.Close()
	}
}
