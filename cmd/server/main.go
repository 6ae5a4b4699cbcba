package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"fazenda/config"
	"fazenda/database"
	"fazenda/pkg/logger"
)

var (
	cfg config.AppConfig
	log zerolog.Logger
	db  *gorm.DB
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "fazenda",
	Short:         "Farm records web application",
	SilenceUsage:  true,
	SilenceErrors: true,
	// no subcommand means serve
	RunE:               runServe,
	PersistentPreRunE:  setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return teardown() },
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(legacyCmd)
	rootCmd.AddCommand(userCmd)
}

// setup loads config, builds the logger and opens the database.
func setup(cmd *cobra.Command, args []string) error {
	if !needsDatabase(cmd) {
		return nil
	}
	var err error
	if cfg, err = config.Load(); err != nil {
		return err
	}
	log = logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	zerolog.DefaultContextLogger = &log

	if db, err = database.Open(cfg.DatabaseURL, log); err != nil {
		return err
	}
	log.Debug().Str("env", cfg.Env).Bool("postgres", database.IsPostgres(cfg.DatabaseURL)).Msg("database opened")
	return nil
}

// needsDatabase is false for help and shell completion commands.
func needsDatabase(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

func teardown() error {
	if db == nil {
		return nil
	}
	return database.Close(db)
}
