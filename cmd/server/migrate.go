package main

import (
	"github.com/spf13/cobra"

	"fazenda/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := database.Migrate(db); err != nil {
			return err
		}
		log.Info().Msg("schema up to date")
		return nil
	},
}
