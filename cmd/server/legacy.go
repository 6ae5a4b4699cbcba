package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fazenda/database"
)

var legacyCmd = &cobra.Command{
	Use:   "import-legacy <sqlite file>",
	Short: "Copy owners, properties, crops and cultivations from an old database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(args[0]); err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			return err
		}
		rep, err := database.ImportLegacy(cmd.Context(), db, args[0], log)
		if err != nil {
			return err
		}
		log.Info().
			Int("owners", rep.Owners).
			Int("properties", rep.Properties).
			Int("crops", rep.Crops).
			Int("cultivations", rep.Cultivations).
			Int("skipped", rep.Skipped).
			Msg("legacy import finished")
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d owners, %d properties, %d crops, %d cultivations (%d skipped)\n",
			rep.Owners, rep.Properties, rep.Crops, rep.Cultivations, rep.Skipped)
		return nil
	},
}
