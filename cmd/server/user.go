package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"fazenda/database"
	authRepoImp "fazenda/pkg/auth/repositoryImp"
	"fazenda/pkg/auth/service"
	authSvcImp "fazenda/pkg/auth/serviceImp"
	"fazenda/pkg/errs"
)

var userPassword string

var userCmd = &cobra.Command{
	Use:   "create-user <username>",
	Short: "Register a login account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if userPassword == "" {
			return errors.New("--password is required")
		}
		if err := database.Migrate(db); err != nil {
			return err
		}
		svc := authSvcImp.New(authRepoImp.New(db), cfg.SessionTTL, log)
		u, err := svc.Register(cmd.Context(), service.Credentials{Username: args[0], Password: userPassword})
		if err != nil {
			if msg := errs.Message(err); msg != "" && errs.KindOf(err) != errs.KindStorage {
				return errors.New(msg)
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "user %s created (id %d)\n", u.Username, u.ID)
		return nil
	},
}

func init() {
	userCmd.Flags().StringVar(&userPassword, "password", "", "password for the new account")
}
