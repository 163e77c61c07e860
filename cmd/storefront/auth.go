package main

import (
	"fmt"

	"storefront/internal/domain/model"

	"github.com/spf13/cobra"
)

func newAuthCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "manage the stored access token",
	}

	setToken := &cobra.Command{
		Use:   "set-token <jwt>",
		Short: "store an access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.authUC.SetAccessToken(cmd.Context(), args[0]); err != nil {
				return err
			}

			if uid, ok := model.UserID(a.authUC.CurrentShopper(cmd.Context())); ok {
				fmt.Printf("signed in as user %s\n", uid)
			}
			return nil
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "discard the stored access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.authUC.ClearAccessToken(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("signed out")
			return nil
		},
	}

	cmd.AddCommand(setToken, clear)
	return cmd
}
