package main

import (
	"fmt"
	"os"

	"github.com/jrsteele09/go-sim-client/session"
	"github.com/spf13/cobra"
)

func newLoginCmd(opts *rootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv("SIM_PASSWORD")
			}
			if email == "" || password == "" {
				return fmt.Errorf("--email and --password (or SIM_PASSWORD) are required")
			}
			store, err := opts.store()
			if err != nil {
				return err
			}
			if _, err := opts.app.manager.Login(cmd.Context(), session.Credentials{
				Email:     email,
				Password:  password,
				StoreName: store,
			}); err != nil {
				return fmt.Errorf("invalid credentials, please try again: %w", err)
			}
			s := opts.app.manager.Current()
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s at %s\n", s.User, s.StoreContext)
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (default $SIM_PASSWORD)")
	return cmd
}

func newLogoutCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the persisted access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.app.manager.Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}
