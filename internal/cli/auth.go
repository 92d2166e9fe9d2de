package cli

import (
	"errors"
	"fmt"

	"assistant-client/internal/domain/model"
	"github.com/spf13/cobra"
)

var urlCmd = &cobra.Command{
	Use:   "url [server-url]",
	Short: "Show or set the assistant server URL",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := TheApp.Repository
		if len(args) == 1 {
			if err := repo.SaveURL(cmd.Context(), args[0]); err != nil {
				return err
			}
		}
		url, err := repo.URL(cmd.Context())
		if err != nil {
			return err
		}
		if url == "" {
			url = TheApp.Config.Server.URL + " (default)"
		}
		fmt.Fprintln(cmd.OutOrStdout(), url)
		return nil
	},
}

var loginOpts model.Authorization

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and store the token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginOpts.Login == "" || loginOpts.Password == "" {
			return errors.New("--login and --password are required")
		}
		if _, err := TheApp.Repository.Auth(cmd.Context(), loginOpts); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Logged in")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the token and clear the local cache",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := TheApp.Repository.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginOpts.Login, "login", "l", "", "account login")
	loginCmd.Flags().StringVarP(&loginOpts.Password, "password", "p", "", "account password")
}
