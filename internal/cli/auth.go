package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OmarT94/Webshop/internal/api"
	"github.com/OmarT94/Webshop/internal/gate"
)

func newRegisterCommand(app *App) *cobra.Command {
	var firstName, lastName string

	cmd := &cobra.Command{
		Use:   "register <email> <password>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(gate.PathRegister); err != nil {
				return err
			}
			req := api.RegisterRequest{
				Email:     args[0],
				Password:  args[1],
				FirstName: firstName,
				LastName:  lastName,
				Role:      "ROLE_USER",
			}
			if err := app.API.Register(cmd.Context(), req); err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "registered, you can log in now")
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")

	return cmd
}

func newLoginCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Log in and persist the session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(gate.PathLogin); err != nil {
				return err
			}
			token, err := app.API.Login(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			if err := app.Session.SetToken(token); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s\n", app.Session.Email())
			return nil
		},
	}
}

func newLogoutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the persisted session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Session.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newWhoamiCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Session.Authenticated() {
				fmt.Fprintln(cmd.OutOrStdout(), "not logged in")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s <%s>", app.Session.FirstName(), app.Session.LastName(), app.Session.Email())
			if app.Session.IsAdmin() {
				fmt.Fprint(cmd.OutOrStdout(), " (admin)")
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}
