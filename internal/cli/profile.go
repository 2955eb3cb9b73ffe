package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OmarT94/Webshop/internal/gate"
)

func newProfileCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the account profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(gate.PathProfile); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s <%s>\n",
				app.Session.FirstName(), app.Session.LastName(), app.Session.Email())
			return nil
		},
	}

	cmd.AddCommand(newProfilePasswordCommand(app))
	return cmd
}

func newProfilePasswordCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "password <new-password>",
		Short: "Change the account password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(gate.PathProfile); err != nil {
				return err
			}
			if args[0] == "" {
				return fmt.Errorf("password must not be empty")
			}
			if err := app.API.UpdatePassword(cmd.Context(), app.Session.Token(), app.Session.Email(), args[0]); err != nil {
				return fmt.Errorf("password update failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "password updated")
			return nil
		},
	}
}
