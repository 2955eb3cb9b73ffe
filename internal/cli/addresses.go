package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/OmarT94/Webshop/internal/domain"
	"github.com/OmarT94/Webshop/internal/gate"
)

func newAddressesCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addresses",
		Short: "List saved addresses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(gate.PathAddress); err != nil {
				return err
			}
			addresses, err := app.API.Addresses(cmd.Context(), app.Session.Token(), app.Session.Email())
			if err != nil {
				return err
			}
			if len(addresses) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no saved addresses")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTREET\tCITY\tCOUNTRY\tDEFAULT")
			for _, a := range addresses {
				fmt.Fprintf(w, "%s\t%s %s\t%s %s\t%s\t%v\n",
					a.ID, a.Street, a.HouseNumber, a.PostalCode, a.City, a.Country, a.IsDefault)
			}
			w.Flush()
			return nil
		},
	}

	cmd.AddCommand(newAddressAddCommand(app))
	cmd.AddCommand(newAddressUpdateCommand(app))
	cmd.AddCommand(newAddressDeleteCommand(app))

	return cmd
}

func addressFlags(cmd *cobra.Command, address *domain.Address) {
	cmd.Flags().StringVar(&address.Street, "street", "", "street")
	cmd.Flags().StringVar(&address.HouseNumber, "house-number", "", "house number")
	cmd.Flags().StringVar(&address.City, "city", "", "city")
	cmd.Flags().StringVar(&address.PostalCode, "postal-code", "", "postal code")
	cmd.Flags().StringVar(&address.Country, "country", "", "country")
	cmd.Flags().StringVar(&address.TelephoneNumber, "phone", "", "telephone number")
	cmd.Flags().BoolVar(&address.IsDefault, "default", false, "use as default address")
}

func newAddressAddCommand(app *App) *cobra.Command {
	var address domain.Address

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save a new address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(gate.PathAddress); err != nil {
				return err
			}
			if err := app.API.AddAddress(cmd.Context(), app.Session.Token(), app.Session.Email(), address); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "address saved")
			return nil
		},
	}

	addressFlags(cmd, &address)
	return cmd
}

func newAddressUpdateCommand(app *App) *cobra.Command {
	var address domain.Address

	cmd := &cobra.Command{
		Use:   "update <address-id>",
		Short: "Update a saved address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(gate.PathAddress); err != nil {
				return err
			}
			if err := app.API.UpdateAddress(cmd.Context(), app.Session.Token(), app.Session.Email(), args[0], address); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "address updated")
			return nil
		},
	}

	addressFlags(cmd, &address)
	return cmd
}

func newAddressDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <address-id>",
		Short: "Delete a saved address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(gate.PathAddress); err != nil {
				return err
			}
			if err := app.API.DeleteAddress(cmd.Context(), app.Session.Token(), app.Session.Email(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "address deleted")
			return nil
		},
	}
}
