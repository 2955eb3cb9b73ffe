package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/OmarT94/Webshop/internal/domain"
	"github.com/OmarT94/Webshop/internal/gate"
)

func newCartCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show the shopping cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(gate.PathCart); err != nil {
				return err
			}
			if err := app.Cart.Fetch(cmd.Context(), app.Session.Token(), app.Session.Email()); err != nil {
				return err
			}
			printCart(cmd, app)
			return nil
		},
	}

	cmd.AddCommand(newCartAddCommand(app))
	cmd.AddCommand(newCartUpdateCommand(app))
	cmd.AddCommand(newCartRemoveCommand(app))
	cmd.AddCommand(newCartClearCommand(app))

	return cmd
}

func newCartAddCommand(app *App) *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(gate.PathCart); err != nil {
				return err
			}
			product, err := app.API.Product(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			item := domain.CartItem{
				ProductID:   product.ID,
				Name:        product.Name,
				ImageBase64: product.ImageBase64,
				Price:       product.Price,
				Quantity:    quantity,
			}
			if err := app.Cart.AddItem(cmd.Context(), app.Session.Token(), app.Session.Email(), item); err != nil {
				return err
			}
			printCart(cmd, app)
			return nil
		},
	}

	cmd.Flags().IntVar(&quantity, "qty", 1, "quantity")
	return cmd
}

func newCartUpdateCommand(app *App) *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "update <product-id>",
		Short: "Change a line's quantity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(gate.PathCart); err != nil {
				return err
			}
			if err := app.Cart.UpdateQuantity(cmd.Context(), app.Session.Token(), app.Session.Email(), args[0], quantity); err != nil {
				return err
			}
			printCart(cmd, app)
			return nil
		},
	}

	cmd.Flags().IntVar(&quantity, "qty", 1, "new quantity")
	_ = cmd.MarkFlagRequired("qty")
	return cmd
}

func newCartRemoveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(gate.PathCart); err != nil {
				return err
			}
			if err := app.Cart.RemoveItem(cmd.Context(), app.Session.Token(), app.Session.Email(), args[0]); err != nil {
				return err
			}
			printCart(cmd, app)
			return nil
		},
	}
}

func newCartClearCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(gate.PathCart); err != nil {
				return err
			}
			if err := app.Cart.Clear(cmd.Context(), app.Session.Token(), app.Session.Email()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "cart cleared")
			return nil
		},
	}
}

func printCart(cmd *cobra.Command, app *App) {
	items := app.Cart.Items()
	if len(items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "cart is empty")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tNAME\tPRICE\tQTY")
	for _, it := range items {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%d\n", it.ProductID, it.Name, it.Price, it.Quantity)
	}
	w.Flush()
	fmt.Fprintf(cmd.OutOrStdout(), "total: %.2f\n", app.Cart.TotalPrice())
}
