package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OmarT94/Webshop/internal/api"
	"github.com/OmarT94/Webshop/internal/domain"
)

const (
	pathAdminProducts = "/admin/products"
	pathAdminOrders   = "/admin/orders"
)

func newAdminCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Back-office operations",
	}

	cmd.AddCommand(newAdminProductAddCommand(app))
	cmd.AddCommand(newAdminProductUpdateCommand(app))
	cmd.AddCommand(newAdminProductDeleteCommand(app))
	cmd.AddCommand(newAdminCategoryAddCommand(app))
	cmd.AddCommand(newAdminOrdersCommand(app))

	return cmd
}

func productFlags(cmd *cobra.Command, product *domain.Product) {
	cmd.Flags().StringVar(&product.Name, "name", "", "product name")
	cmd.Flags().StringVar(&product.Description, "description", "", "description")
	cmd.Flags().Float64Var(&product.Price, "price", 0, "price")
	cmd.Flags().IntVar(&product.Stock, "stock", 0, "stock")
	cmd.Flags().StringVar(&product.Category, "category", "", "category")
}

// validateProduct mirrors the admin form's pre-flight checks: no request
// goes out for an unnamed product or a non-positive price.
func validateProduct(product domain.Product) error {
	if product.Name == "" {
		return fmt.Errorf("product name must not be empty")
	}
	if product.Price <= 0 {
		return fmt.Errorf("price must be positive")
	}
	if product.Stock < 0 {
		return fmt.Errorf("stock must not be negative")
	}
	return nil
}

func newAdminProductAddCommand(app *App) *cobra.Command {
	var product domain.Product

	cmd := &cobra.Command{
		Use:   "product-add",
		Short: "Create a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(pathAdminProducts); err != nil {
				return err
			}
			if err := validateProduct(product); err != nil {
				return err
			}
			created, err := app.API.CreateProduct(cmd.Context(), app.Session.Token(), product)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "product %s created\n", created.ID)
			return nil
		},
	}

	productFlags(cmd, &product)
	return cmd
}

func newAdminProductUpdateCommand(app *App) *cobra.Command {
	var product domain.Product

	cmd := &cobra.Command{
		Use:   "product-update <product-id>",
		Short: "Update a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(pathAdminProducts); err != nil {
				return err
			}
			if err := validateProduct(product); err != nil {
				return err
			}
			updated, err := app.API.UpdateProduct(cmd.Context(), app.Session.Token(), args[0], product)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "product %s updated\n", updated.ID)
			return nil
		},
	}

	productFlags(cmd, &product)
	return cmd
}

func newAdminProductDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "product-delete <product-id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(pathAdminProducts); err != nil {
				return err
			}
			if err := app.API.DeleteProduct(cmd.Context(), app.Session.Token(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "product deleted")
			return nil
		},
	}
}

func newAdminCategoryAddCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "category-add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(pathAdminProducts); err != nil {
				return err
			}
			if args[0] == "" {
				return fmt.Errorf("category name must not be empty")
			}
			created, err := app.API.AddCategory(cmd.Context(), app.Session.Token(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "category %s created\n", created.Name)
			return nil
		},
	}
}

func newAdminOrdersCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List all orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(pathAdminOrders); err != nil {
				return err
			}
			orders, err := app.API.AllOrders(cmd.Context(), app.Session.Token())
			if err != nil {
				return err
			}
			printOrders(cmd, orders)
			return nil
		},
	}

	cmd.AddCommand(newAdminOrderSearchCommand(app))
	cmd.AddCommand(newAdminOrderStatusCommand(app))
	cmd.AddCommand(newAdminOrderPaymentCommand(app))
	cmd.AddCommand(newAdminOrderAddressCommand(app))
	cmd.AddCommand(newAdminOrderApproveReturnCommand(app))
	cmd.AddCommand(newAdminOrderDeleteCommand(app))

	return cmd
}

func newAdminOrderSearchCommand(app *App) *cobra.Command {
	var email, status, paymentStatus string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search orders by email, status or payment status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(pathAdminOrders); err != nil {
				return err
			}
			filter := api.OrderFilter{
				Email:         email,
				Status:        domain.OrderStatus(status),
				PaymentStatus: domain.PaymentStatus(paymentStatus),
			}
			orders, err := app.API.SearchOrders(cmd.Context(), app.Session.Token(), filter)
			if err != nil {
				return err
			}
			printOrders(cmd, orders)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "customer email")
	cmd.Flags().StringVar(&status, "status", "", "order status")
	cmd.Flags().StringVar(&paymentStatus, "payment-status", "", "payment status")

	return cmd
}

func newAdminOrderStatusCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <order-id> <status>",
		Short: "Update an order's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(pathAdminOrders); err != nil {
				return err
			}
			order, err := app.API.UpdateOrderStatus(cmd.Context(), app.Session.Token(), args[0], domain.OrderStatus(args[1]))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "order %s is now %s\n", order.ID, order.OrderStatus)
			return nil
		},
	}
}

func newAdminOrderPaymentCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-payment <order-id> <payment-status>",
		Short: "Update an order's payment status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(pathAdminOrders); err != nil {
				return err
			}
			order, err := app.API.UpdatePaymentStatus(cmd.Context(), app.Session.Token(), args[0], domain.PaymentStatus(args[1]))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "order %s payment is now %s\n", order.ID, order.PaymentStatus)
			return nil
		},
	}
}

func newAdminOrderAddressCommand(app *App) *cobra.Command {
	var address domain.Address

	cmd := &cobra.Command{
		Use:   "set-address <order-id>",
		Short: "Update an order's shipping address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(pathAdminOrders); err != nil {
				return err
			}
			order, err := app.API.UpdateShippingAddress(cmd.Context(), app.Session.Token(), args[0], address)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "order %s address updated\n", order.ID)
			return nil
		},
	}

	addressFlags(cmd, &address)
	return cmd
}

func newAdminOrderApproveReturnCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "approve-return <order-id>",
		Short: "Approve a requested return and refund the payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(pathAdminOrders); err != nil {
				return err
			}
			if err := app.API.ApproveReturn(cmd.Context(), app.Session.Token(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "return approved and refunded for order %s\n", args[0])
			return nil
		},
	}
}

func newAdminOrderDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <order-id>",
		Short: "Delete an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(pathAdminOrders); err != nil {
				return err
			}
			if err := app.API.DeleteOrder(cmd.Context(), app.Session.Token(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "order deleted")
			return nil
		},
	}
}
