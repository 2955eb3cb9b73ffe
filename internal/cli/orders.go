package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/OmarT94/Webshop/internal/domain"
	"github.com/OmarT94/Webshop/internal/gate"
)

func newOrdersCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List your orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(gate.PathOrders); err != nil {
				return err
			}
			orders, err := app.API.UserOrders(cmd.Context(), app.Session.Token(), app.Session.Email())
			if err != nil {
				return err
			}
			printOrders(cmd, orders)
			return nil
		},
	}

	cmd.AddCommand(newOrderCancelCommand(app))
	cmd.AddCommand(newOrderReturnCommand(app))

	return cmd
}

func newOrderCancelCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <order-id>",
		Short: "Cancel an order that has not shipped yet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(gate.PathOrders); err != nil {
				return err
			}
			order, err := findOrder(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if !order.OrderStatus.CanCancel() {
				return fmt.Errorf("order %s is %s and can no longer be cancelled", order.ID, order.OrderStatus)
			}
			if err := app.API.CancelOrder(cmd.Context(), app.Session.Token(), order.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "order %s cancelled\n", order.ID)
			return nil
		},
	}
}

func newOrderReturnCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "return <order-id>",
		Short: "Request a return for a shipped order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(gate.PathOrders); err != nil {
				return err
			}
			order, err := findOrder(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if !order.OrderStatus.CanRequestReturn() {
				return fmt.Errorf("order %s is %s, returns need a shipped order", order.ID, order.OrderStatus)
			}
			if err := app.API.RequestReturn(cmd.Context(), app.Session.Token(), order.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "return requested for order %s\n", order.ID)
			return nil
		},
	}
}

func findOrder(ctx context.Context, app *App, orderID string) (domain.Order, error) {
	orders, err := app.API.UserOrders(ctx, app.Session.Token(), app.Session.Email())
	if err != nil {
		return domain.Order{}, err
	}
	for _, o := range orders {
		if o.ID == orderID {
			return o, nil
		}
	}
	return domain.Order{}, fmt.Errorf("order %s not found", orderID)
}

func printOrders(cmd *cobra.Command, orders []domain.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no orders")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTOTAL\tSTATUS\tPAYMENT\tMETHOD")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%.2f\t%s\t%s\t%s\n", o.ID, o.TotalPrice, o.OrderStatus, o.PaymentStatus, o.PaymentMethod)
	}
	w.Flush()
}
