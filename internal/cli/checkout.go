package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OmarT94/Webshop/internal/checkout"
	"github.com/OmarT94/Webshop/internal/domain"
	"github.com/OmarT94/Webshop/internal/gate"
)

// hostedConfirmer stands in for the processor's hosted authorization UI,
// which a terminal cannot embed. The backend creates intents in a mode where
// confirmation happens on its side, so the client only needs the intent id
// the secret references.
func hostedConfirmer() checkout.PaymentConfirmer {
	return checkout.ConfirmerFunc(func(_ context.Context, clientSecret string, _ domain.PaymentMethod) (string, error) {
		return checkout.IntentFromClientSecret(clientSecret)
	})
}

func newCheckoutCommand(app *App) *cobra.Command {
	var address domain.Address
	var addressID, method string

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order from the current cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(gate.PathCheckout); err != nil {
				return err
			}

			pm, err := domain.ParsePaymentMethod(method)
			if err != nil {
				return err
			}

			token, email := app.Session.Token(), app.Session.Email()
			if addressID != "" {
				saved, err := savedAddress(cmd.Context(), app, token, email, addressID)
				if err != nil {
					return err
				}
				address = saved
			}

			if err := app.Cart.Fetch(cmd.Context(), token, email); err != nil {
				return err
			}

			app.Checkout.SetShippingAddress(address)
			app.Checkout.SetPaymentMethod(pm)

			order, err := app.Checkout.PlaceOrder(cmd.Context(), token, email)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "order %s placed, total %.2f, payment %s\n",
				order.ID, order.TotalPrice, order.PaymentStatus)
			return nil
		},
	}

	cmd.Flags().StringVar(&address.Street, "street", "", "street")
	cmd.Flags().StringVar(&address.HouseNumber, "house-number", "", "house number")
	cmd.Flags().StringVar(&address.City, "city", "", "city")
	cmd.Flags().StringVar(&address.PostalCode, "postal-code", "", "postal code")
	cmd.Flags().StringVar(&address.Country, "country", "", "country")
	cmd.Flags().StringVar(&address.TelephoneNumber, "phone", "", "telephone number")
	cmd.Flags().StringVar(&addressID, "address-id", "", "ship to a saved address instead of entering one")
	cmd.Flags().StringVar(&method, "method", "paypal", "payment method (card|paypal|klarna|sepa|sofort)")
	cmd.MarkFlagsMutuallyExclusive("address-id", "street")

	return cmd
}

// savedAddress resolves an id from the user's address book into a full
// shipping address.
func savedAddress(ctx context.Context, app *App, token, email, addressID string) (domain.Address, error) {
	addresses, err := app.API.Addresses(ctx, token, email)
	if err != nil {
		return domain.Address{}, err
	}
	for _, a := range addresses {
		if a.ID == addressID {
			return a, nil
		}
	}
	return domain.Address{}, fmt.Errorf("no saved address with id %s", addressID)
}
