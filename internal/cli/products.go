package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/OmarT94/Webshop/internal/api"
	"github.com/OmarT94/Webshop/internal/domain"
	"github.com/OmarT94/Webshop/internal/gate"
)

func newProductsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(gate.PathProducts); err != nil {
				return err
			}
			products, err := app.API.Products(cmd.Context())
			if err != nil {
				return err
			}
			printProducts(cmd, products)
			return nil
		},
	}

	cmd.AddCommand(newProductSearchCommand(app))
	return cmd
}

func newProductSearchCommand(app *App) *cobra.Command {
	var filter api.ProductFilter

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the catalog by name, category or price range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(gate.PathSearch); err != nil {
				return err
			}
			products, err := app.API.SearchProducts(cmd.Context(), filter)
			if err != nil {
				return err
			}
			printProducts(cmd, products)
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Name, "name", "", "name contains")
	cmd.Flags().StringVar(&filter.Category, "category", "", "category")
	cmd.Flags().Float64Var(&filter.MinPrice, "min-price", 0, "minimum price")
	cmd.Flags().Float64Var(&filter.MaxPrice, "max-price", 0, "maximum price")

	return cmd
}

func newCategoriesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(gate.PathProducts); err != nil {
				return err
			}
			categories, err := app.API.Categories(cmd.Context(), app.Session.Token())
			if err != nil {
				return err
			}
			for _, c := range categories {
				fmt.Fprintln(cmd.OutOrStdout(), c.Name)
			}
			return nil
		},
	}
}

func printProducts(cmd *cobra.Command, products []domain.Product) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tSTOCK")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%d\n", p.ID, p.Name, p.Price, p.Stock)
	}
	w.Flush()
}
