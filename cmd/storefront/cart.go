package main

import (
	"fmt"

	"storefront/internal/usecase"

	"github.com/spf13/cobra"
)

func newCartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "show and edit the cart",
	}

	cmd.AddCommand(
		newCartShowCmd(a),
		newCartAddCmd(a),
		newCartSetCmd(a),
		newCartRemoveCmd(a),
	)
	return cmd
}

func newCartShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "list cart items and totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if err := a.cartUC.Refresh(ctx); err != nil {
				return err
			}

			items := a.cartUC.Items()
			if len(items) == 0 {
				fmt.Println("cart is empty")
				return nil
			}

			for _, it := range items {
				variant := ""
				if it.Size != "" || it.Color != "" {
					variant = fmt.Sprintf(" (%s %s)", it.Size, it.Color)
				}
				fmt.Printf("#%d %s%s x%d  %s\n",
					it.ID, it.Title, variant, it.Quantity, usecase.FormatNPR(it.SubTotal))
			}

			t := usecase.FormatTotals(a.cartUC.Totals())
			fmt.Println("---")
			fmt.Printf("sub total:   %s\n", t.SubTotal)
			fmt.Printf("shipping:    %s\n", t.Shipping)
			fmt.Printf("tax:         %s\n", t.Tax)
			fmt.Printf("service fee: %s\n", t.ServiceFee)
			fmt.Printf("total:       %s\n", t.Total)
			fmt.Printf("items in cart: %d\n", a.session.ItemCount())
			return nil
		},
	}
}

func newCartAddCmd(a *app) *cobra.Command {
	var (
		productID int64
		qty       int64
		size      string
		color     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "add a product to the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			p, err := a.catalogUC.FindProduct(ctx, productID)
			if err != nil {
				return err
			}

			return a.cartUC.AddToCart(ctx, p, size, color, qty)
		},
	}

	cmd.Flags().Int64Var(&productID, "product", 0, "product id")
	cmd.Flags().Int64Var(&qty, "qty", 1, "quantity")
	cmd.Flags().StringVar(&size, "size", "", "selected size")
	cmd.Flags().StringVar(&color, "color", "", "selected color")
	_ = cmd.MarkFlagRequired("product")
	return cmd
}

func newCartSetCmd(a *app) *cobra.Command {
	var (
		productID int64
		qty       int64
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "change the quantity of a cart line",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			//差分計算のためにサーバー確定値を先に取る
			if err := a.cartUC.Refresh(ctx); err != nil {
				return err
			}

			a.cartUC.SetQuantity(productID, qty)
			//CLIは1回で終わるので静止期間を待たずに反映する
			a.cartUC.Flush(ctx)
			return nil
		},
	}

	cmd.Flags().Int64Var(&productID, "product", 0, "product id")
	cmd.Flags().Int64Var(&qty, "qty", 1, "new quantity")
	_ = cmd.MarkFlagRequired("product")
	_ = cmd.MarkFlagRequired("qty")
	return cmd
}

func newCartRemoveCmd(a *app) *cobra.Command {
	var itemID int64

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "remove a cart line",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cartUC.RemoveItem(cmd.Context(), itemID)
		},
	}

	cmd.Flags().Int64Var(&itemID, "item", 0, "cart item id")
	_ = cmd.MarkFlagRequired("item")
	return cmd
}
