package main

import (
	"fmt"

	"storefront/internal/domain/model"

	"github.com/spf13/cobra"
)

func newOrderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "create an order from the cart",
	}
	cmd.AddCommand(newOrderCreateCmd(a))
	return cmd
}

func newOrderCreateCmd(a *app) *cobra.Command {
	var in model.OrderInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "create an order from the current cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			//カートIDと購入者は初期化済みのセッションから補う
			in.CartID = a.cartID
			in.Shopper = a.authUC.CurrentShopper(ctx)
			if in.Country == "" {
				in.Country = a.cfg.ShipCountry
			}

			orderID, err := a.orderUC.CreateOrder(ctx, in)
			if err != nil {
				return err
			}

			fmt.Printf("order created: %s\n", orderID)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&in.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&in.Email, "email", "", "email address")
	cmd.Flags().StringVar(&in.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&in.Address, "address", "", "street address")
	cmd.Flags().StringVar(&in.City, "city", "", "city")
	cmd.Flags().StringVar(&in.Country, "country", "", "country")
	return cmd
}
