package main

import (
	"fmt"

	"storefront/internal/usecase"

	"github.com/spf13/cobra"
)

func newProductsCmd(a *app) *cobra.Command {
	var (
		search   string
		category string
		minPrice float64
		maxPrice float64
		sortBy   string
		page     int
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "products",
		Short: "browse the product catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := usecase.ListProductsInput{
				Search:   search,
				Category: category,
				Sort:     sortBy,
				Page:     page,
				Limit:    limit,
			}
			if cmd.Flags().Changed("min-price") {
				in.MinPrice = &minPrice
			}
			if cmd.Flags().Changed("max-price") {
				in.MaxPrice = &maxPrice
			}

			products, err := a.catalogUC.ListProducts(cmd.Context(), in)
			if err != nil {
				return err
			}

			for _, p := range products {
				stock := ""
				if !p.Product.InStock {
					stock = "  (out of stock)"
				}
				fmt.Printf("#%d %s  %s%s\n", p.Product.ID, p.Product.Title, p.DisplayPrice, stock)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "search text")
	cmd.Flags().StringVar(&category, "category", "", "category slug")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "minimum price")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum price")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort order")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 20, "page size")
	return cmd
}
