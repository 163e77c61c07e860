package usecase

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type ListProductsInput struct {
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Sort     string
	Page     int
	Limit    int
}

// 商品一覧の取得結果
type ProductOutput struct {
	Product model.Product
	//NPR表示（桁区切りあり）
	DisplayPrice string
}

// 商品カタログのユースケース
type CatalogUsecase struct {
	api repo.CatalogAPI
}

// DI
func NewCatalogUsecase(api repo.CatalogAPI) *CatalogUsecase {
	return &CatalogUsecase{api: api}
}

// 絞り込み条件を検証・合成して一覧を取る
func (u *CatalogUsecase) ListProducts(ctx context.Context, in ListProductsInput) ([]ProductOutput, error) {
	if in.Page < 0 {
		return nil, errors.New("invalid page")
	}
	if in.Limit < 0 || in.Limit > 100 {
		return nil, errors.New("invalid limit")
	}
	if in.MinPrice != nil && in.MaxPrice != nil && *in.MinPrice > *in.MaxPrice {
		return nil, errors.New("invalid price range")
	}

	products, err := u.api.ListProducts(ctx, model.ProductQuery{
		Search:   in.Search,
		Category: in.Category,
		MinPrice: in.MinPrice,
		MaxPrice: in.MaxPrice,
		Sort:     in.Sort,
		Page:     in.Page,
		Limit:    in.Limit,
	})
	if err != nil {
		return nil, err
	}

	out := make([]ProductOutput, 0, len(products))
	for _, p := range products {
		out = append(out, ProductOutput{
			Product:      p,
			DisplayPrice: FormatNPR(p.Price),
		})
	}
	return out, nil
}

// 商品1件
func (u *CatalogUsecase) FindProduct(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, errors.New("invalid product id")
	}
	return u.api.FindProduct(ctx, productID)
}
