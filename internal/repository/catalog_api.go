package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// リモートの商品カタログ
type CatalogAPI interface {
	// products/ に絞り込み条件をクエリで付けて取得
	ListProducts(ctx context.Context, q model.ProductQuery) ([]model.Product, error)

	// product-detail/{id}/
	FindProduct(ctx context.Context, productID int64) (model.Product, error)
}
