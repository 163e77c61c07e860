package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"storefront/internal/domain/model"
	"storefront/internal/transport"
)

type CatalogAPIClient struct {
	c *transport.Client
}

// DI
func NewCatalogAPIClient(c *transport.Client) *CatalogAPIClient {
	return &CatalogAPIClient{c: c}
}

// 絞り込み条件をクエリ文字列に合成して一覧取得
func (a *CatalogAPIClient) ListProducts(ctx context.Context, q model.ProductQuery) ([]model.Product, error) {
	v := url.Values{}

	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.MinPrice != nil {
		v.Set("min_price", strconv.FormatFloat(*q.MinPrice, 'f', 2, 64))
	}
	if q.MaxPrice != nil {
		v.Set("max_price", strconv.FormatFloat(*q.MaxPrice, 'f', 2, 64))
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}

	path := "products/"
	if enc := v.Encode(); enc != "" {
		path += "?" + enc
	}

	var products []model.Product
	if err := a.c.GetJSON(ctx, path, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// 商品1件を取得
func (a *CatalogAPIClient) FindProduct(ctx context.Context, productID int64) (model.Product, error) {
	var p model.Product
	if err := a.c.GetJSON(ctx, fmt.Sprintf("product-detail/%d/", productID), &p); err != nil {
		return model.Product{}, err
	}
	return p, nil
}
