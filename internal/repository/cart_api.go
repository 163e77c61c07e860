package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
)

// 対象が見つからない
var ErrNotFound = errors.New("not found")

// cart-view/ へ送る1明細ぶんの入力
type UpsertItemInput struct {
	CartID         model.CartID
	Shopper        model.Shopper
	ProductID      int64
	Quantity       int64
	Price          float64
	ShippingAmount float64
	Country        string
	Size           string
	Color          string
}

// リモートのカートリソース。実装は internal/infra/api。
// この層では再試行しない（transportの責務）。
type CartAPI interface {
	// cart-list/{cartId}/（ログイン済みなら /{userId}/ 付き）
	FetchItems(ctx context.Context, cartID model.CartID, shopper model.Shopper) ([]model.CartItem, error)

	// cart-detail/{cartId}/（同上）
	FetchTotals(ctx context.Context, cartID model.CartID, shopper model.Shopper) (model.CartTotals, error)

	// cart-view/ に multipart で upsert
	UpsertItem(ctx context.Context, in UpsertItemInput) error

	// cart-delete/{cartId}/{itemId}/（同上）
	DeleteItem(ctx context.Context, cartID model.CartID, itemID int64, shopper model.Shopper) error
}
