package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// リモートの注文リソース
type OrderAPI interface {
	// create-order/ に multipart で作成。チェックアウト遷移に使う注文IDを返す。
	CreateOrder(ctx context.Context, in model.OrderInput) (string, error)
}
