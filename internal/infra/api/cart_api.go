package api

import (
	"context"
	"fmt"
	"strconv"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/transport"
)

type CartAPIClient struct {
	c *transport.Client
}

// DI
func NewCartAPIClient(c *transport.Client) *CartAPIClient {
	return &CartAPIClient{c: c}
}

// ログイン状態でパス形を切り替える
// 匿名: {prefix}/{cartId}/ ログイン済み: {prefix}/{cartId}/{userId}/
func cartPath(prefix string, cartID model.CartID, shopper model.Shopper) string {
	if uid, ok := model.UserID(shopper); ok {
		return fmt.Sprintf("%s/%s/%s/", prefix, cartID, uid)
	}
	return fmt.Sprintf("%s/%s/", prefix, cartID)
}

// カート明細を一覧取得
func (a *CartAPIClient) FetchItems(ctx context.Context, cartID model.CartID, shopper model.Shopper) ([]model.CartItem, error) {
	var items []model.CartItem
	if err := a.c.GetJSON(ctx, cartPath("cart-list", cartID, shopper), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// サーバー計算の集計を取得
func (a *CartAPIClient) FetchTotals(ctx context.Context, cartID model.CartID, shopper model.Shopper) (model.CartTotals, error) {
	var totals model.CartTotals
	if err := a.c.GetJSON(ctx, cartPath("cart-detail", cartID, shopper), &totals); err != nil {
		return model.CartTotals{}, err
	}
	return totals, nil
}

// 明細をupsert。同一商品は数量を置き換える。
func (a *CartAPIClient) UpsertItem(ctx context.Context, in repo.UpsertItemInput) error {
	uid, _ := model.UserID(in.Shopper)

	fields := map[string]string{
		"product_id":      strconv.FormatInt(in.ProductID, 10),
		"user_id":         uid,
		"qty":             strconv.FormatInt(in.Quantity, 10),
		"price":           strconv.FormatFloat(in.Price, 'f', 2, 64),
		"shipping_amount": strconv.FormatFloat(in.ShippingAmount, 'f', 2, 64),
		"country":         in.Country,
		"size":            in.Size,
		"color":           in.Color,
		"cart_id":         string(in.CartID),
	}

	return a.c.PostMultipart(ctx, "cart-view/", fields, nil)
}

// 明細を削除
func (a *CartAPIClient) DeleteItem(ctx context.Context, cartID model.CartID, itemID int64, shopper model.Shopper) error {
	path := fmt.Sprintf("cart-delete/%s/%d/", cartID, itemID)
	if uid, ok := model.UserID(shopper); ok {
		path = fmt.Sprintf("cart-delete/%s/%d/%s/", cartID, itemID, uid)
	}
	return a.c.Delete(ctx, path)
}
