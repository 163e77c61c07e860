package api

import (
	"context"

	"storefront/internal/domain/model"
	"storefront/internal/transport"
)

type OrderAPIClient struct {
	c *transport.Client
}

// DI
func NewOrderAPIClient(c *transport.Client) *OrderAPIClient {
	return &OrderAPIClient{c: c}
}

type createOrderResponse struct {
	OrderID string `json:"order_id"`
}

// 配送先＋カート参照を multipart で送って注文を作る
func (a *OrderAPIClient) CreateOrder(ctx context.Context, in model.OrderInput) (string, error) {
	uid, _ := model.UserID(in.Shopper)

	fields := map[string]string{
		"first_name": in.FirstName,
		"last_name":  in.LastName,
		"email":      in.Email,
		"phone":      in.Phone,
		"address":    in.Address,
		"city":       in.City,
		"country":    in.Country,
		"cart_id":    string(in.CartID),
		"user_id":    uid,
	}

	var res createOrderResponse
	if err := a.c.PostMultipart(ctx, "create-order/", fields, &res); err != nil {
		return "", err
	}
	return res.OrderID, nil
}
