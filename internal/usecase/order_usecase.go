package usecase

import (
	"context"

	"storefront/internal/domain/model"
	"storefront/internal/notify"
	repo "storefront/internal/repository"
	"storefront/internal/validator"

	"go.uber.org/zap"
)

// 注文作成のユースケース。
// 決済そのものは外部コラボレータ（ここでは扱わない）。
type OrderUsecase struct {
	api      repo.OrderAPI
	notifier *notify.Center
	log      *zap.Logger
}

// DI
func NewOrderUsecase(api repo.OrderAPI, notifier *notify.Center, log *zap.Logger) *OrderUsecase {
	return &OrderUsecase{api: api, notifier: notifier, log: log}
}

// 配送先を検証して注文を作る。返る注文IDでチェックアウトへ遷移する。
func (u *OrderUsecase) CreateOrder(ctx context.Context, in model.OrderInput) (string, error) {
	if err := validator.ValidateShipping(in); err != nil {
		//通信まえに弾く
		u.notifier.Push(notify.SeverityWarning, "please fill in all shipping fields")
		return "", err
	}

	orderID, err := u.api.CreateOrder(ctx, in)
	if err != nil {
		u.log.Warn("create order failed",
			zap.String("cart_id", string(in.CartID)),
			zap.Error(err),
		)
		u.notifier.Push(notify.SeverityError, "failed to create order")
		return "", err
	}

	u.notifier.Push(notify.SeveritySuccess, "order created")
	return orderID, nil
}
