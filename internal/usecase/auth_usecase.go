package usecase

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/repository"

	"github.com/golang-jwt/jwt/v4"
)

const stateKeyAccessToken = "access_token"

// 保存済みアクセストークンから購入者を判定する。
// トークンの発行・検証はサーバー側の責務（ここではクレーム読み取りだけ）。
type AuthUsecase struct {
	store repository.StateStore
}

// DI
func NewAuthUsecase(store repository.StateStore) *AuthUsecase {
	return &AuthUsecase{store: store}
}

// 現在の購入者。トークンが無い・読めないときは Guest。
func (u *AuthUsecase) CurrentShopper(ctx context.Context) model.Shopper {
	raw, err := u.store.Load(ctx, stateKeyAccessToken)
	if err != nil {
		return model.Guest{}
	}
	return ShopperFromToken(raw)
}

// アクセストークンを保存
func (u *AuthUsecase) SetAccessToken(ctx context.Context, raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return errors.New("empty token")
	}

	//subが取れないトークンは保存しない
	if _, ok := model.UserID(ShopperFromToken(raw)); !ok {
		return errors.New("token has no subject")
	}

	return u.store.Save(ctx, stateKeyAccessToken, raw)
}

// アクセストークンを破棄してGuestに戻る
func (u *AuthUsecase) ClearAccessToken(ctx context.Context) error {
	return u.store.Delete(ctx, stateKeyAccessToken)
}

// JWTのsubクレームからユーザーIDを取り出す
func ShopperFromToken(raw string) model.Shopper {
	if raw == "" {
		return model.Guest{}
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return model.Guest{}
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return model.Guest{}
	}
	return model.AuthenticatedUser{ID: sub}
}
