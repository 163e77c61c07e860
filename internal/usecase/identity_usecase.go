package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"

	"storefront/internal/domain/model"
	"storefront/internal/repository"
)

const (
	//カートIDに使える文字。サーバー側の期待と合わせる。
	cartIDAlphabet = "ABCDEFGHIJKL1234567890"
	cartIDLength   = 30

	stateKeyCartID = "cart_id"
)

// 匿名カートIDの払い出し。
// 一度作ったらブラウザ相当の保存領域に残り続ける（期限なし・破棄なし）。
type IdentityUsecase struct {
	store repository.StateStore
}

// DI
func NewIdentityUsecase(store repository.StateStore) *IdentityUsecase {
	return &IdentityUsecase{store: store}
}

// 保存済みのIDをそのまま返す。無ければ生成して保存する。
// サーバーへの一意性確認はしない（衝突リスクは許容）。
func (u *IdentityUsecase) CartID(ctx context.Context) (model.CartID, error) {
	v, err := u.store.Load(ctx, stateKeyCartID)
	if err == nil {
		return model.CartID(v), nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	id, err := newCartID()
	if err != nil {
		return "", err
	}

	//初回だけ永続化
	if err := u.store.Save(ctx, stateKeyCartID, string(id)); err != nil {
		return "", err
	}
	return id, nil
}

// 固定アルファベットから一様乱択で30文字
func newCartID() (model.CartID, error) {
	buf := make([]byte, cartIDLength)
	n := big.NewInt(int64(len(cartIDAlphabet)))

	for i := range buf {
		idx, err := rand.Int(rand.Reader, n)
		if err != nil {
			return "", err
		}
		buf[i] = cartIDAlphabet[idx.Int64()]
	}

	return model.CartID(buf), nil
}
