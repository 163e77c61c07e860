package validator

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/domain/model"
)

var (
	// 入力が不正
	ErrInvalidInput = errors.New("invalid input")
)

// カート投入まえの選択チェック。
// 選択肢が定義されている商品はサイズ・色の選択必須。
// ネットワーク呼び出しのまえに弾くので、失敗時は通信ゼロ。
func ValidateSelection(p model.Product, size string, color string) error {
	var missing []string

	if len(p.Sizes) > 0 && strings.TrimSpace(size) == "" {
		missing = append(missing, "size")
	}
	if len(p.Colors) > 0 && strings.TrimSpace(color) == "" {
		missing = append(missing, "color")
	}

	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("please select %s", strings.Join(missing, " and "))
}

// 注文作成の入力を検証
func ValidateShipping(in model.OrderInput) error {
	// 必須チェック
	if strings.TrimSpace(in.FirstName) == "" ||
		strings.TrimSpace(in.LastName) == "" ||
		strings.TrimSpace(in.Phone) == "" ||
		strings.TrimSpace(in.Address) == "" ||
		strings.TrimSpace(in.City) == "" ||
		strings.TrimSpace(in.Country) == "" {
		return ErrInvalidInput
	}

	// email形式
	if !isEmailLike(in.Email) {
		return ErrInvalidInput
	}

	if in.CartID == "" {
		return ErrInvalidInput
	}

	return nil
}

// 簡易メール形式をチェック
func isEmailLike(s string) bool {
	s = strings.TrimSpace(s)
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	return strings.Contains(s[at+1:], ".")
}
