package usecase_test

import (
	"context"
	"testing"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, sub string) string {
	t.Helper()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": sub})
	raw, err := tok.SignedString([]byte("test_secret"))
	require.NoError(t, err)
	return raw
}

func TestShopperFromToken(t *testing.T) {
	s := usecase.ShopperFromToken(signedToken(t, "42"))
	uid, ok := model.UserID(s)
	require.True(t, ok)
	assert.Equal(t, "42", uid)

	//読めないトークンはGuest
	assert.Equal(t, model.Guest{}, usecase.ShopperFromToken("not-a-jwt"))
	assert.Equal(t, model.Guest{}, usecase.ShopperFromToken(""))
}

func TestAuthUsecase_TokenLifecycle(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewAuthUsecase(newMemStateStore())

	//保存まえはGuest
	assert.Equal(t, model.Guest{}, uc.CurrentShopper(ctx))

	require.NoError(t, uc.SetAccessToken(ctx, signedToken(t, "42")))
	uid, ok := model.UserID(uc.CurrentShopper(ctx))
	require.True(t, ok)
	assert.Equal(t, "42", uid)

	require.NoError(t, uc.ClearAccessToken(ctx))
	assert.Equal(t, model.Guest{}, uc.CurrentShopper(ctx))
}

// subの無いトークンは保存しない
func TestAuthUsecase_RejectsTokenWithoutSubject(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewAuthUsecase(newMemStateStore())

	assert.Error(t, uc.SetAccessToken(ctx, "garbage"))
	assert.Error(t, uc.SetAccessToken(ctx, ""))
	assert.Equal(t, model.Guest{}, uc.CurrentShopper(ctx))
}
