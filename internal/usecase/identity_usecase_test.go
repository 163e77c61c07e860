package usecase_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	repo "storefront/internal/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// メモリ上のStateStore
type memStateStore struct {
	mu sync.Mutex
	kv map[string]string
}

func newMemStateStore() *memStateStore {
	return &memStateStore{kv: map[string]string{}}
}

func (s *memStateStore) Load(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.kv[key]
	if !ok {
		return "", repo.ErrNotFound
	}
	return v, nil
}

func (s *memStateStore) Save(ctx context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kv[key] = value
	return nil
}

func (s *memStateStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.kv, key)
	return nil
}

const cartIDAlphabet = "ABCDEFGHIJKL1234567890"

// 同じ保存領域なら何度呼んでも同じIDが返る
func TestIdentityUsecase_StableAcrossCalls(t *testing.T) {
	ctx := context.Background()
	store := newMemStateStore()

	uc := usecase.NewIdentityUsecase(store)

	first, err := uc.CartID(ctx)
	require.NoError(t, err)

	second, err := uc.CartID(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	//別インスタンスでも保存領域が同じなら同じID
	again, err := usecase.NewIdentityUsecase(store).CartID(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

// 30文字・固定アルファベットだけで構成される
func TestIdentityUsecase_IDShape(t *testing.T) {
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		id, err := usecase.NewIdentityUsecase(newMemStateStore()).CartID(ctx)
		require.NoError(t, err)

		require.Len(t, string(id), 30)
		for _, r := range string(id) {
			assert.True(t, strings.ContainsRune(cartIDAlphabet, r), "unexpected character %q in %s", r, id)
		}
	}
}
