package repository

import "context"

// クライアントローカルの永続KV（カートID、アクセストークン）
// 無いキーのLoadは ErrNotFound。
type StateStore interface {
	Load(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
