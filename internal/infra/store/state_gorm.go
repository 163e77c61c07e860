package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 状態保存用のsqliteファイルを開く（無ければ作る）
func Open(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.ClientKV{}); err != nil {
		return nil, err
	}

	return db, nil
}

type StateGormStore struct {
	db *gorm.DB
}

// DI
func NewStateGormStore(db *gorm.DB) *StateGormStore {
	return &StateGormStore{db: db}
}

// キーの値を取得
func (s *StateGormStore) Load(ctx context.Context, key string) (string, error) {
	var kv model.ClientKV

	err := s.db.WithContext(ctx).
		Where("key = ?", key).
		First(&kv).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", repo.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return kv.Value, nil
}

// キーの値を保存（既存なら上書き）
func (s *StateGormStore) Save(ctx context.Context, key string, value string) error {
	kv := model.ClientKV{Key: key, Value: value}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&kv).Error
}

// キーを削除。無くてもエラーにしない。
func (s *StateGormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).
		Where("key = ?", key).
		Delete(&model.ClientKV{}).Error
}
