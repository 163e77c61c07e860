package model

import "time"

// クライアント側の永続状態（カートIDなど）
// ブラウザのlocalStorage相当。sqliteファイルに保存する。
type ClientKV struct {
	Key       string    `gorm:"primaryKey;type:varchar(100)" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
