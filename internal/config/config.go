package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// 決済プロバイダの公開キー（ビルド時定数）
const KhaltiPublicKey = "test_public_key_dc74e0fd57cb46cd93832aee0a390234"

// Configはアプリ全体の設定
type Config struct {
	APIBaseURL  string // リモートサービスのベースURL
	StateDBPath string // ローカル状態のsqliteファイル
	ShipCountry string // cart-view/ に付ける配送先国
	GoEnv       string // dev/prod（ログ出力の切り替え）
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		APIBaseURL:  os.Getenv("API_BASE_URL"),
		StateDBPath: os.Getenv("STATE_DB_PATH"),
		ShipCountry: os.Getenv("SHIP_COUNTRY"),
		GoEnv:       os.Getenv("GO_ENV"),
	}

	//必須チェック
	if cfg.APIBaseURL == "" {
		return Config{}, fmt.Errorf("API_BASE_URL is required")
	}

	if cfg.StateDBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("STATE_DB_PATH is required: %w", err)
		}
		cfg.StateDBPath = filepath.Join(home, ".storefront", "state.db")
	}

	if cfg.ShipCountry == "" {
		cfg.ShipCountry = "Nepal"
	}
	if cfg.GoEnv == "" {
		cfg.GoEnv = "dev"
	}

	return cfg, nil
}
