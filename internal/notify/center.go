package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// 通知の重要度
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// 画面に出す一時通知。閉じられるまで保持する。
type Notification struct {
	ID        string    `json:"id"`
	Severity  Severity  `json:"severity"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// 通知の置き場。リモート呼び出しの失敗はすべてここに集約される。
type Center struct {
	mu    sync.Mutex
	items []Notification
	log   *zap.Logger
}

// DI
func NewCenter(log *zap.Logger) *Center {
	return &Center{log: log}
}

// 通知を積む
func (c *Center) Push(sev Severity, msg string) Notification {
	n := Notification{
		ID:        uuid.NewString(),
		Severity:  sev,
		Message:   msg,
		CreatedAt: time.Now(),
	}

	c.mu.Lock()
	c.items = append(c.items, n)
	c.mu.Unlock()

	c.log.Info("notification",
		zap.String("severity", string(sev)),
		zap.String("message", msg),
	)

	return n
}

// 通知を閉じる。見つかったらtrue。
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// 未処理の通知を新しい順ではなく積んだ順で返す
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}
