package usecase

import (
	"sync"
	"time"
)

// 連打される数量編集を静止期間あけの1回にまとめる。
// Touchのたびにタイマーを張り直すので、最後の編集から
// quiet経過したときだけfireが呼ばれる。
type quantityDebouncer struct {
	mu    sync.Mutex
	quiet time.Duration
	timer *time.Timer
	fire  func()
}

func newQuantityDebouncer(quiet time.Duration, fire func()) *quantityDebouncer {
	return &quantityDebouncer{quiet: quiet, fire: fire}
}

// 編集が来た。タイマーを張り直す。
func (d *quantityDebouncer) Touch() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, d.fire)
}

// 破棄。発火待ちがあれば取り消す。
func (d *quantityDebouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
