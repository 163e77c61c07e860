package usecase

import (
	"context"
	"sync"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/notify"
	repo "storefront/internal/repository"
	"storefront/internal/validator"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// カート同期の状態
type SyncState string

const (
	SyncIdle         SyncState = "IDLE"
	SyncEditsPending SyncState = "EDITS_PENDING"
	SyncFlushing     SyncState = "FLUSHING"
	//ロールバック直後。次の編集かフラッシュで抜ける。
	SyncError SyncState = "ERROR"
)

// 静止期間。最後の編集からこれだけ待ってからまとめて送る。
const DefaultQuietPeriod = 500 * time.Millisecond

type CartConfig struct {
	//テストで短縮できる。0以下ならDefaultQuietPeriod。
	QuietPeriod time.Duration
	//cart-view/ に付ける配送先国
	Country string
}

// カート同期のユースケース。
// ローカルの編集（pending）とサーバー確定値（items）を分けて持ち、
// 静止期間あけに差分だけを送って全量を取り直す。
type CartUsecase struct {
	api      repo.CartAPI
	session  *CartSession
	notifier *notify.Center
	log      *zap.Logger

	cartID  model.CartID
	shopper model.Shopper
	country string

	mu     sync.Mutex
	items  []model.CartItem
	totals model.CartTotals
	//productID → 希望数量。フラッシュ成功で消え、失敗でサーバー値へ戻る。
	pending map[int64]int64
	state   SyncState
	//同時に飛ばせるバッチは1つだけ
	isUpdating bool
	//フラッシュ中に静止期間が明けたぶんは完了後にもう一度
	deferred bool

	deb *quantityDebouncer
}

// DI
func NewCartUsecase(
	api repo.CartAPI,
	session *CartSession,
	notifier *notify.Center,
	log *zap.Logger,
	cartID model.CartID,
	shopper model.Shopper,
	cfg CartConfig,
) *CartUsecase {
	if cfg.QuietPeriod <= 0 {
		cfg.QuietPeriod = DefaultQuietPeriod
	}

	uc := &CartUsecase{
		api:      api,
		session:  session,
		notifier: notifier,
		log:      log,
		cartID:   cartID,
		shopper:  shopper,
		country:  cfg.Country,
		pending:  map[int64]int64{},
		state:    SyncIdle,
	}
	uc.deb = newQuantityDebouncer(cfg.QuietPeriod, func() {
		uc.Flush(context.Background())
	})
	return uc
}

// 発火待ちのタイマーを止める
func (uc *CartUsecase) Close() {
	uc.deb.Stop()
}

// 明細と集計を取り直してローカル状態を置き換える。
// 2本のGETは独立に発行され、完了順には依存しない。
func (uc *CartUsecase) Refresh(ctx context.Context) error {
	var items []model.CartItem
	var totals model.CartTotals

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := uc.api.FetchItems(gctx, uc.cartID, uc.shopper)
		if err != nil {
			return err
		}
		items = v
		return nil
	})
	g.Go(func() error {
		v, err := uc.api.FetchTotals(gctx, uc.cartID, uc.shopper)
		if err != nil {
			return err
		}
		totals = v
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	uc.mu.Lock()
	uc.items = items
	uc.totals = totals
	//サーバー値と一致したpendingは消化済み。フラッシュ中に入った編集は残す。
	for pid, qty := range uc.pending {
		for _, it := range items {
			if it.ProductID == pid && it.Quantity == qty {
				delete(uc.pending, pid)
				break
			}
		}
	}
	uc.mu.Unlock()

	uc.session.setItemCount(len(items))
	return nil
}

// サーバー確定の明細（コピー）
func (uc *CartUsecase) Items() []model.CartItem {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]model.CartItem, len(uc.items))
	copy(out, uc.items)
	return out
}

// サーバー計算の集計
func (uc *CartUsecase) Totals() model.CartTotals {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.totals
}

func (uc *CartUsecase) State() SyncState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

// 表示用の数量。未確定の編集があればそちらを優先。
func (uc *CartUsecase) Quantity(productID int64) int64 {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if q, ok := uc.pending[productID]; ok {
		return q
	}
	for _, it := range uc.items {
		if it.ProductID == productID {
			return it.Quantity
		}
	}
	return 0
}

// 数量の直接入力。同一商品はlast-write-wins。
func (uc *CartUsecase) SetQuantity(productID int64, qty int64) {
	if qty < 1 {
		qty = 1
	}

	uc.mu.Lock()
	uc.pending[productID] = qty
	if uc.state == SyncIdle || uc.state == SyncError {
		uc.state = SyncEditsPending
	}
	uc.mu.Unlock()

	uc.deb.Touch()
}

func (uc *CartUsecase) Increment(productID int64) {
	uc.SetQuantity(productID, uc.Quantity(productID)+1)
}

// 1未満には下げない
func (uc *CartUsecase) Decrement(productID int64) {
	q := uc.Quantity(productID) - 1
	if q < 1 {
		q = 1
	}
	uc.SetQuantity(productID, q)
}

// 静止期間あけの一括反映。
// 差分ゼロなら通信しない。フラッシュ中なら完了後へ先送り。
func (uc *CartUsecase) Flush(ctx context.Context) {
	uc.mu.Lock()
	changed := uc.changedLocked()
	if len(changed) == 0 {
		uc.state = SyncIdle
		uc.mu.Unlock()
		return
	}
	if uc.isUpdating {
		uc.deferred = true
		uc.mu.Unlock()
		return
	}
	uc.isUpdating = true
	uc.state = SyncFlushing
	uc.mu.Unlock()

	err := uc.syncQuantities(ctx, changed)

	uc.mu.Lock()
	//結果によらず必ず下ろす
	uc.isUpdating = false
	again := uc.deferred
	uc.deferred = false

	if err != nil {
		uc.rollbackLocked()
		uc.state = SyncError
		uc.mu.Unlock()

		uc.log.Warn("cart sync failed",
			zap.String("cart_id", string(uc.cartID)),
			zap.Int("changed", len(changed)),
			zap.Error(err),
		)
		uc.notifier.Push(notify.SeverityError, "failed to update cart")
		return
	}

	uc.state = SyncIdle
	uc.mu.Unlock()

	if again {
		uc.Flush(ctx)
	}
}

// pendingのうちサーバー数量と異なる明細だけを希望数量で返す
func (uc *CartUsecase) changedLocked() []model.CartItem {
	var out []model.CartItem
	for _, it := range uc.items {
		if q, ok := uc.pending[it.ProductID]; ok && q != it.Quantity {
			c := it
			c.Quantity = q
			out = append(out, c)
		}
	}
	return out
}

// 変更明細ごとに並行でupsertし、全成功なら全量を取り直す。
// 一部だけ成功したバッチでも、成功ぶんの取り消しはしない。
// 次に成功したフラッシュの全量取得でサーバー値へ収束する。
func (uc *CartUsecase) syncQuantities(ctx context.Context, changed []model.CartItem) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, it := range changed {
		it := it
		g.Go(func() error {
			return uc.api.UpsertItem(gctx, repo.UpsertItemInput{
				CartID:         uc.cartID,
				Shopper:        uc.shopper,
				ProductID:      it.ProductID,
				Quantity:       it.Quantity,
				Price:          it.Price,
				ShippingAmount: it.ShippingAmount,
				Country:        uc.country,
				Size:           it.Size,
				Color:          it.Color,
			})
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return uc.Refresh(ctx)
}

// pendingを最後に確認したサーバー数量へ戻す
func (uc *CartUsecase) rollbackLocked() {
	uc.pending = make(map[int64]int64, len(uc.items))
	for _, it := range uc.items {
		uc.pending[it.ProductID] = it.Quantity
	}
}

// カートへ追加。選択チェック→upsert→全量取り直し→件数更新。
func (uc *CartUsecase) AddToCart(ctx context.Context, p model.Product, size string, color string, qty int64) error {
	if err := validator.ValidateSelection(p, size, color); err != nil {
		//通信ゼロで即時に弾く
		uc.notifier.Push(notify.SeverityWarning, err.Error())
		return err
	}
	if qty < 1 {
		qty = 1
	}

	err := uc.api.UpsertItem(ctx, repo.UpsertItemInput{
		CartID:         uc.cartID,
		Shopper:        uc.shopper,
		ProductID:      p.ID,
		Quantity:       qty,
		Price:          p.Price,
		ShippingAmount: p.ShippingAmount,
		Country:        uc.country,
		Size:           size,
		Color:          color,
	})
	if err != nil {
		uc.notifier.Push(notify.SeverityError, "failed to add to cart")
		return err
	}

	if err := uc.Refresh(ctx); err != nil {
		return err
	}

	uc.notifier.Push(notify.SeveritySuccess, "added to cart")
	return nil
}

// 明細を削除して全量を取り直す
func (uc *CartUsecase) RemoveItem(ctx context.Context, itemID int64) error {
	if err := uc.api.DeleteItem(ctx, uc.cartID, itemID, uc.shopper); err != nil {
		uc.notifier.Push(notify.SeverityError, "failed to remove item")
		return err
	}

	if err := uc.Refresh(ctx); err != nil {
		return err
	}

	uc.notifier.Push(notify.SeverityInfo, "item removed")
	return nil
}
