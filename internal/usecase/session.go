package usecase

import "sync"

// 画面間で共有するカートバッジの件数。
// 読み取りと購読は誰でもよいが、書き込みはこのパッケージの
// ミューテータ完了経路（setItemCount）に限定する。
type CartSession struct {
	mu    sync.RWMutex
	count int
	subs  []chan int
}

func NewCartSession() *CartSession {
	return &CartSession{}
}

// 現在の明細件数
func (s *CartSession) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count
}

// 件数変更の購読。受信が追いつかない購読者には最新値だけ届く。
// 使い終わったらUnsubscribeで解除する（画面の破棄に合わせる）。
func (s *CartSession) Subscribe() <-chan int {
	ch := make(chan int, 1)

	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()

	return ch
}

// 購読を解除してチャネルを閉じる
func (s *CartSession) Unsubscribe(ch <-chan int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.subs {
		if sub == ch {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			close(sub)
			return
		}
	}
}

// 書き込みは単一ライター（カートのミューテータ側）のみ
func (s *CartSession) setItemCount(n int) {
	s.mu.Lock()
	s.count = n
	subs := s.subs
	s.mu.Unlock()

	for _, ch := range subs {
		//詰まっている購読者は古い値を捨てて入れ替える
		select {
		case ch <- n:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- n:
			default:
			}
		}
	}
}
