package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// 1試行ごとのタイムアウト
const requestTimeout = 15 * time.Second

// 再試行ポリシー（不変値）。タイムアウト系の失敗だけが対象。
type RetryPolicy struct {
	//タイムアウト後の追加試行回数
	MaxRetries int
	//試行間の待ち時間
	Interval time.Duration
}

// タイムアウトは2回まで再試行
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 2, Interval: 500 * time.Millisecond}
}

// 再試行対象かを判定。タイムアウト以外は即失敗。
func (p RetryPolicy) Retryable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// 2xx以外の応答
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

// 再試行を使い切った
type RetryExhaustedError struct {
	Attempts int
	Last     error
}

func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("request failed after %d attempts: %v", e.Attempts, e.Last)
}

func (e *RetryExhaustedError) Unwrap() error { return e.Last }

// リモートサービスへのHTTPクライアント
type Client struct {
	base   string
	http   *http.Client
	policy RetryPolicy
	log    *zap.Logger
}

// DI
func New(baseURL string, policy RetryPolicy, log *zap.Logger) *Client {
	return NewWithHTTPClient(baseURL, policy, &http.Client{Timeout: requestTimeout}, log)
}

// テスト用にhttp.Clientを差し替え可能にする
func NewWithHTTPClient(baseURL string, policy RetryPolicy, hc *http.Client, log *zap.Logger) *Client {
	return &Client{
		base:   strings.TrimRight(baseURL, "/"),
		http:   hc,
		policy: policy,
		log:    log,
	}
}

// GETしてJSONをデコード
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

// DELETEを発行。応答ボディは読み捨てる。
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, "", nil, nil)
}

// multipart/form-data でPOST。ボディは一度組み立てて試行ごとに再送する。
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	//フィールド順を固定（テストとログの再現性）
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := w.WriteField(k, fields[k]); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	return c.do(ctx, http.MethodPost, path, w.FormDataContentType(), buf.Bytes(), out)
}

// 再試行つきで1リクエストを完了させる
func (c *Client) do(ctx context.Context, method string, path string, contentType string, body []byte, out any) error {
	url := c.base + "/" + strings.TrimLeft(path, "/")

	var last error
	for attempt := 1; attempt <= 1+c.policy.MaxRetries; attempt++ {
		if attempt > 1 {
			c.log.Warn("retrying after timeout",
				zap.String("method", method),
				zap.String("path", path),
				zap.Int("attempt", attempt),
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.policy.Interval):
			}
		}

		err := c.once(ctx, method, url, contentType, body, out)
		if err == nil {
			return nil
		}
		if !c.policy.Retryable(err) {
			return err
		}
		last = err
	}

	return &RetryExhaustedError{Attempts: 1 + c.policy.MaxRetries, Last: last}
}

// 1試行ぶん
func (c *Client) once(ctx context.Context, method string, url string, contentType string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		io.Copy(io.Discard, res.Body)
		return &StatusError{Code: res.StatusCode}
	}

	if out == nil {
		io.Copy(io.Discard, res.Body)
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
