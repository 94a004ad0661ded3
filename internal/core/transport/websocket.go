// Package transport 实现事件流传输
package transport

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dep2p/go-ari/config"
	pkgif "github.com/dep2p/go-ari/pkg/interfaces"
	"github.com/dep2p/go-ari/pkg/lib/log"
)

var logger = log.Logger("core/transport")

// ============================================================================
//                              WebSocket 实现
// ============================================================================

// WebSocket 基于 gorilla/websocket 的事件流传输
type WebSocket struct {
	cfg *config.Config

	mu   sync.Mutex
	conn *websocket.Conn
}

// 确保 WebSocket 实现了 interfaces.Transport 接口
var _ pkgif.Transport = (*WebSocket)(nil)

// NewWebSocket 创建 WebSocket 传输
func NewWebSocket(cfg *config.Config) *WebSocket {
	return &WebSocket{cfg: cfg}
}

// eventsURL 从 REST 根地址推导事件流地址
//
// http → ws、https → wss，路径追加 /events，
// 凭证以 api_key 查询参数传递（ARI 的约定）。
func (t *WebSocket) eventsURL(app string) (string, error) {
	u, err := url.Parse(t.cfg.Connection.BaseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("%w: scheme %q", ErrInvalidBaseURL, u.Scheme)
	}
	u.Path += "/events"

	q := u.Query()
	q.Set("app", app)
	q.Set("api_key", t.cfg.Connection.Username+":"+t.cfg.Connection.Password)
	if t.cfg.WebSocket.SubscribeAll {
		q.Set("subscribeAll", "true")
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// Connect 建立事件流
func (t *WebSocket) Connect(ctx context.Context, app string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn != nil {
		return ErrAlreadyConnected
	}

	wsURL, err := t.eventsURL(app)
	if err != nil {
		return err
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: t.cfg.WebSocket.HandshakeTimeout.Duration(),
	}
	conn, resp, err := dialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("transport: dial events: %w (status %s)", err, resp.Status)
		}
		return fmt.Errorf("transport: dial events: %w", err)
	}

	if limit := t.cfg.WebSocket.ReadLimit; limit > 0 {
		conn.SetReadLimit(limit)
	}

	t.conn = conn
	logger.Info("event stream connected", "app", app)
	return nil
}

// Receive 返回下一条文本帧
//
// 服务端正常关闭返回 io.EOF；ctx 取消返回 ctx.Err()。
// 非文本帧被跳过。
func (t *WebSocket) Receive(ctx context.Context) (string, error) {
	t.mu.Lock()
	conn := t.conn
	t.mu.Unlock()

	if conn == nil {
		return "", ErrNotConnected
	}

	for {
		// ctx 取消时以读截止时间打断阻塞读
		done := make(chan struct{})
		go func() {
			select {
			case <-ctx.Done():
				_ = conn.SetReadDeadline(time.Now())
			case <-done:
			}
		}()

		msgType, data, err := conn.ReadMessage()
		close(done)

		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return "", io.EOF
			}
			return "", fmt.Errorf("transport: receive: %w", err)
		}

		if msgType != websocket.TextMessage {
			logger.Warn("non-text frame skipped", "type", msgType)
			continue
		}
		return string(data), nil
	}
}

// Close 关闭传输
//
// 先发送关闭帧（尽力而为），再关闭底层连接。幂等。
func (t *WebSocket) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn == nil {
		return nil
	}

	deadline := time.Now().Add(time.Second)
	_ = t.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)

	err := t.conn.Close()
	t.conn = nil
	return err
}
