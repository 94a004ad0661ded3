// Package transport 实现事件流传输
//
// 本文件提供测试辅助：Stub 按序重放固定帧序列后结束流，
// 与真实 WebSocket 传输实现同一接口。
package transport

import (
	"context"
	"io"
	"sync"

	pkgif "github.com/dep2p/go-ari/pkg/interfaces"
)

// Stub 重放固定帧序列的传输测试替身
type Stub struct {
	mu       sync.Mutex
	frames   []string
	next     int
	app      string
	closed   bool
	received int
}

// 确保 Stub 实现了 interfaces.Transport 接口
var _ pkgif.Transport = (*Stub)(nil)

// NewStub 创建重放 frames 的传输替身
func NewStub(frames ...string) *Stub {
	return &Stub{frames: frames}
}

// Connect 记录应用名
func (s *Stub) Connect(_ context.Context, app string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.app = app
	return nil
}

// Receive 返回下一条帧，序列耗尽后返回 io.EOF
func (s *Stub) Receive(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.next >= len(s.frames) {
		return "", io.EOF
	}
	frame := s.frames[s.next]
	s.next++
	s.received++
	return frame, nil
}

// Close 结束流
func (s *Stub) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// App 返回 Connect 记录的应用名
func (s *Stub) App() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.app
}

// Received 返回已交付的帧数
func (s *Stub) Received() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.received
}
