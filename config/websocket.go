// Package config 提供统一的配置管理
package config

import (
	"errors"
	"time"
)

// WebSocketConfig 事件流传输配置
//
// 只覆盖单次连接的参数：重连与退避策略不在本库范围内。
type WebSocketConfig struct {
	// HandshakeTimeout WebSocket 握手超时
	HandshakeTimeout Duration `json:"handshake_timeout"`

	// ReadLimit 单帧最大字节数（0 表示不限制）
	ReadLimit int64 `json:"read_limit"`

	// SubscribeAll 连接时订阅全部事件源（ARI 的 subscribeAll 参数）
	SubscribeAll bool `json:"subscribe_all"`
}

// DefaultWebSocketConfig 返回默认事件流配置
func DefaultWebSocketConfig() WebSocketConfig {
	return WebSocketConfig{
		HandshakeTimeout: Duration(15 * time.Second),
		ReadLimit:        1 << 20, // 1 MiB
	}
}

// Validate 验证事件流配置
func (c *WebSocketConfig) Validate() error {
	if c.HandshakeTimeout <= 0 {
		return errors.New("handshake_timeout must be positive")
	}
	if c.ReadLimit < 0 {
		return errors.New("read_limit must not be negative")
	}
	return nil
}
