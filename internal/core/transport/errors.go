// Package transport 实现事件流传输
package transport

import "errors"

// 错误定义
var (
	// ErrNotConnected 尚未建立事件流
	ErrNotConnected = errors.New("transport: not connected")

	// ErrAlreadyConnected 事件流已建立
	ErrAlreadyConnected = errors.New("transport: already connected")

	// ErrInvalidBaseURL 无法从 REST 根地址推导事件流地址
	ErrInvalidBaseURL = errors.New("transport: invalid base url")
)
