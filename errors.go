package ari

import "errors"

// 客户端相关错误
var (
	// ErrClosed 客户端已关闭
	ErrClosed = errors.New("ari: client is closed")

	// ErrUnknownKind 对象种类名无法识别
	ErrUnknownKind = errors.New("ari: unknown object kind")
)
