// Package router 实现对象范围的事件路由
package router

import "errors"

// 订阅校验相关错误（配置错误，订阅调用时同步返回）
var (
	// ErrUnknownEventType 事件类型不在模型表中
	ErrUnknownEventType = errors.New("router: unknown event type")

	// ErrKindMismatch 事件类型从不携带该种类的对象
	ErrKindMismatch = errors.New("router: event never carries object kind")

	// ErrInvalidObjectID 对象身份无效
	ErrInvalidObjectID = errors.New("router: invalid object id")

	// ErrUnknownKind 对象种类无效
	ErrUnknownKind = errors.New("router: unknown object kind")
)
