package ari

import (
	pkgif "github.com/dep2p/go-ari/pkg/interfaces"
)

// Version 当前版本号
const Version = "0.1.0"

// 公共接口别名，调用方无需直接引用 pkg/interfaces
type (
	// GlobalHandler 全局事件回调
	GlobalHandler = pkgif.GlobalHandler

	// ObjectHandler 对象事件回调
	ObjectHandler = pkgif.ObjectHandler

	// ExceptionHandler 回调错误处理器
	ExceptionHandler = pkgif.ExceptionHandler

	// Registration 订阅句柄
	Registration = pkgif.Registration

	// Object 领域对象代理
	Object = pkgif.Object

	// Channel 通道代理
	Channel = pkgif.Channel

	// Bridge 桥接代理
	Bridge = pkgif.Bridge

	// Playback 播放代理
	Playback = pkgif.Playback

	// Recording 录音代理
	Recording = pkgif.Recording

	// Endpoint 端点代理
	Endpoint = pkgif.Endpoint

	// Transport 事件流传输
	Transport = pkgif.Transport
)
