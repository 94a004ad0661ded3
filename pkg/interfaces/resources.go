// Package interfaces 定义 go-ari 公共接口
//
// 本文件定义领域对象代理与资源服务接口。
// 代理是服务端资源的客户端代表，以稳定键标识；
// 动作方法发起 REST 调用，可能阻塞直到完成。
package interfaces

import (
	"context"

	"github.com/dep2p/go-ari/pkg/types"
)

// ============================================================================
//                              对象代理
// ============================================================================

// Object 领域对象代理的公共接口
type Object interface {
	// ObjectID 返回对象身份（种类 + 稳定键）
	ObjectID() types.ObjectID

	// Key 返回对象稳定键
	Key() string

	// OnEvent 订阅仅引用本对象的事件
	//
	// 是对象范围订阅的便捷形式；事件类型未知或不携带
	// 本对象种类时立即返回配置错误。
	OnEvent(eventType string, h ObjectHandler, boundArgs ...interface{}) (Registration, error)
}

// Channel 通道代理
type Channel interface {
	Object

	// Hangup 挂断通道
	Hangup(ctx context.Context) error

	// Answer 应答通道
	Answer(ctx context.Context) error

	// Ring 向通道播放回铃音
	Ring(ctx context.Context) error

	// ContinueInDialplan 将通道交回拨号计划
	ContinueInDialplan(ctx context.Context) error

	// Play 在通道上播放媒体，返回播放代理
	Play(ctx context.Context, media string) (Playback, error)
}

// Bridge 桥接代理
type Bridge interface {
	Object

	// AddChannel 将通道加入桥接
	AddChannel(ctx context.Context, channelID string) error

	// RemoveChannel 将通道移出桥接
	RemoveChannel(ctx context.Context, channelID string) error

	// Destroy 销毁桥接
	Destroy(ctx context.Context) error
}

// Playback 播放代理
type Playback interface {
	Object

	// Stop 停止播放
	Stop(ctx context.Context) error
}

// Recording 录音代理
type Recording interface {
	Object

	// Stop 停止录音并保存
	Stop(ctx context.Context) error
}

// Endpoint 端点代理（只读资源）
type Endpoint interface {
	Object
}

// ============================================================================
//                              资源服务
// ============================================================================

// Channels 通道资源服务
type Channels interface {
	// Get 获取指定通道的代理
	Get(ctx context.Context, channelID string) (Channel, error)

	// List 列出当前活跃通道
	List(ctx context.Context) ([]Channel, error)
}

// Bridges 桥接资源服务
type Bridges interface {
	// Get 获取指定桥接的代理
	Get(ctx context.Context, bridgeID string) (Bridge, error)

	// List 列出当前桥接
	List(ctx context.Context) ([]Bridge, error)

	// Create 创建桥接（ID 由客户端生成）
	Create(ctx context.Context, bridgeType string) (Bridge, error)
}

// Playbacks 播放资源服务
type Playbacks interface {
	// Get 获取指定播放的代理
	Get(ctx context.Context, playbackID string) (Playback, error)
}

// Recordings 录音资源服务
type Recordings interface {
	// Get 获取指定活跃录音的代理
	Get(ctx context.Context, name string) (Recording, error)
}

// Endpoints 端点资源服务
type Endpoints interface {
	// Get 获取指定端点的代理
	Get(ctx context.Context, tech, resource string) (Endpoint, error)

	// List 列出已知端点
	List(ctx context.Context) ([]Endpoint, error)
}

// Applications 应用资源服务
type Applications interface {
	// Subscribe 为应用订阅事件源（如 "channel:c1"）
	Subscribe(ctx context.Context, app, eventSource string) error

	// Unsubscribe 取消应用的事件源订阅
	Unsubscribe(ctx context.Context, app, eventSource string) error
}
