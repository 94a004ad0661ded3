// Package types 定义 go-ari 公共类型
//
// 本文件定义对象种类与对象身份。
package types

// ============================================================================
//                              ObjectKind - 对象种类
// ============================================================================

// ObjectKind 领域对象种类
//
// 描述事件载荷中可能引用的服务端资源类别。
type ObjectKind int

const (
	// KindUnknown 未知种类
	KindUnknown ObjectKind = iota
	// KindChannel 通道
	KindChannel
	// KindBridge 桥接
	KindBridge
	// KindPlayback 播放
	KindPlayback
	// KindRecording 录音
	KindRecording
	// KindEndpoint 端点
	KindEndpoint
)

// String 返回对象种类的字符串表示
func (k ObjectKind) String() string {
	switch k {
	case KindChannel:
		return "Channel"
	case KindBridge:
		return "Bridge"
	case KindPlayback:
		return "Playback"
	case KindRecording:
		return "Recording"
	case KindEndpoint:
		return "Endpoint"
	default:
		return "Unknown"
	}
}

// KindFromName 根据名称解析对象种类
//
// 名称与 String() 的输出一致（如 "Channel"）。
// 未知名称返回 (KindUnknown, false)。
func KindFromName(name string) (ObjectKind, bool) {
	switch name {
	case "Channel":
		return KindChannel, true
	case "Bridge":
		return KindBridge, true
	case "Playback":
		return KindPlayback, true
	case "Recording":
		return KindRecording, true
	case "Endpoint":
		return KindEndpoint, true
	default:
		return KindUnknown, false
	}
}

// ============================================================================
//                              ObjectID - 对象身份
// ============================================================================

// ObjectID 对象身份
//
// 由对象种类与稳定键组成，可作为 map 键使用。
// 同种类不同键的对象身份互不相等。
type ObjectID struct {
	// Kind 对象种类
	Kind ObjectKind

	// Key 对象稳定键（如通道 ID、端点 "tech/resource"）
	Key string
}

// String 返回 "Kind/Key" 形式的字符串表示
func (id ObjectID) String() string {
	return id.Kind.String() + "/" + id.Key
}

// Valid 检查对象身份是否有效
func (id ObjectID) Valid() bool {
	return id.Kind != KindUnknown && id.Key != ""
}
