// Package interfaces 定义 go-ari 公共接口
//
// 本文件定义 ObjectResolver 接口，抽象 REST 层的对象解析。
package interfaces

import "github.com/dep2p/go-ari/pkg/types"

// ObjectResolver 对象解析边界
//
// Dispatcher 对事件载荷引用的每个对象身份调用 Resolve，
// 得到用于回调的代理实例。实现不得因此延长对象生命周期：
// 没有活跃实例时，用事件载荷物化一个仅携带身份的轻量代理。
type ObjectResolver interface {
	// Resolve 将对象身份解析为代理实例
	Resolve(id types.ObjectID, ev *types.Event) Object
}
