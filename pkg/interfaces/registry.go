// Package interfaces 定义 go-ari 公共接口
//
// 本文件定义事件订阅的回调契约与订阅句柄。
package interfaces

import (
	"github.com/dep2p/go-ari/pkg/types"
)

// GlobalHandler 全局事件回调
//
// 收到匹配事件时以 (event, 绑定参数...) 调用。
// boundArgs 为订阅时捕获的额外位置参数，按原顺序原值转发。
// 返回的错误交给进程级异常处理器，不会中断同一分发趟次中的后续回调。
type GlobalHandler func(ev *types.Event, boundArgs ...interface{}) error

// ObjectHandler 对象范围事件回调
//
// 收到匹配事件时以 (object, event, 绑定参数...) 调用，
// object 为事件载荷引用的领域对象代理。
type ObjectHandler func(obj Object, ev *types.Event, boundArgs ...interface{}) error

// ExceptionHandler 进程级异常处理器
//
// 接收回调返回的错误、回调 panic 以及事件解码错误。
// 由 Client 持有并注入 Dispatcher，默认实现记录日志后继续。
type ExceptionHandler func(err error)

// Registration 订阅句柄
//
// 订阅调用返回的唯一操作对象。
type Registration interface {
	// Close 将订阅从所属注册表移除
	//
	// 幂等：重复关闭或在注册表销毁后关闭都是空操作，永不报错。
	// 可以在该订阅自身的回调内调用，当前事件对其他订阅的投递不受影响。
	Close() error
}
