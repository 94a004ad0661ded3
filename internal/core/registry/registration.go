// Package registry 实现事件订阅注册表
package registry

import (
	"fmt"
	"sync"
	"sync/atomic"

	pkgif "github.com/dep2p/go-ari/pkg/interfaces"
	"github.com/dep2p/go-ari/pkg/types"
)

// ============================================================================
//                              Registration 实现
// ============================================================================

// Registration 订阅条目
//
// 回调契约是二选一的标签联合（全局回调 / 对象回调），
// 外加订阅时捕获的绑定参数。字段在创建后不再变化，
// 仅 closed 标志随 Close 翻转。
//
// 两个回调与参数完全相同的订阅仍是不同条目：移除按条目
// 身份进行，互不影响。
type Registration struct {
	owner     *Registry
	eventType string

	// 标签联合：global 与 object 恰好一个非 nil
	global pkgif.GlobalHandler
	object pkgif.ObjectHandler

	boundArgs []interface{}

	closeOnce sync.Once
	closed    atomic.Bool
}

// 确保 Registration 实现了 interfaces.Registration 接口
var _ pkgif.Registration = (*Registration)(nil)

// EventType 返回订阅的事件类型名
func (r *Registration) EventType() string {
	return r.eventType
}

// Close 将订阅从所属注册表移除
//
// Close 是幂等的：重复关闭、或在注册表已清空后关闭，
// 都是空操作，永不报错。可以在本订阅自身的回调内调用，
// 同一分发趟次中先于它注册的其他订阅不受影响。
func (r *Registration) Close() error {
	r.closeOnce.Do(func() {
		r.closed.Store(true)
		r.owner.remove(r)
	})
	return nil
}

// invoke 执行回调
//
// 按标签选择调用约定，绑定参数追加在事件参数之后。
// 回调 panic 被转换为错误返回，不会打断分发趟次。
func (r *Registration) invoke(obj pkgif.Object, ev *types.Event) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("registry: callback panic on %s: %v", r.eventType, rec)
		}
	}()

	if r.global != nil {
		return r.global(ev, r.boundArgs...)
	}
	return r.object(obj, ev, r.boundArgs...)
}
