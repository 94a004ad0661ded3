// Package registry 实现事件订阅注册表
package registry

import (
	"fmt"
	"sync"

	pkgif "github.com/dep2p/go-ari/pkg/interfaces"
	"github.com/dep2p/go-ari/pkg/lib/log"
	"github.com/dep2p/go-ari/pkg/types"
)

var logger = log.Logger("core/registry")

// ============================================================================
//                              Registry 实现
// ============================================================================

// Registry 事件订阅注册表
//
// 维护 事件类型 → 订阅列表 的映射，列表按订阅顺序排列，
// 重复订阅作为不同条目共存。一个订阅同一时间至多属于
// 一个注册表。
type Registry struct {
	mu    sync.Mutex
	lists map[string][]*Registration

	// onEmpty 注册表变空时的通知回调（对象路由索引用于回收路由）
	onEmpty func()
}

// New 创建注册表
func New() *Registry {
	return &Registry{
		lists: make(map[string][]*Registration),
	}
}

// SetOnEmpty 设置注册表变空时的通知回调
func (g *Registry) SetOnEmpty(fn func()) {
	g.mu.Lock()
	g.onEmpty = fn
	g.mu.Unlock()
}

// ============================================================================
//                              订阅管理
// ============================================================================

// AddGlobal 注册全局回调
//
// 追加到 eventType 的订阅列表末尾（列表按需创建）。
// 本层不校验事件类型名。
func (g *Registry) AddGlobal(eventType string, h pkgif.GlobalHandler, boundArgs []interface{}) *Registration {
	reg := &Registration{
		owner:     g,
		eventType: eventType,
		global:    h,
		boundArgs: boundArgs,
	}
	g.add(reg)
	return reg
}

// AddObject 注册对象回调
func (g *Registry) AddObject(eventType string, h pkgif.ObjectHandler, boundArgs []interface{}) *Registration {
	reg := &Registration{
		owner:     g,
		eventType: eventType,
		object:    h,
		boundArgs: boundArgs,
	}
	g.add(reg)
	return reg
}

// add 追加订阅条目
func (g *Registry) add(reg *Registration) {
	g.mu.Lock()
	g.lists[reg.eventType] = append(g.lists[reg.eventType], reg)
	g.mu.Unlock()
}

// remove 按条目身份移除订阅
//
// 在其他位置遍历同一列表时调用是安全的：分发使用快照，
// 移除只改动活跃映射。
func (g *Registry) remove(reg *Registration) {
	g.mu.Lock()

	list, ok := g.lists[reg.eventType]
	if ok {
		for i, r := range list {
			if r == reg {
				g.lists[reg.eventType] = append(list[:i], list[i+1:]...)
				break
			}
		}
		if len(g.lists[reg.eventType]) == 0 {
			delete(g.lists, reg.eventType)
		}
	}

	empty := len(g.lists) == 0
	onEmpty := g.onEmpty
	g.mu.Unlock()

	if empty && onEmpty != nil {
		onEmpty()
	}
}

// Len 返回活跃订阅总数
func (g *Registry) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := 0
	for _, list := range g.lists {
		n += len(list)
	}
	return n
}

// Empty 检查注册表是否为空
func (g *Registry) Empty() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.lists) == 0
}

// Clear 关闭所有订阅
//
// 用于 Client 销毁：清空后，先前返回的句柄再调用 Close
// 仍是空操作。
func (g *Registry) Clear() {
	g.mu.Lock()
	var all []*Registration
	for _, list := range g.lists {
		all = append(all, list...)
	}
	g.lists = make(map[string][]*Registration)
	g.mu.Unlock()

	for _, reg := range all {
		reg.closed.Store(true)
		reg.closeOnce.Do(func() {})
	}
}

// ============================================================================
//                              分发
// ============================================================================

// Dispatch 向 eventType 的所有订阅分发事件
//
// 在趟次开始时对订阅列表取快照：趟次内由回调触发的新增
// 对本趟不可见；趟次内被移除、且尚未轮到的订阅会被跳过。
// 每次调用的错误（含 panic）交给 exc，绝不中断剩余回调。
//
// obj 为对象回调的前置参数；全局注册表分发时传 nil。
func (g *Registry) Dispatch(eventType string, obj pkgif.Object, ev *types.Event, exc pkgif.ExceptionHandler) {
	g.mu.Lock()
	list := g.lists[eventType]
	snapshot := make([]*Registration, len(list))
	copy(snapshot, list)
	g.mu.Unlock()

	for _, reg := range snapshot {
		if reg.closed.Load() {
			continue
		}
		if err := reg.invoke(obj, ev); err != nil {
			g.reportError(eventType, err, exc)
		}
	}
}

// reportError 上报回调错误
func (g *Registry) reportError(eventType string, err error, exc pkgif.ExceptionHandler) {
	if exc != nil {
		exc(fmt.Errorf("callback for %s: %w", eventType, err))
		return
	}
	logger.Error("callback failed", "event_type", eventType, "err", err)
}
