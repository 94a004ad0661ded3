// Package router 实现对象范围的事件路由
package router

import (
	"fmt"
	"sync"

	"github.com/dep2p/go-ari/internal/core/registry"
	pkgif "github.com/dep2p/go-ari/pkg/interfaces"
	"github.com/dep2p/go-ari/pkg/lib/log"
	"github.com/dep2p/go-ari/pkg/types"
)

var logger = log.Logger("core/router")

// ============================================================================
//                              订阅校验
// ============================================================================

// ValidateSubscription 校验对象范围订阅的配置
//
// 以事件模型表为准：未知事件类型、或事件类型与对象种类
// 不兼容时返回配置错误。
func ValidateSubscription(eventType string, kind types.ObjectKind) error {
	if !types.KnownEventType(eventType) {
		return fmt.Errorf("%w: %q", ErrUnknownEventType, eventType)
	}
	if !types.EventHasKind(eventType, kind) {
		return fmt.Errorf("%w: %s never carries %s", ErrKindMismatch, eventType, kind)
	}
	return nil
}

// ============================================================================
//                              Router 实现
// ============================================================================

// Router 单个对象身份的事件路由器
//
// 持有一个仅服务于该身份的注册表。
type Router struct {
	id  types.ObjectID
	reg *registry.Registry
}

// newRouter 创建路由器
func newRouter(id types.ObjectID) *Router {
	return &Router{
		id:  id,
		reg: registry.New(),
	}
}

// ObjectID 返回路由器绑定的对象身份
func (r *Router) ObjectID() types.ObjectID {
	return r.id
}

// Dispatch 将事件连同解析出的对象代理分发给本路由器的订阅
//
// 回调收到 (object, event, 绑定参数...)。
func (r *Router) Dispatch(obj pkgif.Object, ev *types.Event, exc pkgif.ExceptionHandler) {
	r.reg.Dispatch(ev.Type(), obj, ev, exc)
}

// Empty 检查路由器是否没有活跃订阅
func (r *Router) Empty() bool {
	return r.reg.Empty()
}

// ============================================================================
//                              Index 实现
// ============================================================================

// Index 对象范围订阅的索引
//
// 两个粒度：按对象身份的路由器（实例订阅），以及按对象种类的
// 注册表（种类订阅，命中该种类的任意实例）。两者都在首次订阅时
// 创建，注册表清空后移除。索引只持有路由器与注册表，不持有对象
// 代理，因此不延长代理的生命周期。
type Index struct {
	mu      sync.Mutex
	routers map[types.ObjectID]*Router
	kinds   map[types.ObjectKind]*registry.Registry
}

// NewIndex 创建路由索引
func NewIndex() *Index {
	return &Index{
		routers: make(map[types.ObjectID]*Router),
		kinds:   make(map[types.ObjectKind]*registry.Registry),
	}
}

// Subscribe 为对象身份注册事件回调
//
// 先做同步配置校验，失败时不产生任何注册；
// 通过后惰性创建路由器并追加订阅。
func (x *Index) Subscribe(id types.ObjectID, eventType string, h pkgif.ObjectHandler, boundArgs []interface{}) (pkgif.Registration, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidObjectID, id)
	}
	if err := ValidateSubscription(eventType, id.Kind); err != nil {
		return nil, err
	}

	x.mu.Lock()
	r, ok := x.routers[id]
	if !ok {
		r = newRouter(id)
		x.routers[id] = r
		r.reg.SetOnEmpty(func() { x.drop(id, r) })
		logger.Debug("router created", "object", id.String())
	}
	x.mu.Unlock()

	return r.reg.AddObject(eventType, h, boundArgs), nil
}

// SubscribeKind 为对象种类注册事件回调
//
// 种类订阅命中该种类的任意实例：回调收到每次事件载荷中
// 解析出的代理，包括从未见过的对象。同样先做同步配置校验。
func (x *Index) SubscribeKind(kind types.ObjectKind, eventType string, h pkgif.ObjectHandler, boundArgs []interface{}) (pkgif.Registration, error) {
	if kind == types.KindUnknown {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	if err := ValidateSubscription(eventType, kind); err != nil {
		return nil, err
	}

	x.mu.Lock()
	reg, ok := x.kinds[kind]
	if !ok {
		reg = registry.New()
		x.kinds[kind] = reg
		reg.SetOnEmpty(func() { x.dropKind(kind, reg) })
		logger.Debug("kind registry created", "kind", kind.String())
	}
	x.mu.Unlock()

	return reg.AddObject(eventType, h, boundArgs), nil
}

// DispatchKind 将事件连同解析出的代理分发给种类订阅
func (x *Index) DispatchKind(kind types.ObjectKind, obj pkgif.Object, ev *types.Event, exc pkgif.ExceptionHandler) {
	x.mu.Lock()
	reg, ok := x.kinds[kind]
	x.mu.Unlock()

	if ok {
		reg.Dispatch(ev.Type(), obj, ev, exc)
	}
}

// Get 查找对象身份的路由器
func (x *Index) Get(id types.ObjectID) (*Router, bool) {
	x.mu.Lock()
	defer x.mu.Unlock()
	r, ok := x.routers[id]
	return r, ok
}

// drop 移除已清空的路由器
//
// 只在映射仍指向同一路由器且其注册表仍为空时移除，
// 防止回收与重新订阅交错时误删。
func (x *Index) drop(id types.ObjectID, r *Router) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if cur, ok := x.routers[id]; ok && cur == r && r.Empty() {
		delete(x.routers, id)
		logger.Debug("router dropped", "object", id.String())
	}
}

// dropKind 移除已清空的种类注册表
//
// 与 drop 相同的身份检查，防止回收与重新订阅交错时误删。
func (x *Index) dropKind(kind types.ObjectKind, reg *registry.Registry) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if cur, ok := x.kinds[kind]; ok && cur == reg && reg.Empty() {
		delete(x.kinds, kind)
		logger.Debug("kind registry dropped", "kind", kind.String())
	}
}

// Len 返回活跃路由器数量
func (x *Index) Len() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return len(x.routers)
}

// KindLen 返回活跃种类注册表数量
func (x *Index) KindLen() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return len(x.kinds)
}

// Clear 关闭所有路由器与种类注册表的全部订阅
func (x *Index) Clear() {
	x.mu.Lock()
	routers := make([]*Router, 0, len(x.routers))
	for _, r := range x.routers {
		routers = append(routers, r)
	}
	regs := make([]*registry.Registry, 0, len(x.kinds))
	for _, reg := range x.kinds {
		regs = append(regs, reg)
	}
	x.routers = make(map[types.ObjectID]*Router)
	x.kinds = make(map[types.ObjectKind]*registry.Registry)
	x.mu.Unlock()

	for _, r := range routers {
		r.reg.Clear()
	}
	for _, reg := range regs {
		reg.Clear()
	}
}
