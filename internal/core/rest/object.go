package rest

import (
	"github.com/dep2p/go-ari/internal/core/router"
	pkgif "github.com/dep2p/go-ari/pkg/interfaces"
	"github.com/dep2p/go-ari/pkg/types"
)

// ============================================================================
//                              代理公共部分
// ============================================================================

// object 代理公共字段
//
// 只携带对象身份与协作方引用，不缓存服务端状态。
type object struct {
	id    types.ObjectID
	rest  *Client
	index *router.Index
}

// ObjectID 返回对象身份
func (o *object) ObjectID() types.ObjectID {
	return o.id
}

// Key 返回对象稳定键
func (o *object) Key() string {
	return o.id.Key
}

// OnEvent 订阅仅引用本对象的事件
func (o *object) OnEvent(eventType string, h pkgif.ObjectHandler, boundArgs ...interface{}) (pkgif.Registration, error) {
	return o.index.Subscribe(o.id, eventType, h, boundArgs)
}
