package rest

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dep2p/go-ari/config"
	"github.com/dep2p/go-ari/internal/core/router"
	pkgif "github.com/dep2p/go-ari/pkg/interfaces"
	"github.com/dep2p/go-ari/pkg/types"
)

// ============================================================================
//                              Resolver 实现
// ============================================================================

// Resolver 对象解析器
//
// 将对象身份解析为代理实例。代理是无状态轻量对象，
// 通过 LRU 缓存复用，淘汰只丢弃代理本身，不影响该
// 对象的订阅（订阅归路由索引持有）。
type Resolver struct {
	rest  *Client
	index *router.Index
	cache *lru.Cache[types.ObjectID, pkgif.Object]
}

var _ pkgif.ObjectResolver = (*Resolver)(nil)

// NewResolver 创建对象解析器
func NewResolver(cfg *config.Config, rest *Client, index *router.Index) (*Resolver, error) {
	cache, err := lru.New[types.ObjectID, pkgif.Object](cfg.Dispatch.ProxyCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create proxy cache: %w", err)
	}

	return &Resolver{
		rest:  rest,
		index: index,
		cache: cache,
	}, nil
}

// Resolve 将对象身份解析为代理实例
//
// 未知种类返回 nil，调用方应跳过该引用。
func (r *Resolver) Resolve(id types.ObjectID, ev *types.Event) pkgif.Object {
	if obj, ok := r.cache.Get(id); ok {
		return obj
	}

	obj := r.materialize(id)
	if obj == nil {
		return nil
	}
	r.cache.Add(id, obj)
	return obj
}

// materialize 按种类物化代理
func (r *Resolver) materialize(id types.ObjectID) pkgif.Object {
	base := object{id: id, rest: r.rest, index: r.index}

	switch id.Kind {
	case types.KindChannel:
		return &channelProxy{base}
	case types.KindBridge:
		return &bridgeProxy{base}
	case types.KindPlayback:
		return &playbackProxy{base}
	case types.KindRecording:
		return &recordingProxy{base}
	case types.KindEndpoint:
		return &endpointProxy{base}
	default:
		return nil
	}
}

// ============================================================================
//                              类型化访问
// ============================================================================

// Channel 返回通道代理
func (r *Resolver) Channel(channelID string) pkgif.Channel {
	return r.Resolve(types.ObjectID{Kind: types.KindChannel, Key: channelID}, nil).(pkgif.Channel)
}

// Bridge 返回桥接代理
func (r *Resolver) Bridge(bridgeID string) pkgif.Bridge {
	return r.Resolve(types.ObjectID{Kind: types.KindBridge, Key: bridgeID}, nil).(pkgif.Bridge)
}

// Playback 返回播放代理
func (r *Resolver) Playback(playbackID string) pkgif.Playback {
	return r.Resolve(types.ObjectID{Kind: types.KindPlayback, Key: playbackID}, nil).(pkgif.Playback)
}

// Recording 返回录音代理
func (r *Resolver) Recording(name string) pkgif.Recording {
	return r.Resolve(types.ObjectID{Kind: types.KindRecording, Key: name}, nil).(pkgif.Recording)
}

// Endpoint 返回端点代理
func (r *Resolver) Endpoint(key string) pkgif.Endpoint {
	return r.Resolve(types.ObjectID{Kind: types.KindEndpoint, Key: key}, nil).(pkgif.Endpoint)
}

// ============================================================================
//                              资源服务构造
// ============================================================================

// Channels 返回通道资源服务
func (r *Resolver) Channels() pkgif.Channels {
	return &channelsService{resolver: r}
}

// Bridges 返回桥接资源服务
func (r *Resolver) Bridges() pkgif.Bridges {
	return &bridgesService{resolver: r}
}

// Playbacks 返回播放资源服务
func (r *Resolver) Playbacks() pkgif.Playbacks {
	return &playbacksService{resolver: r}
}

// Recordings 返回录音资源服务
func (r *Resolver) Recordings() pkgif.Recordings {
	return &recordingsService{resolver: r}
}

// Endpoints 返回端点资源服务
func (r *Resolver) Endpoints() pkgif.Endpoints {
	return &endpointsService{resolver: r}
}

// Applications 返回应用资源服务
func (r *Resolver) Applications() pkgif.Applications {
	return &applicationsService{resolver: r}
}
