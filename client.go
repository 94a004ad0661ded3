package ari

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/multierr"

	"github.com/dep2p/go-ari/config"
	"github.com/dep2p/go-ari/internal/core/dispatch"
	"github.com/dep2p/go-ari/internal/core/registry"
	"github.com/dep2p/go-ari/internal/core/rest"
	"github.com/dep2p/go-ari/internal/core/router"
	pkgif "github.com/dep2p/go-ari/pkg/interfaces"
	"github.com/dep2p/go-ari/pkg/lib/log"
	"github.com/dep2p/go-ari/pkg/types"
)

var logger = log.Logger("ari")

// ============================================================================
//                              Client 实现
// ============================================================================

// Client ARI 客户端
//
// 聚合 REST 访问、事件流传输、订阅注册与分发循环。
// 订阅方法并发安全；Run 应由单个 goroutine 调用。
type Client struct {
	cfg        *config.Config
	transport  pkgif.Transport
	global     *registry.Registry
	index      *router.Index
	resolver   *rest.Resolver
	dispatcher *dispatch.Dispatcher

	closeOnce sync.Once
	closeErr  error
}

// New 创建 ARI 客户端
func New(opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if err := o.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("ari: invalid config: %w", err)
	}

	c := &Client{cfg: o.cfg}
	app := buildFxApp(o, c)
	if err := app.Err(); err != nil {
		return nil, fmt.Errorf("ari: assemble client: %w", err)
	}

	if o.exc != nil {
		c.dispatcher.SetExceptionHandler(o.exc)
	}

	logger.Debug("client created", "base_url", o.cfg.Connection.BaseURL)
	return c, nil
}

// ============================================================================
//                              事件订阅
// ============================================================================

// OnEvent 注册全局事件回调
//
// 回调收到匹配类型的每条事件；绑定参数在每次调用时
// 原样跟在事件之后。同一回调可重复注册，按注册顺序触发。
func (c *Client) OnEvent(eventType string, h GlobalHandler, boundArgs ...interface{}) Registration {
	return c.global.AddGlobal(eventType, h, boundArgs)
}

// OnObjectEvent 注册种类范围的事件回调
//
// kindName 与 types.ObjectKind 的名称一致（如 "Channel"）。
// 订阅命中该种类的任意实例：回调收到每次事件载荷中解析出的
// 代理，包括从未见过的对象。种类名未知、事件类型未知、或
// 事件类型不携带该种类时返回配置错误，且不产生任何注册。
//
// 单个实例的订阅走代理的 OnEvent（如 Channels().Get 返回的通道）。
func (c *Client) OnObjectEvent(kindName, eventType string, h ObjectHandler, boundArgs ...interface{}) (Registration, error) {
	kind, ok := types.KindFromName(kindName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kindName)
	}
	return c.index.SubscribeKind(kind, eventType, h, boundArgs)
}

// OnChannelEvent 注册命中任意通道的事件回调
func (c *Client) OnChannelEvent(eventType string, h ObjectHandler, boundArgs ...interface{}) (Registration, error) {
	return c.index.SubscribeKind(types.KindChannel, eventType, h, boundArgs)
}

// OnBridgeEvent 注册命中任意桥接的事件回调
func (c *Client) OnBridgeEvent(eventType string, h ObjectHandler, boundArgs ...interface{}) (Registration, error) {
	return c.index.SubscribeKind(types.KindBridge, eventType, h, boundArgs)
}

// OnPlaybackEvent 注册命中任意播放的事件回调
func (c *Client) OnPlaybackEvent(eventType string, h ObjectHandler, boundArgs ...interface{}) (Registration, error) {
	return c.index.SubscribeKind(types.KindPlayback, eventType, h, boundArgs)
}

// OnRecordingEvent 注册命中任意录音的事件回调
func (c *Client) OnRecordingEvent(eventType string, h ObjectHandler, boundArgs ...interface{}) (Registration, error) {
	return c.index.SubscribeKind(types.KindRecording, eventType, h, boundArgs)
}

// OnEndpointEvent 注册命中任意端点的事件回调
func (c *Client) OnEndpointEvent(eventType string, h ObjectHandler, boundArgs ...interface{}) (Registration, error) {
	return c.index.SubscribeKind(types.KindEndpoint, eventType, h, boundArgs)
}

// SetExceptionHandler 设置回调错误处理器
func (c *Client) SetExceptionHandler(h ExceptionHandler) {
	c.dispatcher.SetExceptionHandler(h)
}

// ============================================================================
//                              资源服务
// ============================================================================

// Channels 返回通道资源服务
func (c *Client) Channels() pkgif.Channels {
	return c.resolver.Channels()
}

// Bridges 返回桥接资源服务
func (c *Client) Bridges() pkgif.Bridges {
	return c.resolver.Bridges()
}

// Playbacks 返回播放资源服务
func (c *Client) Playbacks() pkgif.Playbacks {
	return c.resolver.Playbacks()
}

// Recordings 返回录音资源服务
func (c *Client) Recordings() pkgif.Recordings {
	return c.resolver.Recordings()
}

// Endpoints 返回端点资源服务
func (c *Client) Endpoints() pkgif.Endpoints {
	return c.resolver.Endpoints()
}

// Applications 返回应用资源服务
func (c *Client) Applications() pkgif.Applications {
	return c.resolver.Applications()
}

// ============================================================================
//                              运行与关闭
// ============================================================================

// Run 连接事件流并运行分发循环
//
// 阻塞直到流结束、Stop/Close 被调用或 ctx 取消。
// 流正常结束返回 nil。
func (c *Client) Run(ctx context.Context, app string) error {
	if c.dispatcher.State() == dispatch.StateStopped {
		return ErrClosed
	}
	if err := c.transport.Connect(ctx, app); err != nil {
		return fmt.Errorf("ari: connect: %w", err)
	}
	return c.dispatcher.Run(ctx)
}

// Stop 请求停止分发循环
//
// 可从回调内部调用：当前事件的剩余回调照常执行。
// 不关闭传输；连接的释放走 Close。
func (c *Client) Stop() error {
	return c.dispatcher.Stop()
}

// Close 关闭客户端并释放全部订阅
//
// 幂等。关闭后先前返回的订阅句柄 Close 仍是空操作。
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = multierr.Append(
			c.dispatcher.Stop(),
			c.transport.Close(),
		)
		c.global.Clear()
		c.index.Clear()
		logger.Debug("client closed")
	})
	return c.closeErr
}
