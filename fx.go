package ari

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/dep2p/go-ari/internal/core/dispatch"
	"github.com/dep2p/go-ari/internal/core/metrics"
	"github.com/dep2p/go-ari/internal/core/registry"
	"github.com/dep2p/go-ari/internal/core/rest"
	"github.com/dep2p/go-ari/internal/core/router"
	"github.com/dep2p/go-ari/internal/core/transport"
	pkgif "github.com/dep2p/go-ari/pkg/interfaces"
)

// ============================================================================
//                              依赖图组装
// ============================================================================

// buildFxApp 用 fx 组装客户端的依赖图
//
// 客户端是纯库，不使用 fx 生命周期钩子；
// 构造后各组件直接从容器取出挂到 Client 上。
func buildFxApp(o *options, c *Client) *fx.App {
	fxOpts := []fx.Option{
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: zap.NewNop()}
		}),
		fx.Supply(o.cfg),
		fx.Provide(
			registry.New,
			router.NewIndex,
		),
		rest.Module,
		dispatch.Module,
		metrics.Module,
		fx.Populate(
			&c.transport,
			&c.global,
			&c.index,
			&c.resolver,
			&c.dispatcher,
		),
	}

	if o.transport != nil {
		fxOpts = append(fxOpts, fx.Supply(
			fx.Annotate(o.transport, fx.As(new(pkgif.Transport))),
		))
	} else {
		fxOpts = append(fxOpts, transport.Module)
	}

	if o.registerer != nil {
		fxOpts = append(fxOpts, fx.Supply(
			fx.Annotate(o.registerer, fx.As(new(prometheus.Registerer))),
		))
	}

	return fx.New(fxOpts...)
}
