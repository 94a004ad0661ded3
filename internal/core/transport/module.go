// Package transport 实现事件流传输
package transport

import (
	"go.uber.org/fx"

	pkgif "github.com/dep2p/go-ari/pkg/interfaces"
)

// Module 是 transport 的 Fx 模块
var Module = fx.Module("transport",
	fx.Provide(
		fx.Annotate(
			NewWebSocket,
			fx.As(new(pkgif.Transport)),
		),
	),
)
