package rest

import (
	"go.uber.org/fx"

	pkgif "github.com/dep2p/go-ari/pkg/interfaces"
)

// Module REST 层的 fx 模块
var Module = fx.Module("rest",
	fx.Provide(
		NewClient,
		NewResolver,
		func(r *Resolver) pkgif.ObjectResolver { return r },
	),
)
