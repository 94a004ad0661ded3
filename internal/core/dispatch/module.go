package dispatch

import (
	"go.uber.org/fx"
)

// Module 分发循环的 fx 模块
var Module = fx.Module("dispatch",
	fx.Provide(New),
)
