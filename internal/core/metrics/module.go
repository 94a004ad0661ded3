// Package metrics 提供事件分发的指标收集
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/dep2p/go-ari/config"
)

// Params Metrics 依赖参数
type Params struct {
	fx.In

	Cfg        *config.Config
	Registerer prometheus.Registerer `optional:"true"`
}

// Module 是 metrics 的 Fx 模块
var Module = fx.Module("metrics",
	fx.Provide(NewFromParams),
)

// NewFromParams 从参数创建分发指标集
//
// 指标未启用时返回 nil（记录方法对 nil 安全）。
func NewFromParams(p Params) *Dispatch {
	if !p.Cfg.Metrics.Enabled {
		return nil
	}
	return New(p.Registerer)
}
