package ari

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dep2p/go-ari/config"
	pkgif "github.com/dep2p/go-ari/pkg/interfaces"
)

// ============================================================================
//                              Option - 客户端选项
// ============================================================================

// options 客户端构造参数
type options struct {
	cfg        *config.Config
	transport  pkgif.Transport
	registerer prometheus.Registerer
	exc        pkgif.ExceptionHandler
}

// Option 客户端选项
type Option func(*options)

// defaultOptions 返回默认构造参数
func defaultOptions() *options {
	return &options{
		cfg: config.NewConfig(),
	}
}

// WithConfig 使用完整配置
//
// 与其他配置类选项叠加时，后应用的生效。
func WithConfig(cfg *config.Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithBaseURL 设置 ARI 根地址
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.cfg.Connection.BaseURL = baseURL
	}
}

// WithCredentials 设置访问凭证
func WithCredentials(username, password string) Option {
	return func(o *options) {
		o.cfg.Connection.Username = username
		o.cfg.Connection.Password = password
	}
}

// WithRequestTimeout 设置单个 REST 请求超时
func WithRequestTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.cfg.Connection.RequestTimeout = config.Duration(timeout)
	}
}

// WithSubscribeAll 订阅全部事件而非仅应用相关事件
func WithSubscribeAll() Option {
	return func(o *options) {
		o.cfg.WebSocket.SubscribeAll = true
	}
}

// WithTransport 使用自定义事件流传输（测试常用）
func WithTransport(t pkgif.Transport) Option {
	return func(o *options) {
		o.transport = t
	}
}

// WithPrometheusRegisterer 设置指标注册表
func WithPrometheusRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// WithoutMetrics 关闭指标收集
func WithoutMetrics() Option {
	return func(o *options) {
		o.cfg.Metrics.Enabled = false
	}
}

// WithExceptionHandler 设置回调错误处理器
func WithExceptionHandler(h pkgif.ExceptionHandler) Option {
	return func(o *options) {
		o.exc = h
	}
}
