// Package config 提供统一的配置管理
package config

import "errors"

// DispatchConfig 分发循环配置
type DispatchConfig struct {
	// ProxyCacheSize 对象代理缓存容量（按对象身份计）
	ProxyCacheSize int `json:"proxy_cache_size"`
}

// DefaultDispatchConfig 返回默认分发配置
func DefaultDispatchConfig() DispatchConfig {
	return DispatchConfig{
		ProxyCacheSize: 1024,
	}
}

// Validate 验证分发配置
func (c *DispatchConfig) Validate() error {
	if c.ProxyCacheSize <= 0 {
		return errors.New("proxy_cache_size must be positive")
	}
	return nil
}

// MetricsConfig 指标配置
type MetricsConfig struct {
	// Enabled 是否启用指标收集
	Enabled bool `json:"enabled"`
}

// DefaultMetricsConfig 返回默认指标配置
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled: true,
	}
}
