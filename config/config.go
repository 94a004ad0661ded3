// Package config 提供统一的配置管理
//
// 本包采用混合配置模式：
//   - 主 Config 结构体嵌入所有子配置
//   - 每个子配置在独立文件中定义
//   - 支持从 JSON 加载和保存配置
//
// 使用示例：
//
//	// 创建默认配置
//	cfg := config.NewConfig()
//	cfg.Connection.BaseURL = "http://ast:8088/ari"
//	cfg.Connection.Username = "asterisk"
//
//	// 从 JSON 加载
//	cfg, err := config.FromJSON(data)
package config

import (
	"encoding/json"
	"fmt"
)

// Config 是 go-ari 的完整配置结构
//
// 该结构体嵌入了所有组件的子配置，提供统一的配置接口：
//   - Connection: REST 连接（地址、凭证、超时）
//   - WebSocket: 事件流传输
//   - Dispatch: 分发循环
//   - Metrics: 指标收集
type Config struct {
	// Connection REST 连接配置
	Connection ConnectionConfig `json:"connection"`

	// WebSocket 事件流配置
	WebSocket WebSocketConfig `json:"websocket"`

	// Dispatch 分发循环配置
	Dispatch DispatchConfig `json:"dispatch"`

	// Metrics 指标配置
	Metrics MetricsConfig `json:"metrics"`
}

// NewConfig 创建带默认值的配置
func NewConfig() *Config {
	return &Config{
		Connection: DefaultConnectionConfig(),
		WebSocket:  DefaultWebSocketConfig(),
		Dispatch:   DefaultDispatchConfig(),
		Metrics:    DefaultMetricsConfig(),
	}
}

// Validate 递归验证所有子配置
func (c *Config) Validate() error {
	if err := c.Connection.Validate(); err != nil {
		return fmt.Errorf("connection: %w", err)
	}
	if err := c.WebSocket.Validate(); err != nil {
		return fmt.Errorf("websocket: %w", err)
	}
	if err := c.Dispatch.Validate(); err != nil {
		return fmt.Errorf("dispatch: %w", err)
	}
	return nil
}

// FromJSON 从 JSON 数据加载配置
//
// 未出现的字段保留默认值。
func FromJSON(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ToJSON 序列化配置为 JSON
func (c *Config) ToJSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}
