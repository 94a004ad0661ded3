// Package config 提供统一的配置管理
package config

import (
	"errors"
	"net/url"
	"time"
)

// ConnectionConfig REST 连接配置
//
// ARI 的 REST 端点与事件流共用同一组地址和凭证：
// REST 调用走 http(s)，事件流由传输层换算为 ws(s)。
type ConnectionConfig struct {
	// BaseURL ARI 根地址（如 "http://localhost:8088/ari"）
	BaseURL string `json:"base_url"`

	// Username REST 与事件流的用户名
	Username string `json:"username"`

	// Password REST 与事件流的密码
	Password string `json:"password"`

	// RequestTimeout 单个 REST 请求超时
	RequestTimeout Duration `json:"request_timeout"`
}

// DefaultConnectionConfig 返回默认连接配置
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		BaseURL:        "http://localhost:8088/ari",
		RequestTimeout: Duration(10 * time.Second),
	}
}

// Validate 验证连接配置
func (c *ConnectionConfig) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base_url is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return errors.New("base_url is not a valid url")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("base_url scheme must be http or https")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request_timeout must be positive")
	}
	return nil
}
