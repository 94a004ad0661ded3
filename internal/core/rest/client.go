package rest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dep2p/go-ari/config"
	"github.com/dep2p/go-ari/pkg/lib/log"
)

var logger = log.Logger("core/rest")

// ============================================================================
//                              Client 实现
// ============================================================================

// Client REST 端点访问封装
//
// 在根地址下拼接资源路径，携带 Basic 认证与请求标识，
// 将非预期状态码映射为本包错误。并发安全。
type Client struct {
	cfg  *config.Config
	base *url.URL
	http *http.Client
}

// NewClient 创建 REST 访问客户端
func NewClient(cfg *config.Config) (*Client, error) {
	base, err := url.Parse(cfg.Connection.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	return &Client{
		cfg:  cfg,
		base: base,
		http: &http.Client{
			Timeout: time.Duration(cfg.Connection.RequestTimeout),
		},
	}, nil
}

// Get 发起 GET 请求
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query)
}

// Post 发起 POST 请求
func (c *Client) Post(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, query)
}

// Delete 发起 DELETE 请求
func (c *Client) Delete(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, path, query)
}

// do 执行请求并读取响应体
func (c *Client) do(ctx context.Context, method, path string, query url.Values) ([]byte, error) {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.SetBasicAuth(c.cfg.Connection.Username, c.cfg.Connection.Password)
	req.Header.Set("X-Request-Id", uuid.NewString())

	logger.Debug("rest request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, method, path)
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, fmt.Errorf("%w: %s %s", ErrUnauthorized, method, path)
	default:
		return nil, fmt.Errorf("%w: %s %s: status %d", ErrRequestFailed, method, path, resp.StatusCode)
	}
}
