package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dep2p/go-ari/config"
)

// newTestClient 指向测试服务器的客户端
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.NewConfig()
	cfg.Connection.BaseURL = srv.URL + "/ari"
	cfg.Connection.Username = "user"
	cfg.Connection.Password = "pass"

	client, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("NewClient() failed: %v", err)
	}
	return client, srv
}

// TestClient_RequestHeaders 测试请求携带凭证与请求标识
func TestClient_RequestHeaders(t *testing.T) {
	var gotUser, gotPass string
	var gotOK bool
	var gotRequestID string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, gotOK = r.BasicAuth()
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`{}`))
	})

	if _, err := client.Get(context.Background(), "/channels", nil); err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if !gotOK || gotUser != "user" || gotPass != "pass" {
		t.Errorf("basic auth = (%q, %q, %v), want (user, pass, true)", gotUser, gotPass, gotOK)
	}
	if gotRequestID == "" {
		t.Error("request has no X-Request-Id header")
	}
}

// TestClient_PathUnderBase 测试资源路径拼接在根地址之下
func TestClient_PathUnderBase(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	})

	if _, err := client.Get(context.Background(), "/channels/c1", nil); err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if gotPath != "/ari/channels/c1" {
		t.Errorf("path = %q, want %q", gotPath, "/ari/channels/c1")
	}
}

// TestClient_StatusErrors 测试状态码到错误的映射
func TestClient_StatusErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"未找到", http.StatusNotFound, ErrNotFound},
		{"未授权", http.StatusUnauthorized, ErrUnauthorized},
		{"服务端错误", http.StatusInternalServerError, ErrRequestFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := client.Get(context.Background(), "/channels/missing", nil)
			if !errors.Is(err, tt.want) {
				t.Errorf("Get() = %v, want %v", err, tt.want)
			}
		})
	}
}

// TestClient_QueryEncoding 测试查询参数编码
func TestClient_QueryEncoding(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("media")
		w.Write([]byte(`{}`))
	})

	query := map[string][]string{"media": {"sound:hello world"}}
	if _, err := client.Post(context.Background(), "/play", query); err != nil {
		t.Fatalf("Post() failed: %v", err)
	}
	if gotQuery != "sound:hello world" {
		t.Errorf("media = %q, want %q", gotQuery, "sound:hello world")
	}
}
