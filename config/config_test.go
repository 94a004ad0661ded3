package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfig 测试创建默认配置
func TestNewConfig(t *testing.T) {
	cfg := NewConfig()
	require.NotNil(t, cfg)

	// 验证默认配置有效
	err := cfg.Validate()
	assert.NoError(t, err)

	t.Log("✅ NewConfig 测试通过")
}

// TestConnectionConfig 测试连接配置
func TestConnectionConfig(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		cfg := DefaultConnectionConfig()
		assert.Equal(t, "http://localhost:8088/ari", cfg.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout.Duration())
	})

	t.Run("Validate_Valid", func(t *testing.T) {
		cfg := DefaultConnectionConfig()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Validate_EmptyBaseURL", func(t *testing.T) {
		cfg := DefaultConnectionConfig()
		cfg.BaseURL = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("Validate_BadScheme", func(t *testing.T) {
		cfg := DefaultConnectionConfig()
		cfg.BaseURL = "ftp://localhost/ari"
		assert.Error(t, cfg.Validate())
	})

	t.Run("Validate_ZeroTimeout", func(t *testing.T) {
		cfg := DefaultConnectionConfig()
		cfg.RequestTimeout = 0
		assert.Error(t, cfg.Validate())
	})

	t.Log("✅ ConnectionConfig 测试通过")
}

// TestWebSocketConfig 测试事件流配置
func TestWebSocketConfig(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		cfg := DefaultWebSocketConfig()
		assert.Equal(t, 15*time.Second, cfg.HandshakeTimeout.Duration())
		assert.Equal(t, int64(1<<20), cfg.ReadLimit)
		assert.False(t, cfg.SubscribeAll)
	})

	t.Run("Validate_NegativeReadLimit", func(t *testing.T) {
		cfg := DefaultWebSocketConfig()
		cfg.ReadLimit = -1
		assert.Error(t, cfg.Validate())
	})

	t.Log("✅ WebSocketConfig 测试通过")
}

// TestDispatchConfig 测试分发配置
func TestDispatchConfig(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		cfg := DefaultDispatchConfig()
		assert.Equal(t, 1024, cfg.ProxyCacheSize)
	})

	t.Run("Validate_ZeroCache", func(t *testing.T) {
		cfg := DefaultDispatchConfig()
		cfg.ProxyCacheSize = 0
		assert.Error(t, cfg.Validate())
	})

	t.Log("✅ DispatchConfig 测试通过")
}

// TestFromJSON 测试从 JSON 加载配置
func TestFromJSON(t *testing.T) {
	data := []byte(`{
		"connection": {
			"base_url": "https://ast.example.com:8089/ari",
			"username": "asterisk",
			"password": "secret",
			"request_timeout": "5s"
		},
		"websocket": {
			"subscribe_all": true
		},
		"metrics": {
			"enabled": false
		}
	}`)

	cfg, err := FromJSON(data)
	require.NoError(t, err)

	assert.Equal(t, "https://ast.example.com:8089/ari", cfg.Connection.BaseURL)
	assert.Equal(t, "asterisk", cfg.Connection.Username)
	assert.Equal(t, 5*time.Second, cfg.Connection.RequestTimeout.Duration())
	assert.True(t, cfg.WebSocket.SubscribeAll)
	assert.False(t, cfg.Metrics.Enabled)

	// 未出现的字段保留默认值
	assert.Equal(t, 1024, cfg.Dispatch.ProxyCacheSize)
	assert.Equal(t, 15*time.Second, cfg.WebSocket.HandshakeTimeout.Duration())
}

// TestFromJSON_Invalid 测试非法 JSON
func TestFromJSON_Invalid(t *testing.T) {
	_, err := FromJSON([]byte(`{not json`))
	assert.Error(t, err)
}

// TestConfig_JSONRoundTrip 测试配置序列化往返
func TestConfig_JSONRoundTrip(t *testing.T) {
	cfg := NewConfig()
	cfg.Connection.Username = "asterisk"
	cfg.WebSocket.SubscribeAll = true

	data, err := cfg.ToJSON()
	require.NoError(t, err)

	loaded, err := FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

// TestDuration 测试 Duration JSON 解析
func TestDuration(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		var d Duration
		require.NoError(t, d.UnmarshalJSON([]byte(`"1h30m"`)))
		assert.Equal(t, 90*time.Minute, d.Duration())
	})

	t.Run("Nanoseconds", func(t *testing.T) {
		var d Duration
		require.NoError(t, d.UnmarshalJSON([]byte(`30000000000`)))
		assert.Equal(t, 30*time.Second, d.Duration())
	})

	t.Run("Invalid", func(t *testing.T) {
		var d Duration
		assert.Error(t, d.UnmarshalJSON([]byte(`"not a duration"`)))
		assert.Error(t, d.UnmarshalJSON([]byte(`true`)))
	})

	t.Run("Marshal", func(t *testing.T) {
		d := Duration(45 * time.Second)
		data, err := d.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, `"45s"`, string(data))
	})
}
