package rest

import "errors"

// REST 访问相关错误
var (
	// ErrNotFound 服务端不存在该资源
	ErrNotFound = errors.New("rest: resource not found")

	// ErrUnauthorized 凭证被服务端拒绝
	ErrUnauthorized = errors.New("rest: authentication failed")

	// ErrRequestFailed 请求返回非预期状态码
	ErrRequestFailed = errors.New("rest: request failed")
)
