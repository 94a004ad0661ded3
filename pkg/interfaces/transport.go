// Package interfaces 定义 go-ari 公共接口
//
// 本文件定义 Transport 接口，抽象事件流的底层传输。
package interfaces

import "context"

// Transport 定义流式传输边界
//
// Transport 提供来自 ARI 服务端的原始文本帧序列。
// 正常的流结束以 io.EOF 表示，不是错误。
type Transport interface {
	// Connect 建立事件流（"开始监听"握手）
	//
	// app 为要监听的 Stasis 应用名。
	Connect(ctx context.Context, app string) error

	// Receive 返回下一条原始文本帧
	//
	// 阻塞直到有帧可用；流正常结束返回 io.EOF；
	// ctx 取消时返回 ctx.Err()。
	Receive(ctx context.Context) (string, error)

	// Close 关闭传输
	Close() error
}
