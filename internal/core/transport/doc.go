// Package transport 实现事件流传输
//
// 基于 gorilla/websocket 连接 ARI 的 /events 端点，把服务端推送
// 的文本帧暴露为 Receive 序列。流的正常结束（服务端正常关闭）
// 以 io.EOF 表示。
//
// 重连与退避不在本层职责内：连接断开后由调用方决定是否重新
// Connect。
package transport
