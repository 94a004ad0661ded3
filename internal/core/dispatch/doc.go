// Package dispatch 实现事件分发循环
//
// Dispatcher 是事件流的消费端：从传输层逐帧接收、解码为
// 事件记录，先走全局订阅、再按载荷引用顺序走对象订阅。
// 单事件完全处理后才接收下一帧，回调间无交错。
package dispatch
