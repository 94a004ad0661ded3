// Package metrics 提供事件分发的指标收集
//
// 基于 prometheus/client_golang 实现，覆盖分发循环的关键计数：
// 收到的帧、解码失败、分发的事件、回调错误，以及单事件分发耗时。
//
// 所有记录方法对 nil 接收者安全：指标关闭时注入 nil 即可，
// 调用方无需条件判断。
package metrics
