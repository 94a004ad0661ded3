// Package rest 实现 REST 端点访问与对象代理
//
// 本包包含三部分：
//   - Client: 带凭证与超时的 HTTP 访问封装
//   - 代理与服务: 领域对象的动作方法与资源服务
//   - Resolver: 分发循环使用的对象解析器，缓存轻量代理
//
// 代理不持有服务端状态，只携带对象身份；动作方法
// 在调用方的上下文内同步发起 REST 请求。
package rest
