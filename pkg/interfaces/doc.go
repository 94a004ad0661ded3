// Package interfaces 定义 go-ari 公共接口
//
// 所有跨模块协作都通过本包的接口进行，实现位于 internal/core 下。
// 依赖方向：internal/core → pkg/interfaces → pkg/types。
//
// # 文件组织
//
//   - registry.go  - 回调契约（GlobalHandler/ObjectHandler）、Registration、ExceptionHandler
//   - transport.go - Transport 流式传输边界
//   - resources.go - Object 及各资源代理/资源服务接口
//   - resolver.go  - ObjectResolver 对象解析边界
package interfaces
