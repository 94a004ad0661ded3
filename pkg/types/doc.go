// Package types 定义 go-ari 的公共数据结构
//
// 这是整个系统的最底层包，不依赖任何其他 go-ari 内部包。
// 所有类型都是纯值类型，用于在各模块间传递数据。
//
// # 文件组织
//
// 基础类型:
//   - kinds.go  - ObjectKind 对象种类枚举, ObjectID 对象身份
//   - events.go - Event 事件记录（不可变，基于原始 JSON）
//   - model.go  - 事件模型表（事件类型 → 对象引用的静态兼容表）
//
// # 事件模型
//
// ARI 事件是带 "type" 字段的 JSON 对象，部分事件在固定的顶层键下
// 内嵌领域对象（如 "channel": {"id": ...}）。model.go 中的静态表
// 是事件类型与对象种类兼容性的唯一真源：订阅时校验、分发时提取
// 对象引用都以它为准。
package types
