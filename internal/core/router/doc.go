// Package router 实现对象范围的事件路由
//
// 路由器把订阅限定到一个具体对象身份（种类 + 键）：事件只投递给
// 载荷确实引用了该实例的订阅。每个活跃身份对应一个路由器，在
// 首次对象范围订阅时惰性创建，注册表清空后从索引回收 —— 索引
// 不延长对象本身的生命周期。
//
// 订阅在调用时同步校验事件模型表：事件类型未知、或该类型从不
// 携带指定种类的对象，立即返回配置错误，绝不推迟到分发时。
package router
