// Package registry 实现事件订阅注册表
//
// 注册表维护 事件类型 → 订阅列表 的映射，提供：
//   - 按订阅顺序的稳定分发
//   - 分发趟次开始时的快照语义（趟次内新增不可见）
//   - 回调内安全退订（已移除的订阅在同趟次内不再被调用）
//   - 单次调用粒度的错误/panic 捕获，转交进程级异常处理器
//
// 本层不校验事件类型名：未知字符串允许注册（校验属于对象
// 范围订阅，见 internal/core/router）。
//
// # 快速开始
//
//	reg := registry.New()
//
//	r := reg.AddGlobal("StasisStart", func(ev *types.Event, args ...interface{}) error {
//	    // 处理事件
//	    return nil
//	}, nil)
//	defer r.Close()
//
//	reg.Dispatch("StasisStart", nil, ev, handler)
package registry
