// Package ari 实现异步的 REST + WebSocket 控制接口客户端
//
// 客户端由四部分组成：REST 层负责对象代理与资源服务，
// 传输层承载事件流，订阅层维护全局与对象范围的回调注册，
// 分发循环把每条事件按序交给命中的回调。
//
// 使用示例：
//
//	client, err := ari.New(
//		ari.WithBaseURL("http://ast:8088/ari"),
//		ari.WithCredentials("asterisk", "secret"),
//	)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	client.OnEvent("StasisStart", func(ev *types.Event, _ ...interface{}) error {
//		log.Printf("channel entered: %s", ev.Get("channel.id").Str)
//		return nil
//	})
//
//	return client.Run(ctx, "my-app")
package ari
