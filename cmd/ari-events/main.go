// ari-events 连接 ARI 事件流并逐条打印事件
//
// 用法：
//
//	ari-events -url http://localhost:8088/ari -user asterisk -pass secret -app demo
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	ari "github.com/dep2p/go-ari"
	"github.com/dep2p/go-ari/pkg/lib/log"
	"github.com/dep2p/go-ari/pkg/types"
)

var logger = log.Logger("cmd/ari-events")

func main() {
	var (
		baseURL      = flag.String("url", "http://localhost:8088/ari", "ARI 根地址")
		username     = flag.String("user", "", "用户名")
		password     = flag.String("pass", "", "密码")
		app          = flag.String("app", "ari-events", "应用名")
		subscribeAll = flag.Bool("subscribe-all", false, "订阅全部事件")
		verbose      = flag.Bool("v", false, "输出调试日志")
	)
	flag.Parse()

	if *verbose {
		log.SetLevel(log.LevelDebug)
	}

	if err := run(*baseURL, *username, *password, *app, *subscribeAll); err != nil {
		logger.Error("exit", "err", err)
		os.Exit(1)
	}
}

func run(baseURL, username, password, app string, subscribeAll bool) error {
	opts := []ari.Option{
		ari.WithBaseURL(baseURL),
		ari.WithCredentials(username, password),
	}
	if subscribeAll {
		opts = append(opts, ari.WithSubscribeAll())
	}

	client, err := ari.New(opts...)
	if err != nil {
		return err
	}
	defer client.Close()

	// 逐类型订阅，覆盖事件模型表中的全部事件
	for _, eventType := range types.KnownEventTypes() {
		client.OnEvent(eventType, printEvent)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return client.Run(ctx, app)
	})
	g.Go(func() error {
		<-ctx.Done()
		return client.Stop()
	})

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// printEvent 打印单条事件
func printEvent(ev *types.Event, _ ...interface{}) error {
	fmt.Printf("%s %s\n", ev.Type(), ev.Raw())
	return nil
}
