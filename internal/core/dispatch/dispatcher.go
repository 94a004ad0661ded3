package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/benbjohnson/clock"

	"github.com/dep2p/go-ari/internal/core/metrics"
	"github.com/dep2p/go-ari/internal/core/registry"
	"github.com/dep2p/go-ari/internal/core/router"
	pkgif "github.com/dep2p/go-ari/pkg/interfaces"
	"github.com/dep2p/go-ari/pkg/lib/log"
	"github.com/dep2p/go-ari/pkg/types"
)

var logger = log.Logger("core/dispatch")

// ============================================================================
//                              State - 分发器状态
// ============================================================================

// State 分发器生命周期状态
type State int

const (
	// StateIdle 已创建，尚未运行
	StateIdle State = iota
	// StateRunning 分发循环运行中
	StateRunning
	// StateDraining 已请求停止，正在完成当前事件
	StateDraining
	// StateStopped 已停止，不可复用
	StateStopped
)

// String 返回状态的字符串表示
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateDraining:
		return "Draining"
	case StateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// ============================================================================
//                              Dispatcher 实现
// ============================================================================

// Dispatcher 事件分发循环
//
// 单消费者：Run 在一个 goroutine 内顺序处理事件，
// Receive 是唯一的挂起点。Stop 可从任意 goroutine
// 或回调内部调用，当前事件处理完后循环退出。
type Dispatcher struct {
	transport pkgif.Transport
	global    *registry.Registry
	index     *router.Index
	resolver  pkgif.ObjectResolver
	metrics   *metrics.Dispatch
	clock     clock.Clock

	mu    sync.Mutex
	state State
	exc   pkgif.ExceptionHandler
}

// New 创建分发器
func New(transport pkgif.Transport, global *registry.Registry, index *router.Index, resolver pkgif.ObjectResolver, m *metrics.Dispatch) *Dispatcher {
	return &Dispatcher{
		transport: transport,
		global:    global,
		index:     index,
		resolver:  resolver,
		metrics:   m,
		clock:     clock.New(),
	}
}

// SetClock 替换时钟（测试用）
func (d *Dispatcher) SetClock(c clock.Clock) {
	d.clock = c
}

// SetExceptionHandler 设置回调错误处理器
//
// 为 nil 时回调错误记入日志。
func (d *Dispatcher) SetExceptionHandler(h pkgif.ExceptionHandler) {
	d.mu.Lock()
	d.exc = h
	d.mu.Unlock()
}

// State 返回当前状态
func (d *Dispatcher) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// ============================================================================
//                              运行与停止
// ============================================================================

// Run 运行分发循环直到流结束、停止请求或 ctx 取消
//
// 流正常结束（io.EOF）与停止请求返回 nil；
// ctx 取消返回 ctx 的错误；传输故障原样包装返回。
// 分发器一次性使用：停止后再次调用返回 ErrStopped。
func (d *Dispatcher) Run(ctx context.Context) error {
	d.mu.Lock()
	switch d.state {
	case StateIdle:
		d.state = StateRunning
	case StateStopped:
		d.mu.Unlock()
		return ErrStopped
	default:
		d.mu.Unlock()
		return ErrAlreadyRunning
	}
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.state = StateStopped
		d.mu.Unlock()
		logger.Debug("dispatch loop stopped")
	}()

	logger.Debug("dispatch loop started")

	for {
		if d.State() == StateDraining {
			return nil
		}

		frame, err := d.transport.Receive(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if d.State() == StateDraining {
				// 停止请求期间的传输错误不再上报（如 Close 关闭了连接）
				return nil
			}
			return fmt.Errorf("receive: %w", err)
		}

		d.metrics.FrameReceived()

		ev, err := types.ParseEvent([]byte(frame))
		if err != nil {
			d.metrics.DecodeError()
			d.reportDecodeError(err)
			continue
		}

		d.dispatch(ev)
	}
}

// Stop 请求停止分发循环
//
// 幂等，不关闭传输（关闭归属调用方，如 Client.Close）。
// 回调内调用时当前事件的剩余回调照常执行，循环在下一帧
// 边界退出；阻塞在 Receive 中的循环由 ctx 取消或传输
// 关闭解除。
func (d *Dispatcher) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.state {
	case StateIdle:
		d.state = StateStopped
	case StateRunning:
		d.state = StateDraining
	}
	return nil
}

// ============================================================================
//                              单事件分发
// ============================================================================

// dispatch 分发单个事件
//
// 先全局订阅，再按载荷引用顺序走对象订阅；
// 全程不会因回调错误中断。
func (d *Dispatcher) dispatch(ev *types.Event) {
	start := d.clock.Now()
	exc := d.exceptionSink()

	d.global.Dispatch(ev.Type(), nil, ev, exc)

	for _, id := range ev.Refs() {
		obj := d.resolver.Resolve(id, ev)
		if obj == nil {
			continue
		}

		// 同一引用先种类订阅、后实例订阅
		d.index.DispatchKind(id.Kind, obj, ev, exc)
		if r, ok := d.index.Get(id); ok {
			r.Dispatch(obj, ev, exc)
		}
	}

	d.metrics.EventDispatched(ev.Type())
	d.metrics.ObserveDispatch(d.clock.Since(start))
}

// reportDecodeError 上报解码错误
//
// 坏帧被跳过，不中断循环；错误交给处理器或记入日志。
func (d *Dispatcher) reportDecodeError(err error) {
	d.mu.Lock()
	user := d.exc
	d.mu.Unlock()

	if user != nil {
		user(err)
		return
	}
	logger.Warn("frame skipped", "err", err)
}

// exceptionSink 返回带指标计数的错误处理器
func (d *Dispatcher) exceptionSink() pkgif.ExceptionHandler {
	d.mu.Lock()
	user := d.exc
	d.mu.Unlock()

	return func(err error) {
		d.metrics.CallbackError()
		if user != nil {
			user(err)
			return
		}
		logger.Error("callback failed", "err", err)
	}
}
