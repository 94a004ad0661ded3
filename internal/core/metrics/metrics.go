// Package metrics 提供事件分发的指标收集
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ============================================================================
//                              Dispatch 指标
// ============================================================================

// Dispatch 分发循环指标集
type Dispatch struct {
	framesReceived prometheus.Counter
	decodeErrors   prometheus.Counter
	eventsByType   *prometheus.CounterVec
	callbackErrors prometheus.Counter
	dispatchTime   prometheus.Histogram
}

// New 创建分发指标集并注册到 reg
//
// reg 为 nil 时使用 prometheus.DefaultRegisterer。
func New(reg prometheus.Registerer) *Dispatch {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	d := &Dispatch{
		framesReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ari",
			Subsystem: "dispatch",
			Name:      "frames_received_total",
			Help:      "Raw frames received from the transport.",
		}),
		decodeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ari",
			Subsystem: "dispatch",
			Name:      "decode_errors_total",
			Help:      "Frames skipped because they could not be decoded.",
		}),
		eventsByType: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ari",
			Subsystem: "dispatch",
			Name:      "events_total",
			Help:      "Events dispatched, by event type.",
		}, []string{"type"}),
		callbackErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ari",
			Subsystem: "dispatch",
			Name:      "callback_errors_total",
			Help:      "Callback errors forwarded to the exception handler.",
		}),
		dispatchTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ari",
			Subsystem: "dispatch",
			Name:      "duration_seconds",
			Help:      "Time spent dispatching a single event.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}

	reg.MustRegister(d.framesReceived, d.decodeErrors, d.eventsByType, d.callbackErrors, d.dispatchTime)
	return d
}

// FrameReceived 记录收到一条原始帧
func (d *Dispatch) FrameReceived() {
	if d == nil {
		return
	}
	d.framesReceived.Inc()
}

// DecodeError 记录一次解码失败
func (d *Dispatch) DecodeError() {
	if d == nil {
		return
	}
	d.decodeErrors.Inc()
}

// EventDispatched 记录一次事件分发
func (d *Dispatch) EventDispatched(eventType string) {
	if d == nil {
		return
	}
	d.eventsByType.WithLabelValues(eventType).Inc()
}

// CallbackError 记录一次回调错误
func (d *Dispatch) CallbackError() {
	if d == nil {
		return
	}
	d.callbackErrors.Inc()
}

// ObserveDispatch 记录单事件分发耗时
func (d *Dispatch) ObserveDispatch(elapsed time.Duration) {
	if d == nil {
		return
	}
	d.dispatchTime.Observe(elapsed.Seconds())
}
