package dispatch

import "errors"

// 分发循环相关错误
var (
	// ErrAlreadyRunning 分发循环已在运行
	ErrAlreadyRunning = errors.New("dispatch: loop already running")

	// ErrStopped 分发器已停止，不可再次运行
	ErrStopped = errors.New("dispatch: dispatcher is stopped")
)
