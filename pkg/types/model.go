// Package types 定义 go-ari 公共类型
//
// 本文件定义事件模型表：事件类型与对象引用的静态兼容表。
package types

// EventObjectRef 事件载荷中的对象引用描述
//
// 描述某事件类型在哪个顶层键下内嵌哪种对象，
// 以及提取对象身份的 gjson 路径。
type EventObjectRef struct {
	// PayloadKey 载荷顶层键（如 "channel"）
	PayloadKey string

	// Kind 引用的对象种类
	Kind ObjectKind

	// IDPath 对象身份的 gjson 路径（如 "channel.id"）
	IDPath string
}

// channelRef 构造标准通道引用
func channelRef(key string) EventObjectRef {
	return EventObjectRef{PayloadKey: key, Kind: KindChannel, IDPath: key + ".id"}
}

// bridgeRef 构造标准桥接引用
func bridgeRef(key string) EventObjectRef {
	return EventObjectRef{PayloadKey: key, Kind: KindBridge, IDPath: key + ".id"}
}

// eventModel 事件模型表
//
// 键为已知事件类型名，值为该事件可携带的对象引用，
// 顺序即载荷键的出现顺序（分发顺序以此为准）。
// 不在表中的事件类型视为未知：订阅校验拒绝，
// 收到时不触发任何类型订阅，不算运行时错误。
var eventModel = map[string][]EventObjectRef{
	// Stasis 应用事件
	"StasisStart":         {channelRef("channel"), channelRef("replace_channel")},
	"StasisEnd":           {channelRef("channel")},
	"ApplicationReplaced": nil,

	// 通道事件
	"ChannelCreated":          {channelRef("channel")},
	"ChannelDestroyed":        {channelRef("channel")},
	"ChannelStateChange":      {channelRef("channel")},
	"ChannelDtmfReceived":     {channelRef("channel")},
	"ChannelDialplan":         {channelRef("channel")},
	"ChannelCallerId":         {channelRef("channel")},
	"ChannelHangupRequest":    {channelRef("channel")},
	"ChannelVarset":           {channelRef("channel")},
	"ChannelHold":             {channelRef("channel")},
	"ChannelUnhold":           {channelRef("channel")},
	"ChannelTalkingStarted":   {channelRef("channel")},
	"ChannelTalkingFinished":  {channelRef("channel")},
	"ChannelConnectedLine":    {channelRef("channel")},
	"ChannelUserevent": {channelRef("channel"), bridgeRef("bridge"), {
		PayloadKey: "endpoint", Kind: KindEndpoint, IDPath: "endpoint.resource",
	}},
	"Dial": {channelRef("caller"), channelRef("peer"), channelRef("forwarded")},

	// 桥接事件
	"BridgeCreated":            {bridgeRef("bridge")},
	"BridgeDestroyed":          {bridgeRef("bridge")},
	"BridgeMerged":             {bridgeRef("bridge"), bridgeRef("bridge_from")},
	"BridgeVideoSourceChanged": {bridgeRef("bridge")},
	"ChannelEnteredBridge":     {bridgeRef("bridge"), channelRef("channel")},
	"ChannelLeftBridge":        {bridgeRef("bridge"), channelRef("channel")},

	// 播放事件
	"PlaybackStarted":    {{PayloadKey: "playback", Kind: KindPlayback, IDPath: "playback.id"}},
	"PlaybackContinuing": {{PayloadKey: "playback", Kind: KindPlayback, IDPath: "playback.id"}},
	"PlaybackFinished":   {{PayloadKey: "playback", Kind: KindPlayback, IDPath: "playback.id"}},

	// 录音事件
	"RecordingStarted":  {{PayloadKey: "recording", Kind: KindRecording, IDPath: "recording.name"}},
	"RecordingFinished": {{PayloadKey: "recording", Kind: KindRecording, IDPath: "recording.name"}},
	"RecordingFailed":   {{PayloadKey: "recording", Kind: KindRecording, IDPath: "recording.name"}},

	// 端点事件
	"EndpointStateChange": {{PayloadKey: "endpoint", Kind: KindEndpoint, IDPath: "endpoint.resource"}},
	"PeerStatusChange":    {{PayloadKey: "endpoint", Kind: KindEndpoint, IDPath: "endpoint.resource"}},
	"TextMessageReceived": {{PayloadKey: "endpoint", Kind: KindEndpoint, IDPath: "endpoint.resource"}},

	// 其他事件（无对象引用）
	"DeviceStateChanged":    nil,
	"ApplicationMoveFailed": {channelRef("channel")},
}

// KnownEventType 检查事件类型是否在模型表中
func KnownEventType(eventType string) bool {
	_, ok := eventModel[eventType]
	return ok
}

// EventRefs 返回事件类型的对象引用描述
//
// 未知事件类型返回 nil。
func EventRefs(eventType string) []EventObjectRef {
	return eventModel[eventType]
}

// EventHasKind 检查事件类型是否可能携带指定种类的对象
func EventHasKind(eventType string, kind ObjectKind) bool {
	for _, ref := range eventModel[eventType] {
		if ref.Kind == kind {
			return true
		}
	}
	return false
}

// KnownEventTypes 返回所有已知事件类型名
func KnownEventTypes() []string {
	names := make([]string, 0, len(eventModel))
	for name := range eventModel {
		names = append(names, name)
	}
	return names
}
