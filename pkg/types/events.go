// Package types 定义 go-ari 公共类型
//
// 本文件定义事件记录类型。
package types

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// 事件解析相关错误
var (
	// ErrMalformedEvent 事件帧不是合法 JSON 对象
	ErrMalformedEvent = errors.New("types: malformed event frame")

	// ErrMissingEventType 事件缺少 "type" 字段
	ErrMissingEventType = errors.New("types: event has no type field")
)

// ============================================================================
//                              Event - 事件记录
// ============================================================================

// Event 事件记录
//
// 一条来自流式传输层的已解码消息，描述服务端状态变化。
// 解码后不可变：保留原始 JSON，字段按需通过 gjson 路径读取，
// 分发完成后即可丢弃。
type Event struct {
	raw []byte
	typ string
}

// ParseEvent 解析原始文本帧为事件记录
//
// 帧必须是 JSON 对象且携带字符串 "type" 字段，
// 否则返回解码错误（帧会被调用方跳过）。
func ParseEvent(frame []byte) (*Event, error) {
	if !gjson.ValidBytes(frame) {
		return nil, fmt.Errorf("%w: invalid json", ErrMalformedEvent)
	}

	root := gjson.ParseBytes(frame)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: not a json object", ErrMalformedEvent)
	}

	typ := root.Get("type")
	if typ.Type != gjson.String || typ.Str == "" {
		return nil, ErrMissingEventType
	}

	// 复制帧内容，保证事件记录不随调用方缓冲区变化
	raw := make([]byte, len(frame))
	copy(raw, frame)

	return &Event{raw: raw, typ: typ.Str}, nil
}

// Type 返回事件类型名
func (e *Event) Type() string {
	return e.typ
}

// Raw 返回事件的原始 JSON
func (e *Event) Raw() []byte {
	return e.raw
}

// Get 按 gjson 路径读取事件字段
//
// 路径语法见 github.com/tidwall/gjson，如 "channel.id"。
func (e *Event) Get(path string) gjson.Result {
	return gjson.GetBytes(e.raw, path)
}

// Has 检查事件是否携带指定路径的字段
func (e *Event) Has(path string) bool {
	return e.Get(path).Exists()
}

// Refs 返回事件载荷引用的对象身份
//
// 按事件模型表中该事件类型的载荷键顺序提取；
// 载荷中缺失的引用被跳过。未知事件类型无引用。
func (e *Event) Refs() []ObjectID {
	refs := EventRefs(e.typ)
	if len(refs) == 0 {
		return nil
	}

	ids := make([]ObjectID, 0, len(refs))
	for _, ref := range refs {
		key := e.Get(ref.IDPath)
		if !key.Exists() || key.Str == "" {
			continue
		}

		// 端点稳定键为 "tech/resource"，与 REST 层一致
		if ref.Kind == KindEndpoint {
			tech := e.Get(ref.PayloadKey + ".technology")
			if !tech.Exists() || tech.Str == "" {
				continue
			}
			ids = append(ids, ObjectID{Kind: KindEndpoint, Key: tech.Str + "/" + key.Str})
			continue
		}

		ids = append(ids, ObjectID{Kind: ref.Kind, Key: key.Str})
	}
	return ids
}

// String 返回事件的简短描述
func (e *Event) String() string {
	return "Event(" + e.typ + ")"
}
