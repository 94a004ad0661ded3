package router

import (
	"errors"
	"testing"

	pkgif "github.com/dep2p/go-ari/pkg/interfaces"
	"github.com/dep2p/go-ari/pkg/types"
)

func mustEvent(t *testing.T, frame string) *types.Event {
	t.Helper()
	ev, err := types.ParseEvent([]byte(frame))
	if err != nil {
		t.Fatalf("ParseEvent(%q) failed: %v", frame, err)
	}
	return ev
}

// stubObject 测试用对象代理
type stubObject struct {
	id types.ObjectID
}

func (s *stubObject) ObjectID() types.ObjectID { return s.id }
func (s *stubObject) Key() string              { return s.id.Key }
func (s *stubObject) OnEvent(eventType string, h pkgif.ObjectHandler, boundArgs ...interface{}) (pkgif.Registration, error) {
	return nil, nil
}

func channelID(key string) types.ObjectID {
	return types.ObjectID{Kind: types.KindChannel, Key: key}
}

// TestValidateSubscription 测试订阅配置校验
func TestValidateSubscription(t *testing.T) {
	if err := ValidateSubscription("StasisStart", types.KindChannel); err != nil {
		t.Errorf("valid subscription rejected: %v", err)
	}

	err := ValidateSubscription("BadEventType", types.KindChannel)
	if !errors.Is(err, ErrUnknownEventType) {
		t.Errorf("unknown event type error = %v, want ErrUnknownEventType", err)
	}

	// StasisStart 从不携带 Bridge 对象
	err = ValidateSubscription("StasisStart", types.KindBridge)
	if !errors.Is(err, ErrKindMismatch) {
		t.Errorf("kind mismatch error = %v, want ErrKindMismatch", err)
	}
}

// TestIndex_SubscribeValidation 测试校验失败不产生注册
func TestIndex_SubscribeValidation(t *testing.T) {
	idx := NewIndex()

	_, err := idx.Subscribe(channelID("c1"), "BadEventType",
		func(obj pkgif.Object, ev *types.Event, args ...interface{}) error { return nil }, nil)
	if !errors.Is(err, ErrUnknownEventType) {
		t.Errorf("Subscribe error = %v, want ErrUnknownEventType", err)
	}
	if idx.Len() != 0 {
		t.Error("failed subscribe must not create a router")
	}

	_, err = idx.Subscribe(types.ObjectID{}, "StasisStart",
		func(obj pkgif.Object, ev *types.Event, args ...interface{}) error { return nil }, nil)
	if !errors.Is(err, ErrInvalidObjectID) {
		t.Errorf("Subscribe error = %v, want ErrInvalidObjectID", err)
	}
}

// TestIndex_IdentityFiltering 测试只投递匹配身份的事件
func TestIndex_IdentityFiltering(t *testing.T) {
	idx := NewIndex()
	var seen []string

	_, err := idx.Subscribe(channelID("c1"), "ChannelStateChange",
		func(obj pkgif.Object, ev *types.Event, args ...interface{}) error {
			seen = append(seen, obj.Key())
			return nil
		}, nil)
	if err != nil {
		t.Fatalf("Subscribe() failed: %v", err)
	}

	dispatchTo := func(key string) {
		ev := mustEvent(t, `{"type": "ChannelStateChange", "channel": {"id": "`+key+`"}}`)
		if r, ok := idx.Get(channelID(key)); ok {
			r.Dispatch(&stubObject{id: channelID(key)}, ev, nil)
		}
	}

	dispatchTo("ignore-me")
	dispatchTo("c1")

	if len(seen) != 1 || seen[0] != "c1" {
		t.Errorf("seen = %v, want [c1]", seen)
	}
}

// TestIndex_RouterRecycled 测试注册表清空后路由器被回收
func TestIndex_RouterRecycled(t *testing.T) {
	idx := NewIndex()

	reg, err := idx.Subscribe(channelID("c1"), "StasisStart",
		func(obj pkgif.Object, ev *types.Event, args ...interface{}) error { return nil }, nil)
	if err != nil {
		t.Fatalf("Subscribe() failed: %v", err)
	}
	if idx.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", idx.Len())
	}

	_ = reg.Close()
	if idx.Len() != 0 {
		t.Errorf("router not recycled after last registration closed")
	}

	// 回收后重新订阅创建新路由器
	if _, err := idx.Subscribe(channelID("c1"), "StasisStart",
		func(obj pkgif.Object, ev *types.Event, args ...interface{}) error { return nil }, nil); err != nil {
		t.Fatalf("resubscribe failed: %v", err)
	}
	if idx.Len() != 1 {
		t.Errorf("Len() = %d after resubscribe, want 1", idx.Len())
	}
}

// TestIndex_CloseFromCallbackRecycles 测试回调内自我退订也触发回收
func TestIndex_CloseFromCallbackRecycles(t *testing.T) {
	idx := NewIndex()
	var self pkgif.Registration
	ran := 0

	self, err := idx.Subscribe(channelID("c1"), "StasisStart",
		func(obj pkgif.Object, ev *types.Event, args ...interface{}) error {
			ran++
			return self.Close()
		}, nil)
	if err != nil {
		t.Fatalf("Subscribe() failed: %v", err)
	}

	ev := mustEvent(t, `{"type": "StasisStart", "channel": {"id": "c1"}}`)
	r, _ := idx.Get(channelID("c1"))
	r.Dispatch(&stubObject{id: channelID("c1")}, ev, nil)

	if ran != 1 {
		t.Errorf("callback ran %d times, want 1", ran)
	}
	if idx.Len() != 0 {
		t.Error("router not recycled after self-close")
	}
}

// TestIndex_SubscribeKind 测试种类订阅命中任意实例
func TestIndex_SubscribeKind(t *testing.T) {
	idx := NewIndex()
	var seen []string

	_, err := idx.SubscribeKind(types.KindChannel, "StasisStart",
		func(obj pkgif.Object, ev *types.Event, args ...interface{}) error {
			seen = append(seen, obj.Key())
			return nil
		}, nil)
	if err != nil {
		t.Fatalf("SubscribeKind() failed: %v", err)
	}

	// 两个不同身份的实例都命中
	for _, key := range []string{"c1", "c2"} {
		ev := mustEvent(t, `{"type": "StasisStart", "channel": {"id": "`+key+`"}}`)
		idx.DispatchKind(types.KindChannel, &stubObject{id: channelID(key)}, ev, nil)
	}

	if len(seen) != 2 || seen[0] != "c1" || seen[1] != "c2" {
		t.Errorf("seen = %v, want [c1 c2]", seen)
	}
}

// TestIndex_SubscribeKindValidation 测试种类订阅的同步校验
func TestIndex_SubscribeKindValidation(t *testing.T) {
	idx := NewIndex()
	handler := func(obj pkgif.Object, ev *types.Event, args ...interface{}) error { return nil }

	_, err := idx.SubscribeKind(types.KindUnknown, "StasisStart", handler, nil)
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("SubscribeKind error = %v, want ErrUnknownKind", err)
	}

	_, err = idx.SubscribeKind(types.KindBridge, "StasisStart", handler, nil)
	if !errors.Is(err, ErrKindMismatch) {
		t.Errorf("SubscribeKind error = %v, want ErrKindMismatch", err)
	}
	if idx.KindLen() != 0 {
		t.Error("failed subscribe must not create a kind registry")
	}
}

// TestIndex_KindRegistryRecycled 测试种类注册表清空后被回收
func TestIndex_KindRegistryRecycled(t *testing.T) {
	idx := NewIndex()

	reg, err := idx.SubscribeKind(types.KindChannel, "StasisStart",
		func(obj pkgif.Object, ev *types.Event, args ...interface{}) error { return nil }, nil)
	if err != nil {
		t.Fatalf("SubscribeKind() failed: %v", err)
	}
	if idx.KindLen() != 1 {
		t.Fatalf("KindLen() = %d, want 1", idx.KindLen())
	}

	_ = reg.Close()
	if idx.KindLen() != 0 {
		t.Errorf("kind registry not recycled after last registration closed")
	}
}

// TestIndex_ObjectPrepended 测试对象代理前置传入回调
func TestIndex_ObjectPrepended(t *testing.T) {
	idx := NewIndex()
	stub := &stubObject{id: channelID("c1")}
	var gotObj pkgif.Object
	var gotArgs []interface{}

	_, err := idx.Subscribe(channelID("c1"), "ChannelDtmfReceived",
		func(obj pkgif.Object, ev *types.Event, args ...interface{}) error {
			gotObj = obj
			gotArgs = args
			return nil
		}, []interface{}{1, "extra"})
	if err != nil {
		t.Fatalf("Subscribe() failed: %v", err)
	}

	ev := mustEvent(t, `{"type": "ChannelDtmfReceived", "channel": {"id": "c1"}}`)
	r, _ := idx.Get(channelID("c1"))
	r.Dispatch(stub, ev, nil)

	if gotObj != stub {
		t.Error("callback did not receive the resolved proxy")
	}
	if len(gotArgs) != 2 || gotArgs[0] != 1 || gotArgs[1] != "extra" {
		t.Errorf("bound args = %v, want [1 extra]", gotArgs)
	}
}

// TestIndex_Clear 测试销毁清空全部订阅
func TestIndex_Clear(t *testing.T) {
	idx := NewIndex()
	ran := 0

	reg, err := idx.Subscribe(channelID("c1"), "StasisStart",
		func(obj pkgif.Object, ev *types.Event, args ...interface{}) error {
			ran++
			return nil
		}, nil)
	if err != nil {
		t.Fatalf("Subscribe() failed: %v", err)
	}

	idx.Clear()
	if idx.Len() != 0 {
		t.Error("Clear() left routers behind")
	}
	if err := reg.Close(); err != nil {
		t.Errorf("Close() after Clear() = %v, want nil", err)
	}
	if ran != 0 {
		t.Errorf("callback ran %d times, want 0", ran)
	}
}
