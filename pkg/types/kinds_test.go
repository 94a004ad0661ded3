package types

import "testing"

func TestObjectKind(t *testing.T) {
	tests := []struct {
		k    ObjectKind
		want string
	}{
		{KindUnknown, "Unknown"},
		{KindChannel, "Channel"},
		{KindBridge, "Bridge"},
		{KindPlayback, "Playback"},
		{KindRecording, "Recording"},
		{KindEndpoint, "Endpoint"},
		{ObjectKind(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.k.String(); got != tt.want {
				t.Errorf("ObjectKind(%d).String() = %q, want %q", tt.k, got, tt.want)
			}
		})
	}
}

func TestKindFromName(t *testing.T) {
	for _, k := range []ObjectKind{KindChannel, KindBridge, KindPlayback, KindRecording, KindEndpoint} {
		got, ok := KindFromName(k.String())
		if !ok || got != k {
			t.Errorf("KindFromName(%q) = (%v, %v), want (%v, true)", k.String(), got, ok, k)
		}
	}

	if _, ok := KindFromName("DeviceState"); ok {
		t.Error("KindFromName(\"DeviceState\") should not resolve")
	}
	if _, ok := KindFromName(""); ok {
		t.Error("KindFromName(\"\") should not resolve")
	}
}

func TestObjectID(t *testing.T) {
	id := ObjectID{Kind: KindChannel, Key: "c1"}

	if got := id.String(); got != "Channel/c1" {
		t.Errorf("ObjectID.String() = %q, want %q", got, "Channel/c1")
	}
	if !id.Valid() {
		t.Error("ObjectID with kind and key should be valid")
	}

	if (ObjectID{Kind: KindChannel}).Valid() {
		t.Error("ObjectID without key should be invalid")
	}
	if (ObjectID{Key: "c1"}).Valid() {
		t.Error("ObjectID without kind should be invalid")
	}

	// 同种类不同键互不相等，可直接作为 map 键
	other := ObjectID{Kind: KindChannel, Key: "c2"}
	if id == other {
		t.Error("distinct keys must compare unequal")
	}
}
