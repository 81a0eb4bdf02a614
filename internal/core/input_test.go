package core

import "testing"

func TestInputFrame(t *testing.T) {
	var zero InputFrame
	if zero.Has(KeyLeft) {
		t.Error("zero frame should have nothing pressed")
	}

	f := NewInputFrame(KeyLeft, KeyConfirm)
	if !f.Has(KeyLeft) || !f.Has(KeyConfirm) {
		t.Errorf("expected Left and Confirm pressed, got %v", f.Pressed)
	}
	if f.Has(KeyRight) {
		t.Error("Right should not be pressed")
	}

	f.Set(KeyNone)
	if len(f.Pressed) != 2 {
		t.Errorf("KeyNone should be ignored, got %v", f.Pressed)
	}

	zero.Set(KeyRight)
	if !zero.Has(KeyRight) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestKeyString(t *testing.T) {
	tests := map[Key]string{
		KeyNone:    "None",
		KeyLeft:    "Left",
		KeyRight:   "Right",
		KeyConfirm: "Confirm",
		Key(99):    "Unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Key(%d).String() = %q, expected %q", int(k), got, want)
		}
	}
}
