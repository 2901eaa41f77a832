package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionJump) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionJump)
	f.Set(ActionLeft)
	if !f.Has(ActionJump) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionJump) {
		t.Error("Clone should not be affected by Clear on the original")
	}

	var zero InputFrame
	if zero.Has(ActionPause) {
		t.Error("zero frame should report nothing")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestKeyStateHoldExpires(t *testing.T) {
	k := NewKeyState(3)
	k.Press(ActionLeft)

	for i := 0; i < 3; i++ {
		if !k.Held(ActionLeft) {
			t.Fatalf("tick %d: left should still be held", i)
		}
		k.Advance()
	}
	if k.Held(ActionLeft) {
		t.Error("left should be released after holdTicks without a press")
	}
}

func TestKeyStateRepeatKeepsHeld(t *testing.T) {
	k := NewKeyState(2)
	for i := 0; i < 10; i++ {
		k.Press(ActionRight)
		k.Advance()
		if !k.Held(ActionRight) {
			t.Fatalf("tick %d: repeated presses should keep right held", i)
		}
	}
}

func TestKeyStateOpposingDirections(t *testing.T) {
	k := NewKeyState(10)
	k.Press(ActionLeft)
	k.Press(ActionRight)

	if k.Held(ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !k.Held(ActionRight) {
		t.Error("right should be held")
	}

	f := NewInputFrame()
	k.Apply(&f)
	if f.Has(ActionLeft) || !f.Has(ActionRight) {
		t.Errorf("Apply() produced %v, expected only Right", f.Actions)
	}

	k.Release(ActionRight)
	if k.Held(ActionRight) {
		t.Error("Release should drop the action")
	}
}

func TestActionString(t *testing.T) {
	if ActionTheme.String() != "Theme" {
		t.Errorf("ActionTheme.String() = %q", ActionTheme.String())
	}
	if Action(999).String() != "Unknown" {
		t.Error("out of range action should be Unknown")
	}
}
