package ui

import (
	"strings"
	"testing"
)

func TestFooterFlashReplacesBindings(t *testing.T) {
	f := NewFooter()
	f.SetWidth(120)

	if cmd := f.SetFlash("saved", FlashSuccess); cmd == nil {
		t.Fatal("SetFlash should return an expiry command")
	}
	if !strings.Contains(f.View(), "saved") {
		t.Error("flash text should render")
	}
}

func TestFooterFlashExpiryIsSequenced(t *testing.T) {
	f := NewFooter()
	f.SetWidth(120)

	_ = f.SetFlash("first", FlashInfo)
	_ = f.SetFlash("second", FlashInfo)

	// The first flash's tick arrives after it was superseded.
	f.ExpireFlash(FlashTickMsg{Seq: 1})
	if !strings.Contains(f.View(), "second") {
		t.Error("a stale tick must not clear a newer flash")
	}

	f.ExpireFlash(FlashTickMsg{Seq: 2})
	if strings.Contains(f.View(), "second") {
		t.Error("the matching tick should clear the flash")
	}
}

func TestFooterBindingsFollowContext(t *testing.T) {
	f := NewFooter()
	f.SetWidth(200)

	f.SetContext(true, false, false, 0)
	if !strings.Contains(f.View(), "select space") {
		t.Error("sidebar context should show space bindings")
	}

	f.SetContext(false, true, false, 0)
	if !strings.Contains(f.View(), "move chat") {
		t.Error("chat context should show chat bindings")
	}

	f.SetContext(false, false, true, 2)
	if !strings.Contains(f.View(), "delete selected") {
		t.Error("a selection should surface bulk bindings")
	}

	f.SetContext(false, false, true, 0)
	if !strings.Contains(f.View(), "upload") {
		t.Error("documents context should show upload")
	}
}
