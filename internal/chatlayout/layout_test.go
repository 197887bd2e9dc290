package chatlayout

import (
	"path/filepath"
	"testing"

	"dochub/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	return s
}

func TestDefaultState(t *testing.T) {
	m := NewMachine(openTestStore(t), "space-1")

	if m.Position() != PositionBottomFull {
		t.Errorf("Position() = %q, want %q", m.Position(), PositionBottomFull)
	}
	if m.ShowHistory() {
		t.Error("ShowHistory() should default to false")
	}
}

func TestMoveToPersistsRoundTrip(t *testing.T) {
	s := openTestStore(t)

	m := NewMachine(s, "space-1")
	m.MoveTo(PositionBottomRight)
	m.SetHistoryVisible(true)

	// A new machine for the same space sees the written state.
	m2 := NewMachine(s, "space-1")
	if m2.Position() != PositionBottomRight {
		t.Errorf("Position() = %q, want %q", m2.Position(), PositionBottomRight)
	}
	if !m2.ShowHistory() {
		t.Error("ShowHistory() should round-trip true")
	}

	// Other spaces are unaffected.
	if got := NewMachine(s, "space-2").Position(); got != PositionBottomFull {
		t.Errorf("other space Position() = %q, want default", got)
	}
}

func TestMalformedPersistedStateFallsBack(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		name    string
		payload interface{}
	}{
		{"bogus position", map[string]interface{}{"position": "bogus", "showHistory": false}},
		{"missing showHistory", map[string]interface{}{"position": "bottom-left"}},
		{"non-bool showHistory", map[string]interface{}{"position": "bottom-left", "showHistory": "yes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.Set("space-1", StoreKey, tt.payload); err != nil {
				t.Fatalf("Set() error: %v", err)
			}
			m := NewMachine(s, "space-1")
			if m.State() != DefaultState() {
				t.Errorf("State() = %+v, want default", m.State())
			}
		})
	}
}

func TestMoveToInvalidRefused(t *testing.T) {
	m := NewMachine(openTestStore(t), "space-1")

	if m.MoveTo(Position("bogus")) {
		t.Error("MoveTo should refuse an unknown position")
	}
	if m.MoveTo(PositionFullscreen) {
		t.Error("fullscreen is not a storable position")
	}
	if m.Position() != PositionBottomFull {
		t.Errorf("Position() = %q, want unchanged default", m.Position())
	}
}

func TestToggleHistoryOnlyOnBottomPositions(t *testing.T) {
	m := NewMachine(openTestStore(t), "space-1")

	m.MoveTo(PositionTabLeft)
	m.ToggleHistory()
	if m.ShowHistory() {
		t.Error("ToggleHistory on tab-left should stay false")
	}
	if m.Position() != PositionTabLeft {
		t.Errorf("Position() = %q, want %q", m.Position(), PositionTabLeft)
	}

	m.MoveTo(PositionBottomLeft)
	m.ToggleHistory()
	if !m.ShowHistory() {
		t.Error("ToggleHistory on bottom-left should show the overlay")
	}
}

func TestLeavingBottomClosesHistory(t *testing.T) {
	s := openTestStore(t)
	m := NewMachine(s, "space-1")
	m.SetHistoryVisible(true)

	m.MoveTo(PositionTabRight)

	if m.ShowHistory() {
		t.Error("moving to a tab position should force showHistory false")
	}
	if NewMachine(s, "space-1").ShowHistory() {
		t.Error("the forced showHistory=false should be persisted")
	}
}

func TestFullscreenPromotionNotPersisted(t *testing.T) {
	s := openTestStore(t)
	m := NewMachine(s, "space-1")

	m.TrackSplit(100 - MinDocumentsShare)
	if m.Fullscreen() {
		t.Error("share at the boundary should not promote")
	}

	m.TrackSplit(100 - MinDocumentsShare + 1)
	if !m.Fullscreen() {
		t.Error("share past the boundary should promote")
	}
	if m.EffectivePosition() != PositionFullscreen {
		t.Errorf("EffectivePosition() = %q, want fullscreen", m.EffectivePosition())
	}
	if m.Position() != PositionBottomFull {
		t.Errorf("stored Position() = %q, want unchanged", m.Position())
	}

	// Restoring from the store never yields fullscreen.
	if got := NewMachine(s, "space-1").EffectivePosition(); got == PositionFullscreen {
		t.Error("fullscreen must not survive a reload")
	}

	m.TrackSplit(50)
	if m.Fullscreen() {
		t.Error("shrinking the chat share should demote")
	}
}

func TestHideAndReset(t *testing.T) {
	m := NewMachine(openTestStore(t), "space-1")
	m.SetHistoryVisible(true)

	m.Hide()
	if m.Position() != PositionHidden || m.ShowHistory() {
		t.Errorf("after Hide: %+v", m.State())
	}

	m.Reset()
	if m.State() != DefaultState() {
		t.Errorf("after Reset: %+v, want default", m.State())
	}
}
