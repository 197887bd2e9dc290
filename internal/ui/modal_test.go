package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"dochub/internal/chatlayout"
)

func TestModalShowHide(t *testing.T) {
	m := NewModal()
	if m.IsVisible() {
		t.Fatal("a fresh modal should be hidden")
	}

	m.Show(NewConfirmDeleteState(2))
	if !m.IsVisible() {
		t.Fatal("Show should make the modal visible")
	}

	m.SetError("boom")
	m.Hide()
	if m.IsVisible() || m.GetError() != "" {
		t.Error("Hide should clear state and error")
	}
}

func TestConfirmDeleteDefaultsToCancel(t *testing.T) {
	s := NewConfirmDeleteState(3)
	if s.Confirmed() {
		t.Fatal("the cancel option must be preselected")
	}

	next, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if !next.(*ConfirmDeleteState).Confirmed() {
		t.Error("moving down should select the delete option")
	}

	next, _ = next.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if !next.(*ConfirmDeleteState).Confirmed() {
		t.Error("the selection must not move past the last option")
	}
}

func TestConfirmDeleteRenderCountsDocuments(t *testing.T) {
	one := NewConfirmDeleteState(1).Render()
	if !strings.Contains(one, "1 document.") {
		t.Errorf("singular form missing from %q", one)
	}
	many := NewConfirmDeleteState(4).Render()
	if !strings.Contains(many, "4 documents.") {
		t.Errorf("plural form missing from %q", many)
	}
}

func TestChatPositionStateStartsOnCurrent(t *testing.T) {
	s := NewChatPositionState(chatlayout.PositionTabRight)
	if s.GetSelectedPosition() != chatlayout.PositionTabRight {
		t.Errorf("selection starts on %v, want the current position", s.GetSelectedPosition())
	}
	if !strings.Contains(s.Render(), "(current)") {
		t.Error("the current position should be marked")
	}

	next, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if next.(*ChatPositionState).GetSelectedPosition() != chatlayout.PositionHidden {
		t.Error("moving down should advance through the placement list")
	}
}

func TestUploadStateValues(t *testing.T) {
	s := NewUploadState()
	src, val := s.GetValues()
	if src != UploadSourceFile {
		t.Errorf("default source = %q, want file", src)
	}
	if val != "" {
		t.Errorf("fresh form should have no path, got %q", val)
	}
}
