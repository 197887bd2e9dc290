// Package chatlayout is the per-space state machine deciding where the AI
// chat panel renders: pinned to the bottom (full width or sharing it with
// the documents area), as a tab inside a pane, hidden, or promoted to
// fullscreen while the user drags the chat divider past the documents
// minimum.
package chatlayout

import (
	"dochub/internal/logger"
	"dochub/internal/store"
)

// Position is where the chat panel renders. The six constants below are the
// persistable positions; PositionFullscreen is derived at render time and is
// never written to the store.
type Position string

const (
	PositionBottomFull  Position = "bottom-full"
	PositionBottomLeft  Position = "bottom-left"
	PositionBottomRight Position = "bottom-right"
	PositionTabLeft     Position = "tab-left"
	PositionTabRight    Position = "tab-right"
	PositionHidden      Position = "hidden"

	// PositionFullscreen is reached only by dragging the chat divider past
	// the documents minimum, not by MoveTo, and is not a stored value.
	PositionFullscreen Position = "fullscreen"
)

// DefaultPosition is used when nothing valid is persisted for a space.
const DefaultPosition = PositionBottomFull

// MinDocumentsShare is the smallest percentage of a bottom split the
// documents area may occupy before the chat panel promotes to fullscreen.
const MinDocumentsShare = 20

// StoreKey is the per-space key the layout state persists under.
const StoreKey = "chatLayout"

// Valid reports whether p is one of the persistable positions.
func (p Position) Valid() bool {
	switch p {
	case PositionBottomFull, PositionBottomLeft, PositionBottomRight,
		PositionTabLeft, PositionTabRight, PositionHidden:
		return true
	}
	return false
}

// IsBottom reports whether p docks the chat panel to the bottom strip. The
// history overlay only exists on bottom positions.
func (p Position) IsBottom() bool {
	return p == PositionBottomFull || p == PositionBottomLeft || p == PositionBottomRight
}

// IsTab reports whether p renders the chat inside a pane tab.
func (p Position) IsTab() bool {
	return p == PositionTabLeft || p == PositionTabRight
}

// State is the persisted layout value for one space.
type State struct {
	Position    Position `json:"position"`
	ShowHistory bool     `json:"showHistory"`
}

// DefaultState returns the fallback layout.
func DefaultState() State {
	return State{Position: DefaultPosition, ShowHistory: false}
}

// rawState mirrors State with loose types so a persisted payload can be
// validated field by field before adoption.
type rawState struct {
	Position    string `json:"position"`
	ShowHistory *bool  `json:"showHistory"`
}

// Machine owns the chat layout for one space, writing every position change
// through to the store immediately.
type Machine struct {
	store   *store.Store
	spaceID string

	state      State
	fullscreen bool
}

// NewMachine loads the persisted layout for spaceID, falling back to the
// default when the stored payload is absent or malformed.
func NewMachine(s *store.Store, spaceID string) *Machine {
	m := &Machine{
		store:   s,
		spaceID: spaceID,
		state:   DefaultState(),
	}

	var raw rawState
	if s != nil && s.Get(spaceID, StoreKey, &raw) {
		pos := Position(raw.Position)
		if pos.Valid() && raw.ShowHistory != nil {
			m.state = State{Position: pos, ShowHistory: *raw.ShowHistory}
		} else {
			logger.Warn("ChatLayout: discarding malformed state for space %s: %+v", spaceID, raw)
		}
	}
	// History only survives restore on bottom positions.
	if !m.state.Position.IsBottom() {
		m.state.ShowHistory = false
	}
	return m
}

// State returns the persisted-form layout state.
func (m *Machine) State() State {
	return m.state
}

// Position returns the stored position, ignoring any fullscreen promotion.
func (m *Machine) Position() Position {
	return m.state.Position
}

// EffectivePosition returns the position to render: the stored one, or
// fullscreen while the divider drag has promoted the chat panel.
func (m *Machine) EffectivePosition() Position {
	if m.fullscreen {
		return PositionFullscreen
	}
	return m.state.Position
}

// ShowHistory reports whether the history overlay is visible.
func (m *Machine) ShowHistory() bool {
	return m.state.ShowHistory
}

// MoveTo transitions to one of the persistable positions. Moving off a
// bottom position closes the history overlay. Invalid positions are refused.
func (m *Machine) MoveTo(pos Position) bool {
	if !pos.Valid() {
		return false
	}
	m.state.Position = pos
	if !pos.IsBottom() {
		m.state.ShowHistory = false
	}
	m.fullscreen = false
	m.persist()
	return true
}

// Hide transitions to the hidden position.
func (m *Machine) Hide() {
	m.MoveTo(PositionHidden)
}

// Reset restores the default layout.
func (m *Machine) Reset() {
	m.state = DefaultState()
	m.fullscreen = false
	m.persist()
}

// ToggleHistory flips the history overlay. No-op unless the current
// position is a bottom variant.
func (m *Machine) ToggleHistory() {
	m.SetHistoryVisible(!m.state.ShowHistory)
}

// SetHistoryVisible sets the history overlay visibility. No-op unless the
// current position is a bottom variant.
func (m *Machine) SetHistoryVisible(visible bool) {
	if !m.state.Position.IsBottom() {
		return
	}
	if m.state.ShowHistory == visible {
		return
	}
	m.state.ShowHistory = visible
	m.persist()
}

// TrackSplit observes the chat panel's share of a bottom split during a
// divider drag. Crossing 100-MinDocumentsShare promotes the panel to
// fullscreen; dropping back under demotes it. The promotion is derived
// state only and is never persisted.
func (m *Machine) TrackSplit(chatSharePct int) {
	m.fullscreen = chatSharePct > 100-MinDocumentsShare
}

// Fullscreen reports whether the divider drag has promoted the panel.
func (m *Machine) Fullscreen() bool {
	return m.fullscreen
}

func (m *Machine) persist() {
	if m.store == nil {
		return
	}
	if err := m.store.Set(m.spaceID, StoreKey, m.state); err != nil {
		logger.Warn("ChatLayout: persist failed for space %s: %v", m.spaceID, err)
	}
}
