package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickfall/internal/core"
)

// KeyMap defines the terminal key bindings.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Confirm, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Confirm, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d/l", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Resolve translates a key message to a simulation key.
// Unbound keys and Quit resolve to core.KeyNone.
func (k KeyMap) Resolve(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, k.Left):
		return core.KeyLeft
	case key.Matches(msg, k.Right):
		return core.KeyRight
	case key.Matches(msg, k.Confirm):
		return core.KeyConfirm
	}
	return core.KeyNone
}

// HeldKeys approximates key-down state from a stream of key presses.
// Terminals report presses and auto-repeats but never releases, so a key
// counts as held until hold has passed since its last event.
type HeldKeys struct {
	hold time.Duration
	last map[core.Key]time.Time
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(hold time.Duration) *HeldKeys {
	return &HeldKeys{
		hold: hold,
		last: make(map[core.Key]time.Time),
	}
}

// Press records a key event at the given time.
func (h *HeldKeys) Press(k core.Key, at time.Time) {
	if k == core.KeyNone {
		return
	}
	h.last[k] = at
}

// Frame returns the keys considered held at the given time.
// Keys whose window has expired are forgotten.
func (h *HeldKeys) Frame(at time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for k, t := range h.last {
		if at.Sub(t) > h.hold {
			delete(h.last, k)
			continue
		}
		frame.Set(k)
	}
	return frame
}

