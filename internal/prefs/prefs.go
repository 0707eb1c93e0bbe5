// internal/prefs/prefs.go
package prefs

import (
	"log/slog"
	"sync"

	"facilityhub/internal/localstore"
)

// Preferences is the UI slice persisted verbatim under the ui-storage key:
// sidebar visibility and theme. It carries no identity and no entity data.
type Preferences struct {
	SidebarOpen bool   `json:"sidebar_open"`
	Theme       string `json:"theme"`
}

func defaults() Preferences {
	return Preferences{SidebarOpen: true, Theme: "light"}
}

// Manager holds the preference state and mirrors every change to the
// local store.
type Manager struct {
	mu    sync.Mutex
	prefs Preferences
	ls    *localstore.Store
}

// NewManager restores the persisted snapshot, falling back to defaults
// when none exists or it cannot be read.
func NewManager(ls *localstore.Store) *Manager {
	m := &Manager{prefs: defaults(), ls: ls}
	var stored Preferences
	ok, err := ls.Load(localstore.KeyUI, &stored)
	if err != nil {
		slog.Warn("prefs: restore failed, using defaults", "err", err)
		return m
	}
	if ok {
		m.prefs = stored
	}
	return m
}

func (m *Manager) Get() Preferences {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.prefs
}

func (m *Manager) Set(p Preferences) error {
	m.mu.Lock()
	m.prefs = p
	m.mu.Unlock()
	return m.ls.Save(localstore.KeyUI, p)
}

// ToggleSidebar flips the sidebar flag and returns the new state.
func (m *Manager) ToggleSidebar() (Preferences, error) {
	m.mu.Lock()
	m.prefs.SidebarOpen = !m.prefs.SidebarOpen
	p := m.prefs
	m.mu.Unlock()
	return p, m.ls.Save(localstore.KeyUI, p)
}
