// internal/auth/holder.go
package auth

import (
	"log/slog"
	"sync"

	"facilityhub/internal/localstore"
	"facilityhub/internal/models"
)

// Holder is the session/auth state machine: anonymous until a login, back
// to anonymous on logout. The authenticated identity is mirrored to the
// auth-storage key so a restart restores it before any protected view is
// served.
type Holder struct {
	mu            sync.RWMutex
	user          *models.User
	authenticated bool
	ls            *localstore.Store
}

func NewHolder(ls *localstore.Store) *Holder {
	return &Holder{ls: ls}
}

// Login unconditionally records the identity; credential checking happens
// in the Directory before this is called.
func (h *Holder) Login(u models.User) {
	h.mu.Lock()
	h.user = &u
	h.authenticated = true
	h.mu.Unlock()
	if err := h.ls.Save(localstore.KeyAuth, u); err != nil {
		slog.Warn("auth: identity not persisted", "err", err)
	}
}

// Logout resets to anonymous regardless of prior state and clears the
// persisted identity.
func (h *Holder) Logout() {
	h.mu.Lock()
	h.user = nil
	h.authenticated = false
	h.mu.Unlock()
	if err := h.ls.Clear(localstore.KeyAuth); err != nil {
		slog.Warn("auth: persisted identity not cleared", "err", err)
	}
}

// Current returns the authenticated identity, if any.
func (h *Holder) Current() (models.User, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if !h.authenticated || h.user == nil {
		return models.User{}, false
	}
	return *h.user, true
}

func (h *Holder) Authenticated() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.authenticated
}

// Restore loads a previously persisted identity. Called once at startup,
// before the router starts serving.
func (h *Holder) Restore() {
	var u models.User
	ok, err := h.ls.Load(localstore.KeyAuth, &u)
	if err != nil {
		slog.Warn("auth: session restore failed", "err", err)
		return
	}
	if !ok {
		return
	}
	h.mu.Lock()
	h.user = &u
	h.authenticated = true
	h.mu.Unlock()
	slog.Info("auth: session restored", "user_id", u.ID.String(), "role", string(u.Role))
}
