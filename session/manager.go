package session

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Manager defines a public type used by goConsole APIs.
//
// Manager is the single writer of the session pair. All mutations happen
// under one lock and hit durable storage before the in-memory view is
// updated, so memory and storage cannot drift apart across a call
// boundary. Reads are cheap and never touch storage after Restore.
type Manager struct {
	storage Storage

	mu         sync.Mutex
	current    Record
	present    bool
	generation uint64

	now func() time.Time
}

// NewManager describes the newmanager operation and its observable behavior.
//
// NewManager may return an error when input validation, dependency calls, or security checks fail.
func NewManager(storage Storage) (*Manager, error) {
	if storage == nil {
		return nil, errors.New("session storage required")
	}
	return &Manager{storage: storage, now: time.Now}, nil
}

// WithClock overrides the manager's time source. Test hook.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	if now != nil {
		m.now = now
	}
	return m
}

// Restore loads the persisted pair into memory. A missing or undecodable
// pair leaves the manager anonymous and wipes whatever half-written state
// storage held, so later reads stay consistent with the fail-closed rule.
func (m *Manager) Restore(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	token, identity, ok, err := m.storage.Load(ctx)
	if err != nil {
		return err
	}
	if !ok {
		m.present = false
		m.current = Record{}
		return nil
	}

	rec, derr := DecodeIdentity(identity)
	if derr != nil || token == "" {
		m.present = false
		m.current = Record{}
		return m.storage.Clear(ctx)
	}

	rec.Token = token
	m.current = *rec
	m.present = true
	return nil
}

// Set atomically persists identity + token and marks the session
// authenticated. The caller guarantees the token was freshly issued; no
// validation happens here. Storage failure leaves memory untouched.
func (m *Manager) Set(ctx context.Context, rec Record) error {
	if rec.Token == "" {
		return errors.New("session token required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	rec.SavedAt = m.now().Unix()
	identity, err := EncodeIdentity(&rec)
	if err != nil {
		return err
	}
	if err := m.storage.Store(ctx, rec.Token, identity); err != nil {
		return err
	}

	m.current = rec
	m.present = true
	m.generation++
	return nil
}

// Clear atomically removes identity + token. Idempotent: clearing an
// anonymous manager is a no-op.
func (m *Manager) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clearLocked(ctx)
}

// ClearGeneration clears only when the session generation still matches
// gen. Concurrent invalidation signals for the same login (parallel 401
// responses, a local expiry racing a remote one) collapse into a single
// clear; the caller that wins is told so it can fire side effects once.
func (m *Manager) ClearGeneration(ctx context.Context, gen uint64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.present || m.generation != gen {
		return false, nil
	}
	if err := m.clearLocked(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (m *Manager) clearLocked(ctx context.Context) error {
	if err := m.storage.Clear(ctx); err != nil {
		return err
	}
	m.current = Record{}
	m.present = false
	m.generation++
	return nil
}

// Current returns the in-memory record. ok is false when anonymous.
func (m *Manager) Current() (Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current, m.present
}

// Token returns the bearer token, if any.
func (m *Manager) Token() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.present {
		return "", false
	}
	return m.current.Token, true
}

// Generation returns the mutation counter paired with the current state.
func (m *Manager) Generation() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.generation
}
