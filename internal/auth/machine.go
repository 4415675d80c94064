// Package auth implements the admin-mode state machine: a password gate
// in front of content editing. It is deliberately not a security
// boundary; the credential hash ships with the tool and the gate exists
// to prevent accidental edits, not determined ones.
package auth

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"folio/internal/application"
	"folio/internal/ports"
)

// State is the admin gate's current position.
type State int

const (
	// Locked: admin mode off, prompt hidden. The initial state.
	Locked State = iota
	// PromptOpen: password prompt visible, still unauthenticated.
	PromptOpen
	// Unlocked: authenticated, editing enabled.
	Unlocked
)

func (s State) String() string {
	switch s {
	case PromptOpen:
		return "prompt-open"
	case Unlocked:
		return "unlocked"
	default:
		return "locked"
	}
}

// incorrectPassword is the single user-visible authentication error. A
// wrong password and an internal comparison failure look identical to the
// user; the distinction only reaches the log.
const incorrectPassword = "Incorrect password"

// Machine is the admin authentication state machine. One instance owns
// the gate; surfaces (TUI, CLI, MCP) route the chord and prompt input to
// it rather than keeping their own ambient flags.
type Machine struct {
	mu       sync.Mutex
	state    State
	pending  bool
	userErr  string
	verifier ports.CredentialVerifier
	sessions ports.SessionStore
	logger   *zap.Logger
}

// New creates a machine and restores Unlocked if a previous session's
// authenticated flag is still persisted.
func New(verifier ports.CredentialVerifier, sessions ports.SessionStore, logger *zap.Logger) *Machine {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Machine{
		state:    Locked,
		verifier: verifier,
		sessions: sessions,
		logger:   logger,
	}
	if sessions != nil {
		ok, err := sessions.IsAuthenticated()
		if err != nil {
			logger.Warn("failed to read persisted session", zap.Error(err))
		} else if ok {
			m.state = Unlocked
		}
	}
	return m
}

// State returns the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// UserError returns the user-visible error from the last failed submit,
// or "" if there is none.
func (m *Machine) UserError() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.userErr
}

// Toggle handles the admin chord. From Locked it opens the prompt; from
// Unlocked it drops straight back to Locked and clears the persisted
// session; from PromptOpen it closes the prompt.
func (m *Machine) Toggle() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case Locked:
		m.state = PromptOpen
		m.userErr = ""
	case Unlocked:
		m.lock()
	case PromptOpen:
		m.state = Locked
		m.userErr = ""
	}
	return m.state
}

// Submit checks a password while the prompt is open. It is single-flight:
// a second call while a comparison is pending returns ErrAuthPending.
// A verifier error (e.g. malformed stored hash) is treated exactly like a
// wrong password from the user's point of view.
func (m *Machine) Submit(ctx context.Context, password string) (bool, error) {
	m.mu.Lock()
	if m.state != PromptOpen {
		m.mu.Unlock()
		return false, application.ErrLocked
	}
	if m.pending {
		m.mu.Unlock()
		return false, application.ErrAuthPending
	}
	m.pending = true
	m.mu.Unlock()

	// The hash comparison can take a while; run it outside the lock so
	// State queries stay responsive.
	ok, err := m.verifier.Verify(ctx, password)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = false

	if err != nil {
		m.logger.Warn("credential comparison failed", zap.Error(err))
		ok = false
	}
	if !ok {
		m.userErr = incorrectPassword
		return false, nil
	}

	m.state = Unlocked
	m.userErr = ""
	m.persist(true)
	return true, nil
}

// ClosePrompt returns from PromptOpen to Locked without side effects.
func (m *Machine) ClosePrompt() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == PromptOpen {
		m.state = Locked
		m.userErr = ""
	}
}

// Logout returns from Unlocked to Locked and clears the persisted session.
func (m *Machine) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Unlocked {
		m.lock()
	}
}

// lock transitions to Locked and clears persistence. Callers hold m.mu.
func (m *Machine) lock() {
	m.state = Locked
	m.userErr = ""
	m.persist(false)
}

// persist writes the session flag best-effort. Callers hold m.mu.
func (m *Machine) persist(v bool) {
	if m.sessions == nil {
		return
	}
	if err := m.sessions.SetAuthenticated(v); err != nil {
		m.logger.Warn("failed to persist session flag", zap.Bool("authenticated", v), zap.Error(err))
	}
}
