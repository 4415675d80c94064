package auth

import (
	"context"
	"errors"
	"sync"
	"testing"

	"folio/internal/application"
)

// fakeVerifier accepts one password and counts comparisons.
type fakeVerifier struct {
	accept string
	err    error
	calls  int
}

func (v *fakeVerifier) Verify(_ context.Context, password string) (bool, error) {
	v.calls++
	if v.err != nil {
		return false, v.err
	}
	return password == v.accept, nil
}

// fakeSessions stores the authenticated flag in memory.
type fakeSessions struct {
	authenticated bool
	readErr       error
}

func (s *fakeSessions) IsAuthenticated() (bool, error) {
	if s.readErr != nil {
		return false, s.readErr
	}
	return s.authenticated, nil
}

func (s *fakeSessions) SetAuthenticated(v bool) error {
	s.authenticated = v
	return nil
}

func newMachine(accept string) (*Machine, *fakeVerifier, *fakeSessions) {
	verifier := &fakeVerifier{accept: accept}
	sessions := &fakeSessions{}
	return New(verifier, sessions, nil), verifier, sessions
}

func TestInitialState(t *testing.T) {
	m, _, _ := newMachine("secret")
	if m.State() != Locked {
		t.Errorf("initial state = %v, want Locked", m.State())
	}
}

func TestRestoresPersistedSession(t *testing.T) {
	sessions := &fakeSessions{authenticated: true}
	m := New(&fakeVerifier{}, sessions, nil)
	if m.State() != Unlocked {
		t.Errorf("state = %v, want Unlocked restored from the session store", m.State())
	}
}

func TestBrokenSessionStoreStartsLocked(t *testing.T) {
	sessions := &fakeSessions{readErr: errors.New("db locked")}
	m := New(&fakeVerifier{}, sessions, nil)
	if m.State() != Locked {
		t.Errorf("state = %v, want Locked when the store cannot be read", m.State())
	}
}

func TestToggleTransitions(t *testing.T) {
	m, _, _ := newMachine("secret")

	if got := m.Toggle(); got != PromptOpen {
		t.Fatalf("Toggle from Locked = %v, want PromptOpen", got)
	}
	if got := m.Toggle(); got != Locked {
		t.Fatalf("Toggle from PromptOpen = %v, want Locked", got)
	}

	// Unlock, then the chord locks in one step with no prompt.
	m.Toggle()
	if ok, err := m.Submit(context.Background(), "secret"); !ok || err != nil {
		t.Fatalf("Submit(correct) = %v, %v", ok, err)
	}
	if got := m.Toggle(); got != Locked {
		t.Errorf("Toggle from Unlocked = %v, want Locked", got)
	}
}

func TestSubmitCorrectPassword(t *testing.T) {
	m, _, sessions := newMachine("secret")
	m.Toggle()

	ok, err := m.Submit(context.Background(), "secret")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !ok {
		t.Fatal("correct password rejected")
	}
	if m.State() != Unlocked {
		t.Errorf("state = %v, want Unlocked", m.State())
	}
	if m.UserError() != "" {
		t.Errorf("UserError = %q, want empty", m.UserError())
	}
	if !sessions.authenticated {
		t.Error("success should persist the session flag")
	}
}

func TestSubmitWrongPasswordRepeatedly(t *testing.T) {
	m, _, _ := newMachine("secret")
	m.Toggle()

	for i := 0; i < 3; i++ {
		ok, err := m.Submit(context.Background(), "nope")
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if ok {
			t.Fatal("wrong password accepted")
		}
		if m.State() != PromptOpen {
			t.Fatalf("state after wrong password = %v, want PromptOpen", m.State())
		}
		if m.UserError() != "Incorrect password" {
			t.Errorf("UserError = %q", m.UserError())
		}
	}

	// The prompt survives any number of failures; the right password
	// still works afterwards.
	ok, err := m.Submit(context.Background(), "secret")
	if !ok || err != nil {
		t.Errorf("Submit after failures = %v, %v", ok, err)
	}
}

func TestSubmitVerifierErrorReadsAsMismatch(t *testing.T) {
	verifier := &fakeVerifier{err: errors.New("malformed hash")}
	m := New(verifier, &fakeSessions{}, nil)
	m.Toggle()

	ok, err := m.Submit(context.Background(), "anything")
	if err != nil {
		t.Fatalf("an internal failure must not surface as an error: %v", err)
	}
	if ok {
		t.Fatal("verifier error accepted as a match")
	}
	if m.UserError() != "Incorrect password" {
		t.Errorf("UserError = %q, want the generic message", m.UserError())
	}
}

func TestSubmitWithoutPrompt(t *testing.T) {
	m, verifier, _ := newMachine("secret")

	if _, err := m.Submit(context.Background(), "secret"); !errors.Is(err, application.ErrLocked) {
		t.Errorf("Submit while Locked = %v, want ErrLocked", err)
	}
	if verifier.calls != 0 {
		t.Error("no comparison should run while Locked")
	}
}

func TestSubmitSingleFlight(t *testing.T) {
	block := make(chan struct{})
	verifier := &blockingVerifier{release: block, started: make(chan struct{})}
	m := New(verifier, &fakeSessions{}, nil)
	m.Toggle()

	done := make(chan struct{})
	go func() {
		m.Submit(context.Background(), "first")
		close(done)
	}()
	<-verifier.started

	if _, err := m.Submit(context.Background(), "second"); !errors.Is(err, application.ErrAuthPending) {
		t.Errorf("overlapping Submit = %v, want ErrAuthPending", err)
	}

	close(block)
	<-done
}

// blockingVerifier parks Verify until released, to expose the pending window.
type blockingVerifier struct {
	release <-chan struct{}
	started chan struct{}
	once    sync.Once
}

func (v *blockingVerifier) Verify(_ context.Context, _ string) (bool, error) {
	v.once.Do(func() { close(v.started) })
	<-v.release
	return false, nil
}

func TestClosePrompt(t *testing.T) {
	m, _, _ := newMachine("secret")
	m.Toggle()
	m.Submit(context.Background(), "nope")

	m.ClosePrompt()
	if m.State() != Locked {
		t.Errorf("state = %v, want Locked", m.State())
	}
	if m.UserError() != "" {
		t.Errorf("UserError should be cleared on close, got %q", m.UserError())
	}

	// ClosePrompt from any other state is a no-op.
	m.ClosePrompt()
	if m.State() != Locked {
		t.Errorf("state = %v, want Locked", m.State())
	}
}

func TestLogout(t *testing.T) {
	m, _, sessions := newMachine("secret")
	m.Toggle()
	m.Submit(context.Background(), "secret")

	m.Logout()
	if m.State() != Locked {
		t.Errorf("state = %v, want Locked", m.State())
	}
	if sessions.authenticated {
		t.Error("logout should clear the persisted flag")
	}

	// Logout while already Locked is a no-op.
	m.Logout()
	if m.State() != Locked {
		t.Errorf("state = %v, want Locked", m.State())
	}
}
