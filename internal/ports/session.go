package ports

// SessionStore persists the admin-unlocked flag across restarts of the
// same editing session.
type SessionStore interface {
	IsAuthenticated() (bool, error)
	SetAuthenticated(v bool) error
}
