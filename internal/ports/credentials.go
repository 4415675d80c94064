package ports

import "context"

// CredentialVerifier checks an admin password against the configured
// credential. This is a known weak model: the credential hash ships with
// the tool and gates convenience, not security.
type CredentialVerifier interface {
	// Verify returns whether password matches. A non-nil error means the
	// comparison itself failed (e.g. malformed stored hash); callers must
	// treat that as a mismatch from the user's point of view.
	Verify(ctx context.Context, password string) (bool, error)
}
