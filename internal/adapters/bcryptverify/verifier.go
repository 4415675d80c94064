// Package bcryptverify checks admin passwords against a bcrypt hash
// fixed at configuration time. bcrypt is one-way and constant-time on
// comparison, which is all the gate needs; the hash itself is not secret.
package bcryptverify

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"folio/internal/ports"
)

// Verifier implements ports.CredentialVerifier with a bcrypt comparison.
type Verifier struct {
	hash []byte
}

var _ ports.CredentialVerifier = (*Verifier)(nil)

// New creates a verifier for the given bcrypt hash string.
func New(hash string) *Verifier {
	return &Verifier{hash: []byte(hash)}
}

// Verify compares password against the stored hash. A mismatch is
// (false, nil); any other comparison failure, such as a malformed hash,
// is (false, err) so the caller can log it while showing the user a
// plain authentication failure.
func (v *Verifier) Verify(ctx context.Context, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(v.hash, []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("comparing password hash: %w", err)
	}
}
