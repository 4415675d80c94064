package commands

import (
	"context"
	"fmt"

	"folio/internal/application"
)

// ResetResult contains the result of resetting a domain
type ResetResult struct {
	Message string
}

// ResetCommand discards all working-copy mutations, restoring the seed
type ResetCommand struct {
	session *application.EditSession
}

// NewResetCommand creates a new ResetCommand
func NewResetCommand(session *application.EditSession) *ResetCommand {
	return &ResetCommand{session: session}
}

// Execute runs the reset
func (c *ResetCommand) Execute(ctx context.Context) (*ResetResult, error) {
	c.session.Reset()
	return &ResetResult{
		Message: fmt.Sprintf("Discarded edits to %s", c.session.Name()),
	}, nil
}
