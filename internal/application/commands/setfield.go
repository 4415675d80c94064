package commands

import (
	"context"
	"fmt"

	"folio/internal/application"
)

// SetFieldResult contains the result of a field update
type SetFieldResult struct {
	Changed bool
	Message string
}

// SetFieldCommand replaces the scalar value at a dotted field path
type SetFieldCommand struct {
	session *application.EditSession
	Path    string
	Value   any
}

// NewSetFieldCommand creates a new SetFieldCommand
func NewSetFieldCommand(session *application.EditSession, path string, value any) *SetFieldCommand {
	return &SetFieldCommand{
		session: session,
		Path:    path,
		Value:   value,
	}
}

// Validate checks if the field update is valid
func (c *SetFieldCommand) Validate() error {
	return application.ValidateRequired("fieldPath", c.Path)
}

// Execute runs the field update
func (c *SetFieldCommand) Execute(ctx context.Context) (*SetFieldResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if !c.session.SetField(c.Path, c.Value) {
		// Missing intermediate segments make updates silent no-ops; the
		// result says so without turning it into an error.
		return &SetFieldResult{
			Changed: false,
			Message: fmt.Sprintf("No such field: %s", c.Path),
		}, nil
	}

	return &SetFieldResult{
		Changed: true,
		Message: fmt.Sprintf("Updated %s.%s", c.session.Name(), c.Path),
	}, nil
}
