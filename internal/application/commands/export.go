package commands

import (
	"context"
	"fmt"

	"folio/internal/application"
	"folio/internal/ports"
)

// ExportResult contains the result of exporting a domain
type ExportResult struct {
	Destination string
	Message     string
}

// ExportCommand serializes the current working copy and persists it via
// the export target. The working copy is never modified, so a failed
// export loses nothing.
type ExportCommand struct {
	session *application.EditSession
	target  ports.ExportTarget
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(session *application.EditSession, target ports.ExportTarget) *ExportCommand {
	return &ExportCommand{
		session: session,
		target:  target,
	}
}

// Execute runs the export
func (c *ExportCommand) Execute(ctx context.Context) (*ExportResult, error) {
	name := c.session.Name()
	dest, err := c.target.Persist(c.session.Working(), name.FileName())
	if err != nil {
		return nil, &application.ExportError{
			Domain: string(name),
			Reason: err.Error(),
		}
	}

	return &ExportResult{
		Destination: dest,
		Message:     fmt.Sprintf("Exported %s to %s", name, dest),
	}, nil
}
