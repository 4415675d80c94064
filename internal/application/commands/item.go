package commands

import (
	"context"
	"fmt"

	"folio/internal/application"
)

// ItemResult contains the result of a list-item mutation
type ItemResult struct {
	Changed bool
	Message string
}

// AppendItemCommand appends a record to the list at a dotted path
type AppendItemCommand struct {
	session  *application.EditSession
	ListPath string
	Record   map[string]any
}

// NewAppendItemCommand creates a new AppendItemCommand
func NewAppendItemCommand(session *application.EditSession, listPath string, record map[string]any) *AppendItemCommand {
	return &AppendItemCommand{
		session:  session,
		ListPath: listPath,
		Record:   record,
	}
}

// Validate checks if the append operation is valid
func (c *AppendItemCommand) Validate() error {
	if err := application.ValidateRequired("listPath", c.ListPath); err != nil {
		return err
	}
	if c.Record == nil {
		return &application.ValidationError{
			Field:   "record",
			Message: "record is required",
		}
	}
	return nil
}

// Execute runs the append
func (c *AppendItemCommand) Execute(ctx context.Context) (*ItemResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if !c.session.AppendItem(c.ListPath, c.Record) {
		return &ItemResult{
			Changed: false,
			Message: fmt.Sprintf("No such list: %s", c.ListPath),
		}, nil
	}

	return &ItemResult{
		Changed: true,
		Message: fmt.Sprintf("Appended item to %s.%s", c.session.Name(), c.ListPath),
	}, nil
}

// RemoveItemCommand removes the record at an index from a list
type RemoveItemCommand struct {
	session  *application.EditSession
	ListPath string
	Index    int
}

// NewRemoveItemCommand creates a new RemoveItemCommand
func NewRemoveItemCommand(session *application.EditSession, listPath string, index int) *RemoveItemCommand {
	return &RemoveItemCommand{
		session:  session,
		ListPath: listPath,
		Index:    index,
	}
}

// Validate checks if the remove operation is valid
func (c *RemoveItemCommand) Validate() error {
	return application.ValidateRequired("listPath", c.ListPath)
}

// Execute runs the remove. An out-of-range index leaves the list
// unchanged and reports Changed=false.
func (c *RemoveItemCommand) Execute(ctx context.Context) (*ItemResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if !c.session.RemoveItem(c.ListPath, c.Index) {
		return &ItemResult{
			Changed: false,
			Message: fmt.Sprintf("Nothing removed from %s (index %d)", c.ListPath, c.Index),
		}, nil
	}

	return &ItemResult{
		Changed: true,
		Message: fmt.Sprintf("Removed item %d from %s.%s", c.Index, c.session.Name(), c.ListPath),
	}, nil
}

// UpdateItemFieldCommand updates one field of one record by position
type UpdateItemFieldCommand struct {
	session  *application.EditSession
	ListPath string
	Index    int
	Field    string
	Value    any
}

// NewUpdateItemFieldCommand creates a new UpdateItemFieldCommand
func NewUpdateItemFieldCommand(session *application.EditSession, listPath string, index int, field string, value any) *UpdateItemFieldCommand {
	return &UpdateItemFieldCommand{
		session:  session,
		ListPath: listPath,
		Index:    index,
		Field:    field,
		Value:    value,
	}
}

// Validate checks if the item field update is valid
func (c *UpdateItemFieldCommand) Validate() error {
	if err := application.ValidateRequired("listPath", c.ListPath); err != nil {
		return err
	}
	return application.ValidateRequired("itemField", c.Field)
}

// Execute runs the item field update
func (c *UpdateItemFieldCommand) Execute(ctx context.Context) (*ItemResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if !c.session.UpdateItemField(c.ListPath, c.Index, c.Field, c.Value) {
		return &ItemResult{
			Changed: false,
			Message: fmt.Sprintf("No item %d in %s", c.Index, c.ListPath),
		}, nil
	}

	return &ItemResult{
		Changed: true,
		Message: fmt.Sprintf("Updated %s[%d].%s", c.ListPath, c.Index, c.Field),
	}, nil
}
