package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"folio/internal/application"
	"folio/internal/application/commands"
	"folio/internal/auth"
	"folio/internal/domain"
	"folio/internal/ports"
)

// RegisterWriteTools adds all editing tools to the MCP server. Every
// handler checks the admin gate first: write tools answer with an error
// until an admin session is unlocked (folio-cli login).
func RegisterWriteTools(s *server.MCPServer, editor *application.Editor, target ports.ExportTarget, gate *auth.Machine) {
	s.AddTool(setFieldTool(), setFieldHandler(editor, gate))
	s.AddTool(appendItemTool(), appendItemHandler(editor, gate))
	s.AddTool(removeItemTool(), removeItemHandler(editor, gate))
	s.AddTool(updateItemFieldTool(), updateItemFieldHandler(editor, gate))
	s.AddTool(exportTool(), exportHandler(editor, target, gate))
	s.AddTool(resetTool(), resetHandler(editor, gate))
}

func requireUnlocked(gate *auth.Machine) error {
	if gate.State() != auth.Unlocked {
		return fmt.Errorf("admin session locked; authenticate with `folio-cli login` first")
	}
	return nil
}

// --- set_field ---

func setFieldTool() mcp.Tool {
	return mcp.NewTool("set_field",
		mcp.WithDescription("Replace the value at a dotted field path in a domain's working copy. Missing intermediate segments make this a no-op."),
		mcp.WithString("domain",
			mcp.Description("Content domain name"),
			mcp.Required(),
		),
		mcp.WithString("path",
			mcp.Description("Dotted field path (e.g. banner.title)"),
			mcp.Required(),
		),
		mcp.WithString("value",
			mcp.Description("New value as JSON (strings may be passed bare)"),
			mcp.Required(),
		),
	)
}

func setFieldHandler(editor *application.Editor, gate *auth.Machine) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := requireUnlocked(gate); err != nil {
			return toolError(err)
		}
		session, err := sessionFor(ctx, editor, req.GetString("domain", ""))
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewSetFieldCommand(session, req.GetString("path", ""), parseValue(req.GetString("value", "")))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- append_item ---

func appendItemTool() mcp.Tool {
	return mcp.NewTool("append_item",
		mcp.WithDescription("Append a record to the list at a dotted path. Without a record, a default for known lists (projects, posts, banners, experience, links) is used."),
		mcp.WithString("domain",
			mcp.Description("Content domain name"),
			mcp.Required(),
		),
		mcp.WithString("list_path",
			mcp.Description("Dotted path to the list (e.g. projects, banner.banners)"),
			mcp.Required(),
		),
		mcp.WithString("record",
			mcp.Description("Optional record as a JSON object"),
		),
	)
}

func appendItemHandler(editor *application.Editor, gate *auth.Machine) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := requireUnlocked(gate); err != nil {
			return toolError(err)
		}
		session, err := sessionFor(ctx, editor, req.GetString("domain", ""))
		if err != nil {
			return toolError(err)
		}

		listPath := req.GetString("list_path", "")
		record := defaultOrParsedRecord(listPath, req.GetString("record", ""))

		cmd := commands.NewAppendItemCommand(session, listPath, record)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- remove_item ---

func removeItemTool() mcp.Tool {
	return mcp.NewTool("remove_item",
		mcp.WithDescription("Remove the record at an index from the list at a dotted path. Out-of-range indices leave the list unchanged. Indices are positional: removing an item shifts every later index."),
		mcp.WithString("domain",
			mcp.Description("Content domain name"),
			mcp.Required(),
		),
		mcp.WithString("list_path",
			mcp.Description("Dotted path to the list"),
			mcp.Required(),
		),
		mcp.WithNumber("index",
			mcp.Description("Zero-based index of the record to remove"),
			mcp.Required(),
		),
	)
}

func removeItemHandler(editor *application.Editor, gate *auth.Machine) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := requireUnlocked(gate); err != nil {
			return toolError(err)
		}
		session, err := sessionFor(ctx, editor, req.GetString("domain", ""))
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewRemoveItemCommand(session, req.GetString("list_path", ""), req.GetInt("index", -1))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- update_item_field ---

func updateItemFieldTool() mcp.Tool {
	return mcp.NewTool("update_item_field",
		mcp.WithDescription("Update one field of the record at an index within the list at a dotted path."),
		mcp.WithString("domain",
			mcp.Description("Content domain name"),
			mcp.Required(),
		),
		mcp.WithString("list_path",
			mcp.Description("Dotted path to the list"),
			mcp.Required(),
		),
		mcp.WithNumber("index",
			mcp.Description("Zero-based index of the record"),
			mcp.Required(),
		),
		mcp.WithString("field",
			mcp.Description("Field name within the record"),
			mcp.Required(),
		),
		mcp.WithString("value",
			mcp.Description("New value as JSON (strings may be passed bare)"),
			mcp.Required(),
		),
	)
}

func updateItemFieldHandler(editor *application.Editor, gate *auth.Machine) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := requireUnlocked(gate); err != nil {
			return toolError(err)
		}
		session, err := sessionFor(ctx, editor, req.GetString("domain", ""))
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewUpdateItemFieldCommand(session,
			req.GetString("list_path", ""),
			req.GetInt("index", -1),
			req.GetString("field", ""),
			parseValue(req.GetString("value", "")),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- export ---

func exportTool() mcp.Tool {
	return mcp.NewTool("export",
		mcp.WithDescription("Serialize a domain's working copy to its JSON data file in the export directory. The file must be committed to the site repository by a human; there is no network write."),
		mcp.WithString("domain",
			mcp.Description("Content domain name"),
			mcp.Required(),
		),
	)
}

func exportHandler(editor *application.Editor, target ports.ExportTarget, gate *auth.Machine) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := requireUnlocked(gate); err != nil {
			return toolError(err)
		}
		session, err := sessionFor(ctx, editor, req.GetString("domain", ""))
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewExportCommand(session, target)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- reset ---

func resetTool() mcp.Tool {
	return mcp.NewTool("reset",
		mcp.WithDescription("Discard a domain's working-copy edits, restoring the loaded content."),
		mcp.WithString("domain",
			mcp.Description("Content domain name"),
			mcp.Required(),
		),
	)
}

func resetHandler(editor *application.Editor, gate *auth.Machine) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := requireUnlocked(gate); err != nil {
			return toolError(err)
		}
		session, err := sessionFor(ctx, editor, req.GetString("domain", ""))
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewResetCommand(session)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// parseValue interprets a tool argument as JSON, falling back to a bare
// string so callers can write `"value": "Hello"` without quoting.
func parseValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}

func defaultOrParsedRecord(listPath, raw string) map[string]any {
	if raw != "" {
		var record map[string]any
		if err := json.Unmarshal([]byte(raw), &record); err == nil {
			return record
		}
	}
	segments := domain.ParsePath(listPath)
	if len(segments) == 0 {
		return map[string]any{}
	}
	return domain.DefaultRecord(segments[len(segments)-1])
}
