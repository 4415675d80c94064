// Package mcp exposes the content editor as MCP tools over stdio, so an
// assistant can browse and edit site content through the same sessions
// the CLI and TUI use.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"folio/internal/application"
	"folio/internal/domain"
)

// RegisterReadTools adds all read-only content tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, editor *application.Editor) {
	s.AddTool(listDomainsTool(), listDomainsHandler(editor))
	s.AddTool(getContentTool(), getContentHandler(editor))
	s.AddTool(statusTool(), statusHandler(editor))
}

// --- list_domains ---

func listDomainsTool() mcp.Tool {
	return mcp.NewTool("list_domains",
		mcp.WithDescription("List the site's content domains (home, about, portfolio, blog, contact, footer, global) with their backing data files."),
	)
}

func listDomainsHandler(editor *application.Editor) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var sb strings.Builder
		for _, name := range domain.All() {
			fmt.Fprintf(&sb, "%s  %s\n", name, name.FileName())
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- get_content ---

func getContentTool() mcp.Tool {
	return mcp.NewTool("get_content",
		mcp.WithDescription("Get a domain's current working copy as JSON. With a field path, returns just that value."),
		mcp.WithString("domain",
			mcp.Description("Content domain name (e.g. portfolio)"),
			mcp.Required(),
		),
		mcp.WithString("path",
			mcp.Description("Optional dotted field path (e.g. banner.banners.0.title)"),
		),
	)
}

func getContentHandler(editor *application.Editor) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		session, err := sessionFor(ctx, editor, req.GetString("domain", ""))
		if err != nil {
			return toolError(err)
		}

		doc := session.Working()
		path := req.GetString("path", "")
		if path == "" {
			return jsonResult(doc)
		}

		value, ok := doc.Get(domain.ParsePath(path))
		if !ok {
			return toolError(fmt.Errorf("no such field: %s", path))
		}
		return jsonResult(value)
	}
}

// --- status ---

func statusTool() mcp.Tool {
	return mcp.NewTool("status",
		mcp.WithDescription("Show which domains have unsaved edits (working copy differs from the loaded content)."),
	)
}

func statusHandler(editor *application.Editor) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		statuses, err := editor.Statuses(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, st := range statuses {
			marker := "clean"
			if st.Dirty {
				marker = "edited"
			}
			fmt.Fprintf(&sb, "%-10s %s\n", st.Name, marker)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func sessionFor(ctx context.Context, editor *application.Editor, name string) (*application.EditSession, error) {
	parsed, err := domain.ParseName(name)
	if err != nil {
		return nil, err
	}
	return editor.Session(ctx, parsed)
}
