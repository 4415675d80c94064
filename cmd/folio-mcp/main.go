package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"folio/internal/adapters/bcryptverify"
	"folio/internal/adapters/filesystem"
	"folio/internal/adapters/httpsource"
	mcpadapter "folio/internal/adapters/mcp"
	"folio/internal/adapters/sqlite"
	"folio/internal/application"
	"folio/internal/auth"
	"folio/internal/config"
	"folio/internal/logging"
	"folio/internal/ports"
)

func main() {
	baseURL := flag.String("base-url", config.BaseURL(), "deployed site URL to load content from")
	basePath := flag.String("base-path", config.BasePath(), "deployment base prefix for asset paths")
	dataDir := flag.String("data-dir", config.DataDir(), "local content directory (used when no base URL is set)")
	outDir := flag.String("out", config.OutDir(), "directory exported files are written to")
	flag.Parse()

	logger, err := logging.New(false)
	if err != nil {
		log.Fatalf("folio-mcp: %v", err)
	}
	defer logger.Sync()

	var source ports.ContentSource
	if *baseURL != "" {
		source = httpsource.New(*baseURL, *basePath, logger)
	} else {
		source = filesystem.NewSource(*dataDir, *basePath, logger)
	}

	store, err := sqlite.Open(config.StatePath())
	if err != nil {
		log.Fatalf("folio-mcp: %v", err)
	}
	defer store.Close()

	editor := application.NewEditor(source, store, logger)
	exporter := filesystem.NewExporter(*outDir)
	gate := auth.New(bcryptverify.New(config.AdminHash()), store, logger)

	mcpServer := server.NewMCPServer(
		"folio-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, editor)
	mcpadapter.RegisterWriteTools(mcpServer, editor, exporter, gate)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("folio-mcp: %v", err)
	}
}
