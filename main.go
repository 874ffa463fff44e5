// Wikipedia MCP Server - A Model Context Protocol server for Wikipedia
// Provides tools for resolving, reading, and searching Wikipedia articles
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/olgasafonova/wikipedia-mcp-server/tools"
	"github.com/olgasafonova/wikipedia-mcp-server/tracing"
	"github.com/olgasafonova/wikipedia-mcp-server/wikipedia"
)

const (
	ServerName    = "wikipedia-mcp-server"
	ServerVersion = "1.0.0"
)

const serverInstructions = `Wikipedia MCP Server provides tools for reading Wikipedia.

Available tools:
- wikipedia_search: Full-text search for article titles
- wikipedia_get_snippet: Top search hit's snippet as plain text
- wikipedia_resolve_page: Resolve a title or page ID to its canonical identity
- wikipedia_get_summary: Article intro as plain text
- wikipedia_get_content: Full article text with revision IDs
- wikipedia_get_html: Rendered HTML of the current revision
- wikipedia_get_section: One named section's text
- wikipedia_get_sections: Section heading outline
- wikipedia_get_links: Articles a page links to
- wikipedia_get_references: External URLs cited on a page
- wikipedia_get_images: Files used on a page
- wikipedia_get_categories: Categories a page belongs to

Configure via environment variables:
- WIKIPEDIA_LOCALE: Language edition (default "en")
- WIKIPEDIA_API_URL: Full API endpoint override for self-hosted wikis
- WIKIPEDIA_TIMEOUT: Request timeout (default 30s)`

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx := context.Background()

	shutdown, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	config, err := wikipedia.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	client := wikipedia.NewClient(config, logger)
	defer client.Close()

	server := buildServer(client, logger)

	logger.Info("Starting Wikipedia MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"api_url", config.BaseURL,
		"locale", config.Locale,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// buildServer assembles the MCP server with all tools registered.
func buildServer(client *wikipedia.Client, logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: serverInstructions,
	})

	service := tools.NewService(client, logger)
	tools.NewHandlerRegistry(service, logger).RegisterAll(server)

	return server
}
