package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/olgasafonova/wikipedia-mcp-server/metrics"
	"github.com/olgasafonova/wikipedia-mcp-server/tracing"
	"github.com/olgasafonova/wikipedia-mcp-server/wikipedia"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	service *Service
	logger  *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(service *Service, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{service: service, logger: logger}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	case "Search":
		register(h, server, tool, spec, h.service.Search)
	case "GetSnippet":
		register(h, server, tool, spec, h.service.GetSnippet)
	case "ResolvePage":
		register(h, server, tool, spec, h.service.ResolvePage)
	case "GetSummary":
		register(h, server, tool, spec, h.service.GetSummary)
	case "GetContent":
		register(h, server, tool, spec, h.service.GetContent)
	case "GetHTML":
		register(h, server, tool, spec, h.service.GetHTML)
	case "GetSection":
		register(h, server, tool, spec, h.service.GetSection)
	case "GetSections":
		register(h, server, tool, spec, h.service.GetSections)
	case "GetLinks":
		register(h, server, tool, spec, h.service.GetLinks)
	case "GetReferences":
		register(h, server, tool, spec, h.service.GetReferences)
	case "GetImages":
		register(h, server, tool, spec, h.service.GetImages)
	case "GetCategories":
		register(h, server, tool, spec, h.service.GetCategories)
	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the service method with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, Result, error) {
		defer h.recoverPanic(spec.Name)

		// Start trace span
		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.category", spec.Category),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	case wikipedia.SearchArgs:
		attrs = append(attrs, "query", a.Query)
	case SnippetArgs:
		attrs = append(attrs, "query", a.Query)
	case PageArgs:
		attrs = append(attrs, "title", a.Title)
	case SectionArgs:
		attrs = append(attrs, "title", a.Title, "section", a.Section)
	}

	// Add extractable fields from result
	switch r := result.(type) {
	case wikipedia.SearchResult:
		attrs = append(attrs, "results_count", len(r.Titles))
	case ResolveResult:
		attrs = append(attrs, "page_id", r.PageID)
	case SummaryResult:
		attrs = append(attrs, "summary_chars", len(r.Summary))
	case ContentResult:
		attrs = append(attrs, "content_chars", len(r.Content), "revision_id", r.RevisionID)
	case HTMLResult:
		attrs = append(attrs, "html_chars", len(r.HTML))
	case SectionResult:
		attrs = append(attrs, "section_chars", len(r.Text))
	case SectionsResult:
		attrs = append(attrs, "sections_count", len(r.Sections))
	case LinksResult:
		attrs = append(attrs, "links_count", r.Count)
	case ReferencesResult:
		attrs = append(attrs, "references_count", r.Count)
	case ImagesResult:
		attrs = append(attrs, "images_count", r.Count)
	case CategoriesResult:
		attrs = append(attrs, "categories_count", r.Count)
	}

	h.logger.Info("Tool executed", attrs...)
}
