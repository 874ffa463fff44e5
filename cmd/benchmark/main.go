package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/olgasafonova/wikipedia-mcp-server/wikipedia"
)

// measureLazyFields compares the first access of a lazy page field (one
// network round trip) against repeated access (served from the slot).
func measureLazyFields() {
	config, err := wikipedia.LoadConfig()
	if err != nil {
		fmt.Printf("Config error: %v\n", err)
		return
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	client := wikipedia.NewClient(config, logger)
	defer client.Close()
	ctx := context.Background()

	fmt.Println("=== Lazy Field Performance ===")
	fmt.Println()

	page, err := client.Page(ctx, wikipedia.PageRef{Title: "Go (programming language)"})
	if err != nil {
		fmt.Printf("Resolve error: %v\n", err)
		return
	}

	fmt.Println("1. Summary Slot:")
	start := time.Now()
	if _, err := page.Summary(ctx); err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	firstCall := time.Since(start)
	fmt.Printf("   First call (network):  %v\n", firstCall)

	start = time.Now()
	_, _ = page.Summary(ctx)
	secondCall := time.Since(start)
	fmt.Printf("   Second call (cached):  %v\n", secondCall)
	fmt.Printf("   Speedup: %.0fx faster\n", float64(firstCall)/float64(secondCall))
	fmt.Println()

	fmt.Println("2. Content + Revision IDs (single shared request):")
	start = time.Now()
	if _, err := page.Content(ctx); err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	contentCall := time.Since(start)
	fmt.Printf("   Content fetch:         %v\n", contentCall)

	start = time.Now()
	revID, _ := page.RevisionID(ctx)
	parentID, _ := page.ParentID(ctx)
	idCalls := time.Since(start)
	fmt.Printf("   RevisionID + ParentID: %v (revid=%d parentid=%d, no extra requests)\n", idCalls, revID, parentID)
	fmt.Println()
}

// measureSearchBaseline times a plain search request for comparison; search
// results are never cached.
func measureSearchBaseline() {
	config, err := wikipedia.LoadConfig()
	if err != nil {
		fmt.Printf("Config error: %v\n", err)
		return
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	client := wikipedia.NewClient(config, logger)
	defer client.Close()
	ctx := context.Background()

	fmt.Println("=== Search Baseline (no caching) ===")
	fmt.Println()

	start := time.Now()
	result, err := client.Search(ctx, wikipedia.SearchArgs{Query: "golang concurrency", Limit: 10})
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	fmt.Printf("   Search time: %v (%d results)\n", time.Since(start), len(result.Titles))
	fmt.Println()
}

// measureListingWalk times a full continuation walk over a page's links.
func measureListingWalk() {
	config, err := wikipedia.LoadConfig()
	if err != nil {
		fmt.Printf("Config error: %v\n", err)
		return
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	client := wikipedia.NewClient(config, logger)
	defer client.Close()
	ctx := context.Background()

	fmt.Println("=== Continuation Walk ===")
	fmt.Println()

	page, err := client.Page(ctx, wikipedia.PageRef{Title: "Go (programming language)"})
	if err != nil {
		fmt.Printf("Resolve error: %v\n", err)
		return
	}

	start := time.Now()
	links, err := page.Links(ctx)
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	walkTime := time.Since(start)
	fmt.Printf("   Walked %d links in %v\n", len(links), walkTime)
	if len(links) > 0 {
		fmt.Printf("   Average per link: %v\n", walkTime/time.Duration(len(links)))
	}
	fmt.Println()
}

func main() {
	fmt.Println("Wikipedia MCP Server - Performance Measurements")
	fmt.Println("================================================")
	fmt.Println()

	measureLazyFields()
	measureSearchBaseline()
	measureListingWalk()

	fmt.Println("=== Summary ===")
	fmt.Println()
	fmt.Println("Key behaviors:")
	fmt.Println("• Lazy slots: repeated field access is served from memory, not the network")
	fmt.Println("• Shared fetch: Content, RevisionID and ParentID cost one request together")
	fmt.Println("• Continuation: listings issue one request per batch, stopping early stops requesting")
	fmt.Println("• Connection reuse: HTTP/2 + connection pooling reduces latency")
}
