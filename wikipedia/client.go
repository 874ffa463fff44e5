// Package wikipedia is a client library for the MediaWiki query API of
// Wikipedia language editions. It resolves titles through redirects and
// disambiguation pages, loads page content lazily, walks continuation-paged
// listings, and searches.
package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/codes"

	"github.com/olgasafonova/wikipedia-mcp-server/metrics"
	"github.com/olgasafonova/wikipedia-mcp-server/tracing"
)

// Client handles communication with the Wikipedia API
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new Wikipedia API client
func NewClient(config *Config, logger *slog.Logger) *Client {
	// Configure HTTP transport for better connection reuse and performance
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		DisableCompression:  false,
		ForceAttemptHTTP2:   true,
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout:   config.Timeout,
			Transport: transport,
		},
		logger: logger,
	}
}

// Close releases idle connections held by the client
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// API error info strings that signal a server-side timeout rather than a
// bad request. These come back with HTTP 200.
const (
	timedOutInfo      = "HTTP request timed out."
	poolQueueFullInfo = "Pool queue is full"
)

// apiRequest makes a single GET request to the API. There are no automatic
// retries; callers decide whether a failure is worth repeating.
func (c *Client) apiRequest(ctx context.Context, params url.Values) (map[string]interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, &TransportError{Err: err}
	}

	params.Set("action", "query")
	params.Set("format", "json")
	op := queryOperation(params)

	ctx, span := tracing.StartSpan(ctx, "wikipedia.api_request")
	defer span.End()
	tracing.AddWikiAttributes(span, op, params.Get("titles"))

	reqURL := c.config.BaseURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.config.UserAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start).Seconds()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		metrics.RecordAPIRequest(op, "error", duration)
		c.logger.Warn("API request failed", "url", c.config.BaseURL, "error", err)
		return nil, &TransportError{Err: err}
	}

	body, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		metrics.RecordAPIRequest(op, "error", duration)
		return nil, &TransportError{Err: readErr}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordAPIRequest(op, fmt.Sprintf("http_%d", resp.StatusCode), duration)
		err := fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
		span.SetStatus(codes.Error, err.Error())
		return nil, &TransportError{Err: err}
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		metrics.RecordAPIRequest(op, "bad_json", duration)
		return nil, &MalformedResponseError{Field: "json body", Path: "response"}
	}

	if errObj := getMap(result["error"]); errObj != nil {
		info := getString(errObj["info"])
		metrics.RecordAPIRequest(op, "api_error", duration)
		span.SetStatus(codes.Error, info)
		if info == timedOutInfo || info == poolQueueFullInfo {
			return nil, &RequestTimeoutError{Info: info}
		}
		return nil, &APIError{Code: getString(errObj["code"]), Info: info}
	}

	metrics.RecordAPIRequest(op, "success", duration)
	span.SetStatus(codes.Ok, "")
	return result, nil
}

// queryOperation labels a request for metrics and traces by the query
// module it exercises.
func queryOperation(params url.Values) string {
	if g := params.Get("generator"); g != "" {
		return "generator=" + g
	}
	if l := params.Get("list"); l != "" {
		return "list=" + l
	}
	if p := params.Get("prop"); p != "" {
		return "prop=" + p
	}
	return "query"
}

// singlePage digs out the lone entry of query.pages. Most page-scoped
// queries return exactly one page keyed by its ID.
func singlePage(resp map[string]interface{}) (map[string]interface{}, error) {
	query := getMap(resp["query"])
	if query == nil {
		return nil, &MalformedResponseError{Field: "query", Path: "response"}
	}
	pages := getMap(query["pages"])
	if pages == nil {
		return nil, &MalformedResponseError{Field: "pages", Path: "query"}
	}
	for _, pageData := range pages {
		page := getMap(pageData)
		if page == nil {
			continue
		}
		return page, nil
	}
	return nil, &MalformedResponseError{Field: "page entry", Path: "query.pages"}
}
