package wikipedia

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// Search runs a full-text search and returns page titles in relevance
// order. With Suggestion set, the API's spelling suggestion (when it has
// one) comes back alongside the titles.
func (c *Client) Search(ctx context.Context, args SearchArgs) (SearchResult, error) {
	if args.Query == "" {
		return SearchResult{}, fmt.Errorf("query is required")
	}

	limit := args.Limit
	if limit <= 0 {
		limit = 10
	}

	params := url.Values{}
	params.Set("list", "search")
	params.Set("srsearch", args.Query)
	params.Set("srlimit", strconv.Itoa(limit))
	params.Set("srprop", "")
	if args.Suggestion {
		params.Set("srinfo", "suggestion")
	}

	resp, err := c.apiRequest(ctx, params)
	if err != nil {
		return SearchResult{}, searchError(err)
	}

	query := getMap(resp["query"])
	if query == nil {
		return SearchResult{}, &MalformedResponseError{Field: "query", Path: "response"}
	}

	hits := getSlice(query["search"])
	titles := make([]string, 0, len(hits))
	for _, h := range hits {
		hit := getMap(h)
		if hit == nil {
			continue
		}
		if title := getString(hit["title"]); title != "" {
			titles = append(titles, title)
		}
	}

	result := SearchResult{Titles: titles}
	if args.Suggestion {
		if info := getMap(query["searchinfo"]); info != nil {
			result.Suggestion = getString(info["suggestion"])
		}
	}
	return result, nil
}

// SummarySnippet searches for query and returns the top hit's snippet as
// plain text with a trailing ellipsis. No hits means PageNotFoundError.
func (c *Client) SummarySnippet(ctx context.Context, query string, limit int) (string, error) {
	if query == "" {
		return "", fmt.Errorf("query is required")
	}
	if limit <= 0 {
		limit = 1
	}

	params := url.Values{}
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", strconv.Itoa(limit))
	params.Set("srprop", "snippet")

	resp, err := c.apiRequest(ctx, params)
	if err != nil {
		return "", searchError(err)
	}

	q := getMap(resp["query"])
	if q == nil {
		return "", &MalformedResponseError{Field: "query", Path: "response"}
	}

	hits := getSlice(q["search"])
	if len(hits) == 0 {
		return "", &PageNotFoundError{Title: query}
	}

	hit := getMap(hits[0])
	if hit == nil {
		return "", &MalformedResponseError{Field: "search entry", Path: "query.search"}
	}

	return stripHTMLTags(getString(hit["snippet"])) + "...", nil
}

// searchError maps API-reported failures onto the search taxonomy.
// Server-side timeouts keep their own type; anything else the API reports
// becomes a SearchServiceError. Transport and decoding failures pass
// through untouched.
func searchError(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return &SearchServiceError{Message: apiErr.Info}
	}
	return err
}
