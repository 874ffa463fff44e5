package wikipedia

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strconv"
	"testing"
	"time"
)

// createMockClient creates a client that talks to a mock server
func createMockClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	config := &Config{
		Locale:    "en",
		BaseURL:   server.URL,
		Timeout:   5 * time.Second,
		UserAgent: "TestClient/1.0",
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewClient(config, logger)
}

// mockWikipediaServer creates a test server that returns mock API responses.
// The client uses GET, so handlers read parameters from r.URL.Query().
func mockWikipediaServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(handler)
}

func writeJSON(t *testing.T, w http.ResponseWriter, response map[string]interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}

// resolveResponse builds the info|pageprops response for an ordinary page.
func resolveResponse(title string, pageID int) map[string]interface{} {
	return map[string]interface{}{
		"query": map[string]interface{}{
			"pages": map[string]interface{}{
				strconv.Itoa(pageID): map[string]interface{}{
					"pageid":  float64(pageID),
					"title":   title,
					"fullurl": "https://en.wikipedia.org/wiki/" + url.PathEscape(title),
				},
			},
		},
	}
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  int
	}{
		{"float64 from JSON", float64(42), 42},
		{"plain int", 7, 7},
		{"nil", nil, 0},
		{"string", "42", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getInt(tt.input); got != tt.want {
				t.Errorf("getInt(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestGetString(t *testing.T) {
	if got := getString("hello"); got != "hello" {
		t.Errorf("getString(string) = %q, want %q", got, "hello")
	}
	if got := getString(nil); got != "" {
		t.Errorf("getString(nil) = %q, want empty", got)
	}
	if got := getString(float64(1)); got != "" {
		t.Errorf("getString(float64) = %q, want empty", got)
	}
}

func TestGetMapAndSlice(t *testing.T) {
	if getMap("not a map") != nil {
		t.Error("getMap on non-map should return nil")
	}
	if getSlice("not a slice") != nil {
		t.Error("getSlice on non-slice should return nil")
	}
	m := map[string]interface{}{"k": "v"}
	if got := getMap(interface{}(m)); got["k"] != "v" {
		t.Error("getMap lost the map contents")
	}
}

func TestStripHTMLTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "removes tags",
			input: "<span class=\"searchmatch\">Go</span> is a language",
			want:  "Go is a language",
		},
		{
			name:  "decodes entities",
			input: "Tom &amp; Jerry",
			want:  "Tom & Jerry",
		},
		{
			name:  "trims whitespace",
			input: "  <b>text</b>  ",
			want:  "text",
		},
		{
			name:  "plain text unchanged",
			input: "no markup here",
			want:  "no markup here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripHTMLTags(tt.input); got != tt.want {
				t.Errorf("stripHTMLTags(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestQueryOperation(t *testing.T) {
	tests := []struct {
		name   string
		params url.Values
		want   string
	}{
		{
			name:   "generator wins",
			params: url.Values{"generator": {"images"}, "prop": {"imageinfo"}},
			want:   "generator=images",
		},
		{
			name:   "list",
			params: url.Values{"list": {"search"}},
			want:   "list=search",
		},
		{
			name:   "prop",
			params: url.Values{"prop": {"extracts|revisions"}},
			want:   "prop=extracts|revisions",
		},
		{
			name:   "bare query",
			params: url.Values{},
			want:   "query",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := queryOperation(tt.params); got != tt.want {
				t.Errorf("queryOperation = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSinglePage(t *testing.T) {
	tests := []struct {
		name    string
		resp    map[string]interface{}
		wantErr bool
	}{
		{
			name:    "no query",
			resp:    map[string]interface{}{},
			wantErr: true,
		},
		{
			name: "no pages",
			resp: map[string]interface{}{
				"query": map[string]interface{}{},
			},
			wantErr: true,
		},
		{
			name: "empty pages",
			resp: map[string]interface{}{
				"query": map[string]interface{}{
					"pages": map[string]interface{}{},
				},
			},
			wantErr: true,
		},
		{
			name:    "one page",
			resp:    resolveResponse("Test", 1),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := singlePage(tt.resp)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				if !IsMalformedResponse(err) {
					t.Errorf("expected MalformedResponseError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if getString(page["title"]) != "Test" {
				t.Errorf("got title %q, want %q", getString(page["title"]), "Test")
			}
		})
	}
}
