package wikipedia

// PageRef identifies a page to look up. Exactly one of Title or PageID
// should be set; when both are present Title wins.
type PageRef struct {
	Title  string `json:"title,omitempty" jsonschema:"Page title to look up"`
	PageID int    `json:"page_id,omitempty" jsonschema:"Numeric page ID to look up"`
}

// PageIdentity is the canonical identity of a resolved page, taken verbatim
// from the API response.
type PageIdentity struct {
	Title  string `json:"title"`
	PageID int    `json:"page_id"`
	URL    string `json:"url"`
}

// Equal reports whether two identities refer to the same page.
func (p PageIdentity) Equal(other PageIdentity) bool {
	return p.PageID == other.PageID && p.Title == other.Title
}

// SearchArgs are the parameters for a full-text search.
type SearchArgs struct {
	Query      string `json:"query" jsonschema:"Search text"`
	Limit      int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 10)"`
	Suggestion bool   `json:"suggestion,omitempty" jsonschema:"Ask the API for a spelling suggestion"`
}

// SearchResult holds search hits in relevance order plus an optional
// spelling suggestion when one was requested and available.
type SearchResult struct {
	Titles     []string `json:"titles"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// SectionHeading is one entry of a page's heading outline.
type SectionHeading struct {
	Title string `json:"title"`
	Level int    `json:"level"`
}

// Image describes a file used on a page.
type Image struct {
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}
