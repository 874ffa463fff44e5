package wikipedia

import (
	"context"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/olgasafonova/wikipedia-mcp-server/internal/infra"
	"github.com/olgasafonova/wikipedia-mcp-server/metrics"
)

// Page is a resolved page whose expensive fields load on first access.
// Each field has its own write-once slot: the first accessor pays for the
// network round trip, concurrent callers of the same field share that
// request, and later callers get the cached value. Values are never
// invalidated for the lifetime of the Page.
type Page struct {
	client   *Client
	identity PageIdentity

	html    infra.Slot[string]
	content infra.Slot[contentData]
	summary infra.Slot[string]
}

// contentData is everything the content query returns in one response.
// Revision IDs ride along with the extract so that Content, RevisionID and
// ParentID together cost exactly one request.
type contentData struct {
	text       string
	revisionID int
	parentID   int
}

func newPage(c *Client, identity PageIdentity) *Page {
	return &Page{client: c, identity: identity}
}

// Identity returns the canonical identity established at resolution.
func (p *Page) Identity() PageIdentity { return p.identity }

// Title returns the canonical page title.
func (p *Page) Title() string { return p.identity.Title }

// PageID returns the numeric page ID.
func (p *Page) PageID() int { return p.identity.PageID }

// URL returns the canonical page URL.
func (p *Page) URL() string { return p.identity.URL }

// HTML returns the rendered HTML of the page's current revision.
func (p *Page) HTML(ctx context.Context) (string, error) {
	_, cached := p.html.Peek()
	metrics.RecordFieldAccess("html", cached)
	return p.html.Load(ctx, p.fetchHTML)
}

// Content returns the plain-text extract of the page.
func (p *Page) Content(ctx context.Context) (string, error) {
	data, err := p.loadContent(ctx)
	if err != nil {
		return "", err
	}
	return data.text, nil
}

// RevisionID returns the ID of the page's current revision. It is
// populated by the same request as Content and never issues its own.
func (p *Page) RevisionID(ctx context.Context) (int, error) {
	data, err := p.loadContent(ctx)
	if err != nil {
		return 0, err
	}
	return data.revisionID, nil
}

// ParentID returns the ID of the revision preceding the current one.
func (p *Page) ParentID(ctx context.Context) (int, error) {
	data, err := p.loadContent(ctx)
	if err != nil {
		return 0, err
	}
	return data.parentID, nil
}

// Summary returns the plain-text intro of the page.
func (p *Page) Summary(ctx context.Context) (string, error) {
	_, cached := p.summary.Peek()
	metrics.RecordFieldAccess("summary", cached)
	return p.summary.Load(ctx, p.fetchSummary)
}

func (p *Page) loadContent(ctx context.Context) (contentData, error) {
	_, cached := p.content.Peek()
	metrics.RecordFieldAccess("content", cached)
	return p.content.Load(ctx, p.fetchContent)
}

func (p *Page) fetchHTML(ctx context.Context) (string, error) {
	params := url.Values{}
	params.Set("prop", "revisions")
	params.Set("rvprop", "content")
	params.Set("rvparse", "")
	params.Set("rvlimit", "1")
	params.Set("titles", p.identity.Title)

	resp, err := p.client.apiRequest(ctx, params)
	if err != nil {
		return "", err
	}
	return renderedRevision(resp)
}

func (p *Page) fetchContent(ctx context.Context) (contentData, error) {
	params := url.Values{}
	params.Set("prop", "extracts|revisions")
	params.Set("explaintext", "")
	params.Set("rvprop", "ids")
	params.Set("titles", p.identity.Title)

	resp, err := p.client.apiRequest(ctx, params)
	if err != nil {
		return contentData{}, err
	}

	page, err := singlePage(resp)
	if err != nil {
		return contentData{}, err
	}

	extract, ok := page["extract"].(string)
	if !ok {
		return contentData{}, &MalformedResponseError{Field: "extract", Path: "query.pages"}
	}

	revisions := getSlice(page["revisions"])
	if len(revisions) == 0 {
		return contentData{}, &MalformedResponseError{Field: "revisions", Path: "query.pages"}
	}
	rev := getMap(revisions[0])
	if rev == nil {
		return contentData{}, &MalformedResponseError{Field: "revision entry", Path: "revisions"}
	}

	return contentData{
		text:       extract,
		revisionID: getInt(rev["revid"]),
		parentID:   getInt(rev["parentid"]),
	}, nil
}

func (p *Page) fetchSummary(ctx context.Context) (string, error) {
	params := url.Values{}
	params.Set("prop", "extracts")
	params.Set("explaintext", "")
	params.Set("exintro", "")
	params.Set("titles", p.identity.Title)

	resp, err := p.client.apiRequest(ctx, params)
	if err != nil {
		return "", err
	}

	page, err := singlePage(resp)
	if err != nil {
		return "", err
	}

	extract, ok := page["extract"].(string)
	if !ok {
		return "", &MalformedResponseError{Field: "extract", Path: "query.pages"}
	}
	return extract, nil
}

// Section returns the body text of the named section: everything between
// the "== Title ==" marker and the next heading. Loading content is the
// only request it can trigger; the slicing itself is pure string work.
func (p *Page) Section(ctx context.Context, title string) (string, error) {
	content, err := p.Content(ctx)
	if err != nil {
		return "", err
	}

	marker := "== " + title + " =="
	idx := strings.Index(content, marker)
	if idx < 0 {
		return "", &SectionNotFoundError{Title: p.identity.Title, Section: title}
	}

	rest := content[idx+len(marker):]
	if next := strings.Index(rest, "=="); next >= 0 {
		rest = rest[:next]
	}
	return strings.TrimSpace(strings.TrimLeft(rest, "=")), nil
}

var headingRegex = regexp.MustCompile(`(?m)^(={2,6})\s*(.+?)\s*=+\s*$`)

// Sections returns the page's heading outline parsed from the plain-text
// content. Level follows the marker depth: "==" is 2, "===" is 3.
func (p *Page) Sections(ctx context.Context) ([]SectionHeading, error) {
	content, err := p.Content(ctx)
	if err != nil {
		return nil, err
	}

	matches := headingRegex.FindAllStringSubmatch(content, -1)
	headings := make([]SectionHeading, 0, len(matches))
	for _, m := range matches {
		headings = append(headings, SectionHeading{
			Title: strings.TrimSpace(m[2]),
			Level: len(m[1]),
		})
	}
	return headings, nil
}

// pageIDKey is the JSON object key this page appears under in query.pages.
func (p *Page) pageIDKey() string {
	return strconv.Itoa(p.identity.PageID)
}
