package tools

import (
	"context"
	"log/slog"

	"github.com/olgasafonova/wikipedia-mcp-server/wikipedia"
)

// Service adapts the wikipedia client to the flat Args/Result methods the
// tool registry dispatches to. Every method resolves the page fresh; the
// lazy per-page cache only helps within a single call (e.g. section after
// content), which keeps tool results consistent with the live wiki.
type Service struct {
	client *wikipedia.Client
	logger *slog.Logger
}

// NewService creates a new tool service backed by client.
func NewService(client *wikipedia.Client, logger *slog.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// PageArgs identify a page for the page-scoped tools.
type PageArgs struct {
	Title       string `json:"title,omitempty" jsonschema:"Page title to look up"`
	PageID      int    `json:"page_id,omitempty" jsonschema:"Numeric page ID to look up instead of a title"`
	NoRedirect  bool   `json:"no_redirect,omitempty" jsonschema:"Fail instead of following redirects"`
	AutoSuggest bool   `json:"auto_suggest,omitempty" jsonschema:"Search first and use the suggested spelling"`
}

func (s *Service) page(ctx context.Context, args PageArgs) (*wikipedia.Page, error) {
	var opts []wikipedia.PageOption
	if args.NoRedirect {
		opts = append(opts, wikipedia.WithoutRedirects())
	}
	if args.AutoSuggest {
		opts = append(opts, wikipedia.WithAutoSuggest())
	}
	return s.client.Page(ctx, wikipedia.PageRef{Title: args.Title, PageID: args.PageID}, opts...)
}

// ResolveResult is the canonical identity of a page.
type ResolveResult struct {
	Title  string `json:"title"`
	PageID int    `json:"page_id"`
	URL    string `json:"url"`
}

// ResolvePage resolves a title or page ID through redirects to its
// canonical identity.
func (s *Service) ResolvePage(ctx context.Context, args PageArgs) (ResolveResult, error) {
	page, err := s.page(ctx, args)
	if err != nil {
		return ResolveResult{}, err
	}
	id := page.Identity()
	return ResolveResult{Title: id.Title, PageID: id.PageID, URL: id.URL}, nil
}

// SummaryResult holds a page's intro text.
type SummaryResult struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// GetSummary returns the plain-text intro of a page.
func (s *Service) GetSummary(ctx context.Context, args PageArgs) (SummaryResult, error) {
	page, err := s.page(ctx, args)
	if err != nil {
		return SummaryResult{}, err
	}
	summary, err := page.Summary(ctx)
	if err != nil {
		return SummaryResult{}, err
	}
	return SummaryResult{Title: page.Title(), Summary: summary}, nil
}

// ContentResult holds a page's full plain-text content and revision IDs.
type ContentResult struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	RevisionID int    `json:"revision_id"`
	ParentID   int    `json:"parent_id"`
}

// GetContent returns the full plain-text content of a page.
func (s *Service) GetContent(ctx context.Context, args PageArgs) (ContentResult, error) {
	page, err := s.page(ctx, args)
	if err != nil {
		return ContentResult{}, err
	}
	content, err := page.Content(ctx)
	if err != nil {
		return ContentResult{}, err
	}
	revID, err := page.RevisionID(ctx)
	if err != nil {
		return ContentResult{}, err
	}
	parentID, err := page.ParentID(ctx)
	if err != nil {
		return ContentResult{}, err
	}
	return ContentResult{Title: page.Title(), Content: content, RevisionID: revID, ParentID: parentID}, nil
}

// HTMLResult holds a page's rendered HTML.
type HTMLResult struct {
	Title string `json:"title"`
	HTML  string `json:"html"`
}

// GetHTML returns the rendered HTML of a page.
func (s *Service) GetHTML(ctx context.Context, args PageArgs) (HTMLResult, error) {
	page, err := s.page(ctx, args)
	if err != nil {
		return HTMLResult{}, err
	}
	html, err := page.HTML(ctx)
	if err != nil {
		return HTMLResult{}, err
	}
	return HTMLResult{Title: page.Title(), HTML: html}, nil
}

// SectionArgs identify one section of a page.
type SectionArgs struct {
	Title       string `json:"title,omitempty" jsonschema:"Page title to look up"`
	PageID      int    `json:"page_id,omitempty" jsonschema:"Numeric page ID to look up instead of a title"`
	Section     string `json:"section" jsonschema:"Section heading to extract"`
	AutoSuggest bool   `json:"auto_suggest,omitempty" jsonschema:"Search first and use the suggested spelling"`
}

// SectionResult holds the text of one section.
type SectionResult struct {
	Title   string `json:"title"`
	Section string `json:"section"`
	Text    string `json:"text"`
}

// GetSection returns the body text of a named section.
func (s *Service) GetSection(ctx context.Context, args SectionArgs) (SectionResult, error) {
	page, err := s.page(ctx, PageArgs{Title: args.Title, PageID: args.PageID, AutoSuggest: args.AutoSuggest})
	if err != nil {
		return SectionResult{}, err
	}
	text, err := page.Section(ctx, args.Section)
	if err != nil {
		return SectionResult{}, err
	}
	return SectionResult{Title: page.Title(), Section: args.Section, Text: text}, nil
}

// SectionsResult holds a page's heading outline.
type SectionsResult struct {
	Title    string                     `json:"title"`
	Sections []wikipedia.SectionHeading `json:"sections"`
}

// GetSections returns the heading outline of a page.
func (s *Service) GetSections(ctx context.Context, args PageArgs) (SectionsResult, error) {
	page, err := s.page(ctx, args)
	if err != nil {
		return SectionsResult{}, err
	}
	sections, err := page.Sections(ctx)
	if err != nil {
		return SectionsResult{}, err
	}
	return SectionsResult{Title: page.Title(), Sections: sections}, nil
}

// LinksResult holds the internal links of a page.
type LinksResult struct {
	Title string   `json:"title"`
	Links []string `json:"links"`
	Count int      `json:"count"`
}

// GetLinks returns the main-namespace pages a page links to.
func (s *Service) GetLinks(ctx context.Context, args PageArgs) (LinksResult, error) {
	page, err := s.page(ctx, args)
	if err != nil {
		return LinksResult{}, err
	}
	links, err := page.Links(ctx)
	if err != nil {
		return LinksResult{}, err
	}
	return LinksResult{Title: page.Title(), Links: links, Count: len(links)}, nil
}

// ReferencesResult holds the external URLs cited on a page.
type ReferencesResult struct {
	Title      string   `json:"title"`
	References []string `json:"references"`
	Count      int      `json:"count"`
}

// GetReferences returns the external URLs cited on a page.
func (s *Service) GetReferences(ctx context.Context, args PageArgs) (ReferencesResult, error) {
	page, err := s.page(ctx, args)
	if err != nil {
		return ReferencesResult{}, err
	}
	refs, err := page.References(ctx)
	if err != nil {
		return ReferencesResult{}, err
	}
	return ReferencesResult{Title: page.Title(), References: refs, Count: len(refs)}, nil
}

// ImagesResult holds the files used on a page.
type ImagesResult struct {
	Title  string            `json:"title"`
	Images []wikipedia.Image `json:"images"`
	Count  int               `json:"count"`
}

// GetImages returns the files used on a page with their URLs.
func (s *Service) GetImages(ctx context.Context, args PageArgs) (ImagesResult, error) {
	page, err := s.page(ctx, args)
	if err != nil {
		return ImagesResult{}, err
	}
	images, err := page.Images(ctx)
	if err != nil {
		return ImagesResult{}, err
	}
	return ImagesResult{Title: page.Title(), Images: images, Count: len(images)}, nil
}

// CategoriesResult holds the categories of a page.
type CategoriesResult struct {
	Title      string   `json:"title"`
	Categories []string `json:"categories"`
	Count      int      `json:"count"`
}

// GetCategories returns the categories of a page without the namespace prefix.
func (s *Service) GetCategories(ctx context.Context, args PageArgs) (CategoriesResult, error) {
	page, err := s.page(ctx, args)
	if err != nil {
		return CategoriesResult{}, err
	}
	categories, err := page.Categories(ctx)
	if err != nil {
		return CategoriesResult{}, err
	}
	return CategoriesResult{Title: page.Title(), Categories: categories, Count: len(categories)}, nil
}

// Search runs a full-text search.
func (s *Service) Search(ctx context.Context, args wikipedia.SearchArgs) (wikipedia.SearchResult, error) {
	return s.client.Search(ctx, args)
}

// SnippetArgs are the parameters for a snippet lookup.
type SnippetArgs struct {
	Query string `json:"query" jsonschema:"Search text"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of hits to consider (default 1)"`
}

// SnippetResult holds the top hit's snippet for a query.
type SnippetResult struct {
	Query   string `json:"query"`
	Snippet string `json:"snippet"`
}

// GetSnippet returns the top search hit's snippet as plain text.
func (s *Service) GetSnippet(ctx context.Context, args SnippetArgs) (SnippetResult, error) {
	snippet, err := s.client.SummarySnippet(ctx, args.Query, args.Limit)
	if err != nil {
		return SnippetResult{}, err
	}
	return SnippetResult{Query: args.Query, Snippet: snippet}, nil
}
