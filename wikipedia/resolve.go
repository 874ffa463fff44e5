package wikipedia

import (
	"context"
	"net/url"
	"strconv"
)

// MaxRedirectHops bounds redirect chains. Wikis can contain redirect loops;
// past this many hops resolution gives up with TooManyRedirectsError.
const MaxRedirectHops = 20

// PageOption adjusts how a page lookup behaves.
type PageOption func(*pageOptions)

type pageOptions struct {
	followRedirects bool
	preload         bool
	autoSuggest     bool
}

// WithoutRedirects makes the lookup fail with RedirectNotFollowedError when
// the title is a redirect instead of following it.
func WithoutRedirects() PageOption {
	return func(o *pageOptions) { o.followRedirects = false }
}

// WithPreload eagerly fetches content and summary after resolution.
// Preload failures are logged and do not fail the lookup.
func WithPreload() PageOption {
	return func(o *pageOptions) { o.preload = true }
}

// WithAutoSuggest runs a search first and looks up the spelling suggestion,
// or the top hit when there is no suggestion.
func WithAutoSuggest() PageOption {
	return func(o *pageOptions) { o.autoSuggest = true }
}

// Page resolves ref to a live page. Redirects are followed by default,
// disambiguation pages surface as DisambiguationError with the candidate
// titles, and missing pages as PageNotFoundError.
func (c *Client) Page(ctx context.Context, ref PageRef, opts ...PageOption) (*Page, error) {
	options := pageOptions{followRedirects: true}
	for _, opt := range opts {
		opt(&options)
	}

	if options.autoSuggest && ref.Title != "" {
		suggested, err := c.suggestTitle(ctx, ref.Title)
		if err != nil {
			return nil, err
		}
		ref = PageRef{Title: suggested}
	}

	identity, err := c.resolve(ctx, ref, options.followRedirects)
	if err != nil {
		return nil, err
	}

	page := newPage(c, identity)

	if options.preload {
		if _, err := page.Content(ctx); err != nil {
			c.logger.Warn("Preload of content failed", "title", identity.Title, "error", err)
		}
		if _, err := page.Summary(ctx); err != nil {
			c.logger.Warn("Preload of summary failed", "title", identity.Title, "error", err)
		}
	}

	return page, nil
}

// suggestTitle searches for title and returns the API's spelling suggestion,
// falling back to the top hit.
func (c *Client) suggestTitle(ctx context.Context, title string) (string, error) {
	result, err := c.Search(ctx, SearchArgs{Query: title, Limit: 1, Suggestion: true})
	if err != nil {
		return "", err
	}
	if result.Suggestion != "" {
		return result.Suggestion, nil
	}
	if len(result.Titles) > 0 {
		return result.Titles[0], nil
	}
	return "", &PageNotFoundError{Title: title}
}

// resolve runs the bounded redirect loop. Each hop issues one info query;
// the loop ends on the first response that is not a redirect.
func (c *Client) resolve(ctx context.Context, ref PageRef, follow bool) (PageIdentity, error) {
	current := ref
	for hop := 0; hop <= MaxRedirectHops; hop++ {
		identity, target, err := c.resolveStep(ctx, current, follow)
		if err != nil {
			return PageIdentity{}, err
		}
		if target == "" {
			return identity, nil
		}
		current = PageRef{Title: target}
	}
	return PageIdentity{}, &TooManyRedirectsError{Title: ref.Title, Hops: MaxRedirectHops}
}

// resolveStep issues one resolution query. It returns either a final
// identity or, for a followed redirect, the target title for the next hop.
func (c *Client) resolveStep(ctx context.Context, ref PageRef, follow bool) (PageIdentity, string, error) {
	params := url.Values{}
	params.Set("prop", "info|pageprops")
	params.Set("inprop", "url")
	params.Set("ppprop", "disambiguation")
	params.Set("redirects", "")
	if ref.Title != "" {
		params.Set("titles", ref.Title)
	} else {
		params.Set("pageids", strconv.Itoa(ref.PageID))
	}

	resp, err := c.apiRequest(ctx, params)
	if err != nil {
		return PageIdentity{}, "", err
	}

	query := getMap(resp["query"])
	if query == nil {
		return PageIdentity{}, "", &MalformedResponseError{Field: "query", Path: "response"}
	}

	page, err := singlePage(resp)
	if err != nil {
		return PageIdentity{}, "", err
	}

	if _, missing := page["missing"]; missing {
		return PageIdentity{}, "", &PageNotFoundError{Title: ref.Title}
	}

	// The redirect entry must originate from the title we asked about,
	// after any normalization the API applied. Anything else means the
	// response belongs to a different request.
	if redirects := getSlice(query["redirects"]); len(redirects) > 0 {
		redirect := getMap(redirects[0])
		if redirect == nil {
			return PageIdentity{}, "", &MalformedResponseError{Field: "redirect entry", Path: "query.redirects"}
		}

		expected := ref.Title
		if normalized := getSlice(query["normalized"]); len(normalized) > 0 {
			if norm := getMap(normalized[0]); norm != nil && getString(norm["from"]) == ref.Title {
				expected = getString(norm["to"])
			}
		}

		from := getString(redirect["from"])
		target := getString(redirect["to"])
		if from != expected {
			return PageIdentity{}, "", &UnexpectedRedirectSourceError{Expected: expected, Got: from}
		}
		if !follow {
			return PageIdentity{}, "", &RedirectNotFollowedError{Title: ref.Title, Target: target}
		}
		return PageIdentity{}, target, nil
	}

	if props := getMap(page["pageprops"]); props != nil {
		if _, ok := props["disambiguation"]; ok {
			return PageIdentity{}, "", c.disambiguationError(ctx, page)
		}
	}

	identity := PageIdentity{
		Title:  getString(page["title"]),
		PageID: getInt(page["pageid"]),
		URL:    getString(page["fullurl"]),
	}
	if identity.Title == "" || identity.PageID == 0 {
		return PageIdentity{}, "", &MalformedResponseError{Field: "title/pageid", Path: "query.pages"}
	}
	return identity, "", nil
}

// disambiguationError fetches the rendered disambiguation page and builds
// the error carrying its candidate titles.
func (c *Client) disambiguationError(ctx context.Context, page map[string]interface{}) error {
	title := getString(page["title"])

	params := url.Values{}
	params.Set("prop", "revisions")
	params.Set("rvprop", "content")
	params.Set("rvparse", "")
	params.Set("rvlimit", "1")
	params.Set("titles", title)

	resp, err := c.apiRequest(ctx, params)
	if err != nil {
		return err
	}

	rendered, err := renderedRevision(resp)
	if err != nil {
		return err
	}

	candidates, err := disambiguationCandidates(rendered)
	if err != nil {
		return &MalformedResponseError{Field: "parseable HTML", Path: "revisions[0].*"}
	}

	return &DisambiguationError{Title: title, Candidates: candidates}
}

// renderedRevision extracts the rendered HTML of the first revision.
func renderedRevision(resp map[string]interface{}) (string, error) {
	page, err := singlePage(resp)
	if err != nil {
		return "", err
	}
	revisions := getSlice(page["revisions"])
	if len(revisions) == 0 {
		return "", &MalformedResponseError{Field: "revisions", Path: "query.pages"}
	}
	rev := getMap(revisions[0])
	if rev == nil {
		return "", &MalformedResponseError{Field: "revision entry", Path: "revisions"}
	}
	content := getString(rev["*"])
	if content == "" {
		return "", &MalformedResponseError{Field: "*", Path: "revisions[0]"}
	}
	return content, nil
}
