package tools

// AllTools contains all tool specifications for the Wikipedia MCP server.
// Tools are organized by category for easier maintenance.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// SEARCH TOOLS
	// ==========================================================================
	{
		Name:     "wikipedia_search",
		Method:   "Search",
		Title:    "Search Wikipedia",
		Category: "search",
		Description: `Full-text search across Wikipedia.

USE WHEN: User asks "find articles about X", "what does Wikipedia have on X", or the exact article title is unknown.

NOT FOR: Reading a known article (use wikipedia_get_summary or wikipedia_get_content).

PARAMETERS:
- query: Search text (required)
- limit: Max results (default 10)
- suggestion: Also return a spelling suggestion

RETURNS: Article titles in relevance order, plus a spelling suggestion when requested.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikipedia_get_snippet",
		Method:   "GetSnippet",
		Title:    "Get Search Snippet",
		Category: "search",
		Description: `One-line answer preview: the top search hit's snippet as plain text.

USE WHEN: User wants a quick phrase about a topic without opening the article.

NOT FOR: The article's actual intro (use wikipedia_get_summary).

PARAMETERS:
- query: Search text (required)

RETURNS: The top hit's snippet with HTML stripped, ending in "...".`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// RESOLVE TOOLS
	// ==========================================================================
	{
		Name:     "wikipedia_resolve_page",
		Method:   "ResolvePage",
		Title:    "Resolve Page",
		Category: "resolve",
		Description: `Resolve a title or page ID to its canonical article identity, following redirects.

USE WHEN: User wants the canonical title or URL, or to check that an article exists before fetching content.

NOT FOR: Fetching content (use the read tools; they resolve internally).

PARAMETERS:
- title: Page title (or page_id)
- no_redirect: Fail instead of following redirects
- auto_suggest: Search first and use the suggested spelling

RETURNS: Canonical title, page ID, and URL. Disambiguation pages return an error listing the candidate titles.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// READ TOOLS
	// ==========================================================================
	{
		Name:     "wikipedia_get_summary",
		Method:   "GetSummary",
		Title:    "Get Summary",
		Category: "read",
		Description: `Get the intro section of an article as plain text.

USE WHEN: User asks "what is X", "summarize X", or wants a short overview.

NOT FOR: The whole article (use wikipedia_get_content) or a specific section (use wikipedia_get_section).

PARAMETERS:
- title: Page title (or page_id)
- auto_suggest: Search first and use the suggested spelling

RETURNS: Canonical title and the intro text.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikipedia_get_content",
		Method:   "GetContent",
		Title:    "Get Content",
		Category: "read",
		Description: `Get the full plain-text content of an article.

USE WHEN: User wants to read or analyze the entire article.

NOT FOR: A quick overview (use wikipedia_get_summary) or rendered markup (use wikipedia_get_html).

PARAMETERS:
- title: Page title (or page_id)

RETURNS: Full text plus the current and parent revision IDs.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikipedia_get_html",
		Method:   "GetHTML",
		Title:    "Get HTML",
		Category: "read",
		Description: `Get the rendered HTML of an article's current revision.

USE WHEN: Markup structure matters: tables, infoboxes, links in context.

NOT FOR: Plain reading (use wikipedia_get_content; HTML is much larger).

PARAMETERS:
- title: Page title (or page_id)

RETURNS: Canonical title and rendered HTML.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikipedia_get_section",
		Method:   "GetSection",
		Title:    "Get Section",
		Category: "read",
		Description: `Get the body text of one named section of an article.

USE WHEN: User asks about a specific aspect, e.g. "History of X", "X's discography".

NOT FOR: Listing which sections exist (use wikipedia_get_sections).

PARAMETERS:
- title: Page title (or page_id)
- section: Section heading text (required)

RETURNS: The section's text, or an error when the heading does not exist.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikipedia_get_sections",
		Method:   "GetSections",
		Title:    "Get Section Outline",
		Category: "read",
		Description: `List an article's section headings with nesting levels.

USE WHEN: User wants the table of contents or to pick a section to read.

NOT FOR: Section content (use wikipedia_get_section).

PARAMETERS:
- title: Page title (or page_id)

RETURNS: Headings in document order with their levels.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// LISTING TOOLS
	// ==========================================================================
	{
		Name:     "wikipedia_get_links",
		Method:   "GetLinks",
		Title:    "Get Links",
		Category: "listings",
		Description: `List the articles a page links to (main namespace only).

USE WHEN: User asks "what does X link to", or wants related article titles.

NOT FOR: External URLs (use wikipedia_get_references).

PARAMETERS:
- title: Page title (or page_id)

RETURNS: Linked article titles. Walks all continuation pages.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikipedia_get_references",
		Method:   "GetReferences",
		Title:    "Get References",
		Category: "listings",
		Description: `List the external URLs cited on an article.

USE WHEN: User asks for sources, citations, or outbound links.

NOT FOR: Internal article links (use wikipedia_get_links).

PARAMETERS:
- title: Page title (or page_id)

RETURNS: External URLs. Walks all continuation pages.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikipedia_get_images",
		Method:   "GetImages",
		Title:    "Get Images",
		Category: "listings",
		Description: `List the files used on an article with their URLs.

USE WHEN: User asks for the pictures, diagrams, or media of an article.

PARAMETERS:
- title: Page title (or page_id)

RETURNS: File titles and direct URLs. Walks all continuation pages.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikipedia_get_categories",
		Method:   "GetCategories",
		Title:    "Get Categories",
		Category: "listings",
		Description: `List the categories an article belongs to.

USE WHEN: User asks how an article is classified or wants sibling topics.

PARAMETERS:
- title: Page title (or page_id)

RETURNS: Category names without the "Category:" prefix.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}
