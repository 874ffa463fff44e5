package wikipedia

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
)

// ContinuedQuery iterates a continuation-paged query bound to a page.
// Each call to Next fetches at most one API response; stopping early stops
// requesting. The usual loop is:
//
//	q := page.ContinuedQuery(params)
//	for q.Next(ctx) {
//	    item := q.Item()
//	    ...
//	}
//	if err := q.Err(); err != nil { ... }
//
// For generator queries the items are the values of query.pages; otherwise
// they are the entries of the bound page's property list named by the
// "prop" parameter.
type ContinuedQuery struct {
	client    *Client
	params    url.Values
	prop      string
	generator bool
	pageKey   string

	cont    map[string]interface{}
	started bool
	done    bool
	buf     []map[string]interface{}
	item    map[string]interface{}
	err     error
}

// ContinuedQuery starts a fresh iteration over params issued against this
// page. The base params are reissued with the latest continue token merged
// in until the API stops returning one.
func (p *Page) ContinuedQuery(params url.Values) *ContinuedQuery {
	base := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			base.Add(k, v)
		}
	}
	if base.Get("titles") == "" && base.Get("pageids") == "" {
		base.Set("titles", p.identity.Title)
	}

	return &ContinuedQuery{
		client:    p.client,
		params:    base,
		prop:      base.Get("prop"),
		generator: base.Get("generator") != "",
		pageKey:   p.pageIDKey(),
	}
}

// Next advances to the next item, fetching further responses as needed.
// It returns false when the listing is exhausted or an error occurred;
// check Err to tell the two apart.
func (q *ContinuedQuery) Next(ctx context.Context) bool {
	for {
		if q.err != nil {
			return false
		}
		if len(q.buf) > 0 {
			q.item = q.buf[0]
			q.buf = q.buf[1:]
			return true
		}
		if q.done {
			return false
		}
		if q.started && q.cont == nil {
			q.done = true
			return false
		}
		q.fetch(ctx)
	}
}

// Item returns the item the last successful Next advanced to.
func (q *ContinuedQuery) Item() map[string]interface{} {
	return q.item
}

// Err returns the first error the iteration hit, if any.
func (q *ContinuedQuery) Err() error {
	return q.err
}

// fetch issues one request with the current continue token merged in and
// refills the buffer from the response.
func (q *ContinuedQuery) fetch(ctx context.Context) {
	params := url.Values{}
	for k, vs := range q.params {
		for _, v := range vs {
			params.Add(k, v)
		}
	}
	for k, v := range q.cont {
		params.Set(k, continueValue(v))
	}

	resp, err := q.client.apiRequest(ctx, params)
	if err != nil {
		q.err = err
		return
	}
	q.started = true

	query := getMap(resp["query"])
	if query == nil {
		q.done = true
		return
	}

	if q.generator {
		q.buf = generatorPages(query)
	} else {
		q.buf = pageProperty(query, q.pageKey, q.prop)
	}

	q.cont = getMap(resp["continue"])
}

// generatorPages returns the values of query.pages sorted by page ID so
// iteration order is deterministic despite the JSON object encoding.
func generatorPages(query map[string]interface{}) []map[string]interface{} {
	pages := getMap(query["pages"])
	if pages == nil {
		return nil
	}

	keys := make([]string, 0, len(pages))
	for k := range pages {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := strconv.Atoi(keys[i])
		b, _ := strconv.Atoi(keys[j])
		return a < b
	})

	items := make([]map[string]interface{}, 0, len(keys))
	for _, k := range keys {
		if page := getMap(pages[k]); page != nil {
			items = append(items, page)
		}
	}
	return items
}

// pageProperty returns the entries of the bound page's property list.
// A response page without the property (common on the final continuation
// batch) yields nothing.
func pageProperty(query map[string]interface{}, pageKey, prop string) []map[string]interface{} {
	pages := getMap(query["pages"])
	if pages == nil {
		return nil
	}
	page := getMap(pages[pageKey])
	if page == nil {
		return nil
	}

	entries := getSlice(page[prop])
	items := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		if m := getMap(e); m != nil {
			items = append(items, m)
		}
	}
	return items
}

// continueValue stringifies a continue token value for reuse as a request
// parameter. Tokens are usually strings but counts arrive as numbers.
func continueValue(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
