package wikipedia

import (
	"context"
	"net/url"
	"strings"
)

// Listing collectors. Each one drains a ContinuedQuery over the page's
// property lists; the underlying iterator keeps requesting until the API
// stops returning a continue token.

// Links returns the titles of main-namespace pages this page links to.
func (p *Page) Links(ctx context.Context) ([]string, error) {
	params := url.Values{}
	params.Set("prop", "links")
	params.Set("plnamespace", "0")
	params.Set("pllimit", "max")

	var titles []string
	q := p.ContinuedQuery(params)
	for q.Next(ctx) {
		if title := getString(q.Item()["title"]); title != "" {
			titles = append(titles, title)
		}
	}
	return titles, q.Err()
}

// References returns the external URLs cited on the page.
func (p *Page) References(ctx context.Context) ([]string, error) {
	params := url.Values{}
	params.Set("prop", "extlinks")
	params.Set("ellimit", "max")

	var urls []string
	q := p.ContinuedQuery(params)
	for q.Next(ctx) {
		if link := getString(q.Item()["*"]); link != "" {
			urls = append(urls, link)
		}
	}
	return urls, q.Err()
}

// Images returns the files used on the page with their URLs. This is a
// generator query: the items are file pages, not property entries.
func (p *Page) Images(ctx context.Context) ([]Image, error) {
	params := url.Values{}
	params.Set("generator", "images")
	params.Set("gimlimit", "max")
	params.Set("prop", "imageinfo")
	params.Set("iiprop", "url")

	var images []Image
	q := p.ContinuedQuery(params)
	for q.Next(ctx) {
		item := q.Item()
		img := Image{Title: getString(item["title"])}
		if info := getSlice(item["imageinfo"]); len(info) > 0 {
			img.URL = getString(getMap(info[0])["url"])
		}
		if img.Title != "" {
			images = append(images, img)
		}
	}
	return images, q.Err()
}

// Categories returns the page's categories without the "Category:" prefix.
func (p *Page) Categories(ctx context.Context) ([]string, error) {
	params := url.Values{}
	params.Set("prop", "categories")
	params.Set("cllimit", "max")

	var categories []string
	q := p.ContinuedQuery(params)
	for q.Next(ctx) {
		title := getString(q.Item()["title"])
		if title == "" {
			continue
		}
		categories = append(categories, strings.TrimPrefix(title, "Category:"))
	}
	return categories, q.Err()
}
