package wikipedia

import (
	"strings"

	"golang.org/x/net/html"
)

// disambiguationCandidates pulls candidate titles out of a rendered
// disambiguation page. Each list item that links somewhere contributes the
// text of its first anchor; table-of-contents items are skipped.
func disambiguationCandidates(rendered string) ([]string, error) {
	doc, err := html.Parse(strings.NewReader(rendered))
	if err != nil {
		return nil, err
	}

	var candidates []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "li" && !isTOCItem(n) {
			if text := firstAnchorText(n); text != "" {
				candidates = append(candidates, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return candidates, nil
}

// isTOCItem reports whether a list item belongs to the page's table of
// contents rather than the disambiguation list.
func isTOCItem(n *html.Node) bool {
	for _, attr := range n.Attr {
		if attr.Key == "class" && strings.Contains(attr.Val, "tocsection") {
			return true
		}
	}
	return false
}

// firstAnchorText returns the text of the first <a> descendant, or "".
func firstAnchorText(n *html.Node) string {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "a" {
			return strings.TrimSpace(nodeText(c))
		}
		if text := firstAnchorText(c); text != "" {
			return text
		}
	}
	return ""
}

// nodeText concatenates all text nodes under n.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
