package wikipedia

import (
	"html"
	"regexp"
	"strings"
)

// Helpers for navigating the map[string]interface{} trees that
// encoding/json produces for API responses. All numeric values arrive as
// float64; getInt converts them.

func getMap(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

func getSlice(v interface{}) []interface{} {
	s, _ := v.([]interface{})
	return s
}

func getString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func getInt(v interface{}) int {
	if f, ok := v.(float64); ok {
		return int(f)
	}
	if n, ok := v.(int); ok {
		return n
	}
	return 0
}

// htmlTagRegex is used to strip HTML tags from search snippets
var htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

// stripHTMLTags removes HTML tags and decodes entities from a string
func stripHTMLTags(s string) string {
	s = html.UnescapeString(s)
	s = htmlTagRegex.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
