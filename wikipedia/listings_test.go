package wikipedia

import (
	"context"
	"net/http"
	"testing"
)

func TestLinks(t *testing.T) {
	server := mockWikipediaServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("prop") == "info|pageprops" {
			writeJSON(t, w, resolveResponse("Test Page", 42))
			return
		}
		if q.Get("plnamespace") != "0" {
			t.Errorf("plnamespace = %q, want 0", q.Get("plnamespace"))
		}
		if q.Get("pllimit") != "max" {
			t.Errorf("pllimit = %q, want max", q.Get("pllimit"))
		}
		writeJSON(t, w, map[string]interface{}{
			"query": map[string]interface{}{
				"pages": map[string]interface{}{
					"42": map[string]interface{}{
						"pageid": float64(42),
						"links": []interface{}{
							map[string]interface{}{"ns": float64(0), "title": "Concurrency"},
							map[string]interface{}{"ns": float64(0), "title": "Goroutine"},
						},
					},
				},
			},
		})
	})
	defer server.Close()

	client := createMockClient(t, server)
	defer client.Close()
	page := resolveTestPage(t, client)

	links, err := page.Links(context.Background())
	if err != nil {
		t.Fatalf("Links failed: %v", err)
	}
	want := []string{"Concurrency", "Goroutine"}
	if len(links) != 2 || links[0] != want[0] || links[1] != want[1] {
		t.Errorf("Links = %v, want %v", links, want)
	}
}

func TestReferences(t *testing.T) {
	server := mockWikipediaServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("prop") == "info|pageprops" {
			writeJSON(t, w, resolveResponse("Test Page", 42))
			return
		}
		if q.Get("ellimit") != "max" {
			t.Errorf("ellimit = %q, want max", q.Get("ellimit"))
		}
		writeJSON(t, w, map[string]interface{}{
			"query": map[string]interface{}{
				"pages": map[string]interface{}{
					"42": map[string]interface{}{
						"pageid": float64(42),
						"extlinks": []interface{}{
							map[string]interface{}{"*": "https://go.dev/"},
							map[string]interface{}{"*": "https://go.dev/doc/faq"},
						},
					},
				},
			},
		})
	})
	defer server.Close()

	client := createMockClient(t, server)
	defer client.Close()
	page := resolveTestPage(t, client)

	refs, err := page.References(context.Background())
	if err != nil {
		t.Fatalf("References failed: %v", err)
	}
	if len(refs) != 2 || refs[0] != "https://go.dev/" {
		t.Errorf("References = %v", refs)
	}
}

func TestImages(t *testing.T) {
	server := mockWikipediaServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("prop") == "info|pageprops" {
			writeJSON(t, w, resolveResponse("Test Page", 42))
			return
		}
		if q.Get("generator") != "images" {
			t.Errorf("generator = %q, want images", q.Get("generator"))
		}
		if q.Get("iiprop") != "url" {
			t.Errorf("iiprop = %q, want url", q.Get("iiprop"))
		}
		writeJSON(t, w, map[string]interface{}{
			"query": map[string]interface{}{
				"pages": map[string]interface{}{
					"500": map[string]interface{}{
						"pageid": float64(500),
						"title":  "File:Gopher.png",
						"imageinfo": []interface{}{
							map[string]interface{}{
								"url": "https://upload.wikimedia.org/gopher.png",
							},
						},
					},
					"501": map[string]interface{}{
						"pageid": float64(501),
						"title":  "File:Logo.svg",
					},
				},
			},
		})
	})
	defer server.Close()

	client := createMockClient(t, server)
	defer client.Close()
	page := resolveTestPage(t, client)

	images, err := page.Images(context.Background())
	if err != nil {
		t.Fatalf("Images failed: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("got %d images %v, want 2", len(images), images)
	}
	if images[0].Title != "File:Gopher.png" || images[0].URL != "https://upload.wikimedia.org/gopher.png" {
		t.Errorf("images[0] = %+v", images[0])
	}
	// A file page without imageinfo still lists with an empty URL.
	if images[1].Title != "File:Logo.svg" || images[1].URL != "" {
		t.Errorf("images[1] = %+v", images[1])
	}
}

func TestCategories(t *testing.T) {
	server := mockWikipediaServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("prop") == "info|pageprops" {
			writeJSON(t, w, resolveResponse("Test Page", 42))
			return
		}
		writeJSON(t, w, map[string]interface{}{
			"query": map[string]interface{}{
				"pages": map[string]interface{}{
					"42": map[string]interface{}{
						"pageid": float64(42),
						"categories": []interface{}{
							map[string]interface{}{"title": "Category:Programming languages"},
							map[string]interface{}{"title": "Category:Google software"},
						},
					},
				},
			},
		})
	})
	defer server.Close()

	client := createMockClient(t, server)
	defer client.Close()
	page := resolveTestPage(t, client)

	categories, err := page.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}
	want := []string{"Programming languages", "Google software"}
	if len(categories) != 2 || categories[0] != want[0] || categories[1] != want[1] {
		t.Errorf("Categories = %v, want %v", categories, want)
	}
}

func TestLinks_ErrorPropagates(t *testing.T) {
	server := mockWikipediaServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("prop") == "info|pageprops" {
			writeJSON(t, w, resolveResponse("Test Page", 42))
			return
		}
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	})
	defer server.Close()

	client := createMockClient(t, server)
	defer client.Close()
	page := resolveTestPage(t, client)

	_, err := page.Links(context.Background())
	if err == nil {
		t.Fatal("expected error from failed listing request")
	}
	if !IsTransport(err) {
		t.Errorf("expected TransportError, got %T: %v", err, err)
	}
}
