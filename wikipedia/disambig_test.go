package wikipedia

import (
	"testing"
)

func TestDisambiguationCandidates(t *testing.T) {
	tests := []struct {
		name     string
		rendered string
		want     []string
	}{
		{
			name: "plain list",
			rendered: `<ul>
<li><a href="/wiki/Mercury_(planet)">Mercury (planet)</a>, the first planet</li>
<li><a href="/wiki/Mercury_(element)">Mercury (element)</a>, a chemical element</li>
</ul>`,
			want: []string{"Mercury (planet)", "Mercury (element)"},
		},
		{
			name: "skips table of contents items",
			rendered: `<ul>
<li class="toclevel-1 tocsection-1"><a href="#Science">1 Science</a></li>
</ul>
<ul>
<li><a href="/wiki/Mercury_(planet)">Mercury (planet)</a></li>
</ul>`,
			want: []string{"Mercury (planet)"},
		},
		{
			name: "skips items without a link",
			rendered: `<ul>
<li>Just some text, no link</li>
<li><a href="/wiki/Target">Target</a></li>
</ul>`,
			want: []string{"Target"},
		},
		{
			name: "first anchor wins per item",
			rendered: `<ul>
<li><a href="/wiki/Primary">Primary</a> related to <a href="/wiki/Secondary">Secondary</a></li>
</ul>`,
			want: []string{"Primary"},
		},
		{
			name: "anchor nested in markup",
			rendered: `<ul>
<li><b><a href="/wiki/Bold_Target">Bold Target</a></b>, emphasized entry</li>
</ul>`,
			want: []string{"Bold Target"},
		},
		{
			name:     "no list items",
			rendered: `<p>Nothing here refers to anything.</p>`,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := disambiguationCandidates(tt.rendered)
			if err != nil {
				t.Fatalf("disambiguationCandidates failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d candidates %v, want %d", len(got), got, len(tt.want))
			}
			for i, title := range tt.want {
				if got[i] != title {
					t.Errorf("candidate[%d] = %q, want %q", i, got[i], title)
				}
			}
		})
	}
}

func TestDisambiguationCandidates_NestedLists(t *testing.T) {
	// Nested lists are common on large disambiguation pages; every li with
	// an anchor counts, outer and inner alike.
	rendered := `<ul>
<li><a href="/wiki/Outer">Outer</a>
<ul>
<li><a href="/wiki/Inner">Inner</a></li>
</ul>
</li>
</ul>`

	got, err := disambiguationCandidates(rendered)
	if err != nil {
		t.Fatalf("disambiguationCandidates failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %v, want outer and inner entries", got)
	}
	if got[0] != "Outer" || got[1] != "Inner" {
		t.Errorf("candidates = %v", got)
	}
}
