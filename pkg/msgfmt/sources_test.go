package msgfmt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/corvid-labs/corpusbot/pkg/vectara"
)

func TestFormatSourcesEmpty(t *testing.T) {
	if got := FormatSources(nil); got != "" {
		t.Fatalf("nil sources must render empty, got %q", got)
	}
	if got := FormatSources([]vectara.Source{}); got != "" {
		t.Fatalf("empty sources must render empty, got %q", got)
	}
}

func TestFormatSourcesRendersLinks(t *testing.T) {
	got := FormatSources([]vectara.Source{
		{Title: "First Doc", URL: "https://example.com/first"},
		{Title: "Second Doc", URL: "https://example.com/second"},
	})
	want := "**Sources:**\n- [First Doc](https://example.com/first)\n- [Second Doc](https://example.com/second)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatSourcesCapsAtFifteen(t *testing.T) {
	var sources []vectara.Source
	for i := 0; i < 40; i++ {
		sources = append(sources, vectara.Source{
			Title: fmt.Sprintf("Doc %d", i),
			URL:   fmt.Sprintf("https://example.com/%d", i),
		})
	}
	got := FormatSources(sources)
	lines := strings.Split(got, "\n")
	if len(lines) != MaxSources+1 {
		t.Fatalf("expected header plus %d bullets, got %d lines", MaxSources, len(lines))
	}
	if lines[1] != "- [Doc 0](https://example.com/0)" {
		t.Fatalf("expected original order, first bullet was %q", lines[1])
	}
	if lines[MaxSources] != "- [Doc 14](https://example.com/14)" {
		t.Fatalf("expected bullet 15 to be Doc 14, got %q", lines[MaxSources])
	}
}
