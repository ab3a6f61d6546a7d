package vectara

import "strings"

const excerptTitleLimit = 100

// deriveSources filters results below the relevance cutoff (missing score
// counts as 0), maps the survivors to {title, url}, drops entries without
// a URL, and deduplicates by URL keeping the first occurrence in order.
// The cutoff is applied here even though the reranker already filters
// server-side with the same value; the local pass keeps unscored passages
// from ever being cited.
func deriveSources(results []searchResult, cutoff float64) []Source {
	seen := make(map[string]struct{}, len(results))
	var sources []Source
	for _, result := range results {
		if result.Score < cutoff {
			continue
		}
		url := strings.TrimSpace(result.DocumentMetadata.URL)
		if url == "" {
			continue
		}
		if _, dup := seen[url]; dup {
			continue
		}
		seen[url] = struct{}{}
		sources = append(sources, Source{
			Title: sourceTitle(result.DocumentMetadata),
			URL:   url,
		})
	}
	return sources
}

func sourceTitle(meta documentMetadata) string {
	if title := strings.TrimSpace(meta.Title); title != "" {
		return title
	}
	if excerpt := strings.TrimSpace(meta.Excerpt); excerpt != "" {
		return truncate(excerpt, excerptTitleLimit)
	}
	return "Untitled"
}

func truncate(value string, max int) string {
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	return string(runes[:max])
}
