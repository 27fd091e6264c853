package aggregate

import "strings"

const noURLPrefix = "no-url|"

// Dedupe collapses duplicates in two passes: first by URL (or by text for
// articles without one), then by normalized text to catch the same story
// published under different URLs. The first article seen under a key is
// kept and later ones only contribute their company attribution. The input
// slice is not modified.
func Dedupe(articles []Article) []Article {
	return dedupeByText(dedupeByURL(articles))
}

func dedupeByURL(articles []Article) []Article {
	index := make(map[string]int, len(articles))
	out := make([]Article, 0, len(articles))

	for _, a := range articles {
		key := a.URL
		if key == "" {
			key = noURLPrefix + textKey(a)
		}
		if i, ok := index[key]; ok {
			out[i].CompanyQueried = MergeCompanies(out[i].CompanyQueried, a.CompanyQueried)
			continue
		}
		index[key] = len(out)
		out = append(out, a)
	}
	return out
}

func dedupeByText(articles []Article) []Article {
	index := make(map[string]int, len(articles))
	out := make([]Article, 0, len(articles))

	for _, a := range articles {
		key := textKey(a)
		if key == "" {
			out = append(out, a)
			continue
		}
		if i, ok := index[key]; ok {
			out[i].CompanyQueried = MergeCompanies(out[i].CompanyQueried, a.CompanyQueried)
			continue
		}
		index[key] = len(out)
		out = append(out, a)
	}
	return out
}

// MergeCompanies unions two comma-joined company lists, keeping the order of
// first appearance.
func MergeCompanies(existing, incoming string) string {
	seen := map[string]bool{}
	var out []string
	for _, list := range []string{existing, incoming} {
		for _, c := range strings.Split(list, ",") {
			c = strings.TrimSpace(c)
			if c == "" || seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
		}
	}
	return strings.Join(out, ",")
}
