package aggregate

import (
	"sort"
	"strings"
	"time"
)

var epoch = time.Unix(0, 0).UTC()

// Layouts seen in upstream publishedAt values. Values without a zone are
// read as UTC.
var publishedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
}

// PublishedTime parses a publishedAt value, returning the Unix epoch when it
// cannot be parsed.
func PublishedTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return epoch
	}
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return epoch
}

// SortByRecency orders articles newest first. The sort is stable so equal
// timestamps keep their dedup order.
func SortByRecency(articles []Article) {
	keys := make([]time.Time, len(articles))
	for i, a := range articles {
		keys[i] = PublishedTime(a.PublishedAt)
	}
	idx := make([]int, len(articles))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return keys[idx[i]].After(keys[idx[j]])
	})

	sorted := make([]Article, len(articles))
	for i, k := range idx {
		sorted[i] = articles[k]
	}
	copy(articles, sorted)
}
