package aggregate

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestPublishedTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-01-02T03:04:05Z", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
		{"2024-01-02 03:04:05", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
		{"2024-01-02", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"", epoch},
		{"yesterday", epoch},
	}
	for _, tt := range tests {
		assert.Equal(t, true, PublishedTime(tt.in).Equal(tt.want))
	}
}

func TestSortByRecency(t *testing.T) {
	articles := []Article{
		{Title: "bad", PublishedAt: "not a date"},
		{Title: "old", PublishedAt: "2023-05-01"},
		{Title: "missing"},
		{Title: "new", PublishedAt: "2024-06-01 12:00:00"},
		{Title: "mid", PublishedAt: "Mon, 02 Jan 2024 15:04:05 -0700"},
	}

	SortByRecency(articles)

	var titles []string
	for _, a := range articles {
		titles = append(titles, a.Title)
	}
	assert.Equal(t, []string{"new", "mid", "old", "bad", "missing"}, titles)
}
