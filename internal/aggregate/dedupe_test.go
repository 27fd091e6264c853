package aggregate

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestDedupeMergesSameURL(t *testing.T) {
	in := []Article{
		{Title: "Acme Wins Award", URL: "https://x/1", PublishedAt: "2024-01-02", CompanyQueried: "Acme"},
		{Title: "Acme wins award (update)", URL: "https://x/1", PublishedAt: "2024-01-03", CompanyQueried: "Acme Corp"},
	}

	out := Dedupe(in)

	assert.Equal(t, 1, len(out))
	assert.Equal(t, "Acme Wins Award", out[0].Title)
	assert.Equal(t, "2024-01-02", out[0].PublishedAt)
	assert.Equal(t, "Acme,Acme Corp", out[0].CompanyQueried)
}

func TestDedupeMergesNoURLByTitle(t *testing.T) {
	in := []Article{
		{Title: "Acme Wins Award!", CompanyQueried: "Acme"},
		{Title: "acme wins   award", CompanyQueried: "Globex"},
	}

	out := Dedupe(in)

	assert.Equal(t, 1, len(out))
	assert.Equal(t, "Acme Wins Award!", out[0].Title)
	assert.Equal(t, "Acme,Globex", out[0].CompanyQueried)
}

func TestDedupeMergesSameStoryAcrossURLs(t *testing.T) {
	in := []Article{
		{Title: "Acme Wins Award", URL: "https://a/1", CompanyQueried: "Acme"},
		{Title: "Acme wins award.", URL: "https://b/9", CompanyQueried: "Acme Corp"},
		{Title: "Different story", URL: "https://c/2", CompanyQueried: "Acme"},
	}

	out := Dedupe(in)

	assert.Equal(t, 2, len(out))
	assert.Equal(t, "https://a/1", out[0].URL)
	assert.Equal(t, "Acme,Acme Corp", out[0].CompanyQueried)
	assert.Equal(t, "https://c/2", out[1].URL)
}

func TestDedupeKeepsArticlesWithoutText(t *testing.T) {
	in := []Article{
		{URL: "https://a/1", CompanyQueried: "Acme"},
		{URL: "https://a/2", CompanyQueried: "Acme"},
	}

	out := Dedupe(in)

	assert.Equal(t, 2, len(out))
}

func TestDedupeCompanyAppearsOnce(t *testing.T) {
	in := []Article{
		{Title: "Story", URL: "https://a/1", CompanyQueried: "Acme"},
		{Title: "Story", URL: "https://a/1", CompanyQueried: "Acme"},
		{Title: "Story", URL: "https://a/2", CompanyQueried: "Globex"},
		{Title: "Story", URL: "https://a/3", CompanyQueried: "Acme"},
	}

	out := Dedupe(in)

	assert.Equal(t, 1, len(out))
	assert.Equal(t, "Acme,Globex", out[0].CompanyQueried)
}

func TestDedupeIsIdempotent(t *testing.T) {
	in := []Article{
		{Title: "One", URL: "https://a/1", CompanyQueried: "Acme"},
		{Title: "one", URL: "https://a/1", CompanyQueried: "Globex"},
		{Title: "Two", CompanyQueried: "Acme"},
		{Title: "TWO", CompanyQueried: "Initech"},
		{Description: "three", CompanyQueried: "Acme"},
		{URL: "https://empty", CompanyQueried: "Acme"},
	}

	once := Dedupe(in)
	twice := Dedupe(once)

	assert.Equal(t, once, twice)
}

func TestDedupeDoesNotMutateInput(t *testing.T) {
	in := []Article{
		{Title: "One", URL: "https://a/1", CompanyQueried: "Acme"},
		{Title: "One", URL: "https://a/1", CompanyQueried: "Globex"},
	}

	_ = Dedupe(in)

	assert.Equal(t, "Acme", in[0].CompanyQueried)
}

func TestMergeCompanies(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"Acme", "Acme Corp", "Acme,Acme Corp"},
		{"Acme,Globex", "Globex", "Acme,Globex"},
		{"", "Acme", "Acme"},
		{" Acme , ", " Globex", "Acme,Globex"},
		{"Acme", "", "Acme"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MergeCompanies(tt.a, tt.b))
	}
}
