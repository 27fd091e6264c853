// Package aggregate merges upstream results for several companies into one
// deduplicated, recency-ordered list of articles.
package aggregate

import "companynews/internal/news"

// Article is the unit returned to clients.
type Article struct {
	Title          string `json:"title"`
	URL            string `json:"url"`
	Source         string `json:"source"`
	PublishedAt    string `json:"publishedAt"`
	Description    string `json:"description"`
	CompanyQueried string `json:"companyQueried"`
}

func fromItem(it news.Item, company string) Article {
	return Article{
		Title:          it.Title,
		URL:            it.URL,
		Source:         it.Source,
		PublishedAt:    it.PublishedAt,
		Description:    it.Description,
		CompanyQueried: company,
	}
}
