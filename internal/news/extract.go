package news

import (
	"encoding/json"
	"strings"
)

// The upstream renamed fields across API versions, so every logical value is
// read through an ordered list of candidates.
var (
	titleKeys       = []string{"title", "title_no_formatting"}
	urlKeys         = []string{"link", "url"}
	sourceKeys      = []string{"source_id"}
	sourceNameKeys  = []string{"source_name"}
	publishedAtKeys = []string{"pubDate", "publishedAt", "pubdate"}
	descriptionKeys = []string{"description", "summary", "snippet"}
	resultListKeys  = []string{"results", "articles"}
	cursorKeys      = []string{"nextPage"}
)

func decodePage(raw map[string]any) Page {
	var page Page
	for _, v := range pickList(raw, resultListKeys...) {
		page.Items = append(page.Items, itemFromRaw(asMap(v)))
	}
	page.NextCursor = pickCursor(raw, cursorKeys...)
	return page
}

func itemFromRaw(raw map[string]any) Item {
	// "source" is an object in some API versions and a plain string in others.
	src := asMap(pickAny(raw, "source"))

	return Item{
		Title:       pickString(raw, titleKeys...),
		URL:         firstNonEmpty(pickString(raw, urlKeys...), pickString(src, "url")),
		Source:      firstNonEmpty(pickString(raw, sourceKeys...), pickString(src, "name"), pickString(raw, sourceNameKeys...)),
		PublishedAt: pickString(raw, publishedAtKeys...),
		Description: pickString(raw, descriptionKeys...),
	}
}

func pickString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

func pickAny(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v
		}
	}
	return nil
}

// pickList returns the first candidate that holds a non-empty array.
func pickList(m map[string]any, keys ...string) []any {
	for _, k := range keys {
		if l, ok := m[k].([]any); ok && len(l) > 0 {
			return l
		}
	}
	return nil
}

// pickCursor accepts string and numeric cursors; the numeric form comes
// from older page-number based responses.
func pickCursor(m map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case json.Number:
			return v.String()
		}
	}
	return ""
}

func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
