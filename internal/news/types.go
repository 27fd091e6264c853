package news

// Mode selects which upstream endpoint a query goes to.
type Mode string

const (
	ModeLatest  Mode = "latest"
	ModeArchive Mode = "archive"
)

// Query describes a single upstream page request.
type Query struct {
	Company string
	From    string // YYYY-MM-DD, archive mode only
	To      string // YYYY-MM-DD, archive mode only
	Cursor  string // empty on the first page
}

// Mode is latest unless both date bounds are set.
func (q Query) Mode() Mode {
	if q.From != "" && q.To != "" {
		return ModeArchive
	}
	return ModeLatest
}

// Item is one upstream result mapped onto the fields the aggregator needs.
type Item struct {
	Title       string
	URL         string
	Source      string
	PublishedAt string
	Description string
}

// Page is a decoded upstream response.
type Page struct {
	Items      []Item
	NextCursor string
}
