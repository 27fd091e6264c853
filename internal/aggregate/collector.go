package aggregate

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"companynews/internal/news"
)

// PageFetcher is the upstream surface the collector needs.
type PageFetcher interface {
	FetchPage(ctx context.Context, apiKey string, q news.Query) (news.Page, error)
}

// Request is a validated aggregation request.
type Request struct {
	Companies       []string
	From            string
	To              string
	PagesPerCompany int
}

// Mode reports which upstream endpoint the request will use.
func (r Request) Mode() news.Mode {
	return news.Query{From: r.From, To: r.To}.Mode()
}

// Stats summarises one aggregation run for logging.
type Stats struct {
	Requests  int
	Collected int
	Returned  int
	Duration  time.Duration
}

// Collector walks companies and pages one request at a time. Upstream calls
// are never issued in parallel so a run stays inside free-tier rate limits.
type Collector struct {
	fetcher PageFetcher
	log     *zap.Logger
}

func NewCollector(fetcher PageFetcher, log *zap.Logger) *Collector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Collector{fetcher: fetcher, log: log}
}

// Run collects, deduplicates and sorts articles for req. The first upstream
// failure aborts the whole run.
func (c *Collector) Run(ctx context.Context, apiKey string, req Request) ([]Article, Stats, error) {
	start := time.Now()

	all, requests, err := c.collect(ctx, apiKey, req)
	stats := Stats{Requests: requests, Collected: len(all)}
	if err != nil {
		stats.Duration = time.Since(start)
		return nil, stats, err
	}

	out := Dedupe(all)
	SortByRecency(out)

	stats.Returned = len(out)
	stats.Duration = time.Since(start)
	return out, stats, nil
}

func (c *Collector) collect(ctx context.Context, apiKey string, req Request) ([]Article, int, error) {
	var all []Article
	requests := 0

	for _, company := range req.Companies {
		cursor := ""
		for page := 1; page <= req.PagesPerCompany; page++ {
			if err := ctx.Err(); err != nil {
				return nil, requests, err
			}

			q := news.Query{Company: company, From: req.From, To: req.To, Cursor: cursor}
			requests++
			res, err := c.fetcher.FetchPage(ctx, apiKey, q)
			if err != nil {
				return nil, requests, fmt.Errorf("fetch %q page %d: %w", company, page, err)
			}

			c.log.Debug("upstream page fetched",
				zap.String("company", company),
				zap.Int("page", page),
				zap.Int("items", len(res.Items)),
				zap.Bool("has_next", res.NextCursor != ""),
			)

			for _, it := range res.Items {
				all = append(all, fromItem(it, company))
			}

			if len(res.Items) == 0 || res.NextCursor == "" {
				break
			}
			cursor = res.NextCursor
		}
	}
	return all, requests, nil
}
