// Package news is the client for the newsdata.io style upstream search API.
package news

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Options configures a Client.
type Options struct {
	BaseURL  string
	Language string
	Timeout  time.Duration

	// HTTPClient overrides the transport, mostly for tests.
	HTTPClient *http.Client
}

// Client issues one GET per call. It never retries.
type Client struct {
	http     *resty.Client
	language string
}

func NewClient(opts Options) *Client {
	var rc *resty.Client
	if opts.HTTPClient != nil {
		rc = resty.NewWithClient(opts.HTTPClient)
	} else {
		rc = resty.New()
	}
	if opts.Timeout > 0 {
		rc.SetTimeout(opts.Timeout)
	}
	rc.SetBaseURL(opts.BaseURL).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)

	return &Client{
		http:     rc,
		language: opts.Language,
	}
}

// FetchPage requests one page of results for q.
func (c *Client) FetchPage(ctx context.Context, apiKey string, q Query) (Page, error) {
	params := map[string]string{
		"apikey": apiKey,
		"q":      q.Company,
	}
	if c.language != "" {
		params["language"] = c.language
	}
	if q.Mode() == ModeArchive {
		params["from_date"] = q.From
		params["to_date"] = q.To
	}
	if q.Cursor != "" {
		params["page"] = q.Cursor
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("/" + string(q.Mode()))
	if err != nil {
		return Page{}, &UpstreamError{Cause: Redact(err.Error(), apiKey)}
	}

	body := resp.Body()
	if !resp.IsSuccess() {
		return Page{}, &UpstreamError{
			StatusCode: resp.StatusCode(),
			Body:       snippet(Redact(string(body), apiKey)),
			URL:        Redact(requestURL(resp), apiKey),
		}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return Page{}, &UpstreamError{
			Cause: fmt.Sprintf("decode response: %s", Redact(err.Error(), apiKey)),
			URL:   Redact(requestURL(resp), apiKey),
		}
	}

	return decodePage(raw), nil
}

func requestURL(resp *resty.Response) string {
	if resp == nil || resp.Request == nil || resp.Request.RawRequest == nil {
		return ""
	}
	return resp.Request.RawRequest.URL.String()
}
