package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"companynews/internal/aggregate"
)

var isoDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// newsRequestBody keeps every field loosely typed: clients send companies as
// either a list or a comma separated string, and pagesPerCompany as either a
// number or a string.
type newsRequestBody struct {
	Companies       any `json:"companies"`
	From            any `json:"from"`
	To              any `json:"to"`
	PagesPerCompany any `json:"pagesPerCompany"`
}

type pageLimits struct {
	Default int
	Max     int
}

func decodeBody(body string, isBase64 bool) (newsRequestBody, error) {
	raw := []byte(body)
	if isBase64 {
		b, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return newsRequestBody{}, &APIError{Kind: KindBadRequest, Message: "Invalid JSON body", Err: err}
		}
		raw = b
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return newsRequestBody{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var in newsRequestBody
	if err := dec.Decode(&in); err != nil {
		return newsRequestBody{}, &APIError{Kind: KindBadRequest, Message: "Invalid JSON body", Err: err}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after JSON object")
		}
		return newsRequestBody{}, &APIError{Kind: KindBadRequest, Message: "Invalid JSON body", Err: err}
	}
	return in, nil
}

func parseNewsRequest(body string, isBase64 bool, limits pageLimits) (aggregate.Request, error) {
	in, err := decodeBody(body, isBase64)
	if err != nil {
		return aggregate.Request{}, err
	}

	companies := parseCompanies(in.Companies)
	if len(companies) == 0 {
		return aggregate.Request{}, badRequest("No companies provided")
	}

	from, fromOK := dateParam(in.From)
	to, toOK := dateParam(in.To)
	if !fromOK || !toOK {
		return aggregate.Request{}, badRequest("from and to must be strings in YYYY-MM-DD format")
	}
	if (from == "") != (to == "") {
		return aggregate.Request{}, badRequest("from and to must be provided together")
	}
	if from != "" && (!isoDate.MatchString(from) || !isoDate.MatchString(to)) {
		return aggregate.Request{}, badRequest("from and to must be in YYYY-MM-DD format")
	}

	return aggregate.Request{
		Companies:       companies,
		From:            from,
		To:              to,
		PagesPerCompany: parsePages(in.PagesPerCompany, limits),
	}, nil
}

func parseCompanies(v any) []string {
	var raw []string
	switch c := v.(type) {
	case string:
		raw = strings.Split(c, ",")
	case []any:
		for _, e := range c {
			// Attribution is comma-joined, so entries are split the same way.
			if s, ok := e.(string); ok {
				raw = append(raw, strings.Split(s, ",")...)
			}
		}
	}

	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// dateParam returns the trimmed value and whether the field had an
// acceptable type. Null and empty strings mean "not given".
func dateParam(v any) (string, bool) {
	switch d := v.(type) {
	case nil:
		return "", true
	case string:
		return strings.TrimSpace(d), true
	default:
		return "", false
	}
}

// parsePages reads pagesPerCompany like parseInt would: numbers are
// truncated, strings contribute their leading integer. Zero or unreadable
// input falls back to the default; the result is clamped to [1, Max].
func parsePages(v any, limits pageLimits) int {
	n := 0
	switch p := v.(type) {
	case json.Number:
		if f, err := p.Float64(); err == nil {
			n = truncClamp(f)
		}
	case string:
		n = leadingInt(p)
	}

	if n == 0 {
		n = limits.Default
	}
	if n < 1 {
		n = 1
	}
	if n > limits.Max {
		n = limits.Max
	}
	return n
}

func truncClamp(f float64) int {
	const bound = 1 << 20
	if math.IsNaN(f) {
		return 0
	}
	f = math.Max(-bound, math.Min(bound, math.Trunc(f)))
	return int(f)
}

func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	// Anything this long is far past the clamp anyway.
	if end-digits > 7 {
		if s[0] == '-' {
			return -1
		}
		return 1 << 20
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
