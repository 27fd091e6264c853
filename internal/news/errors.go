package news

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const redacted = "REDACTED"

var apiKeyParam = regexp.MustCompile(`(?i)(apikey=)[^&\s"']*`)

// UpstreamError reports a failed upstream call. StatusCode is zero when the
// request never produced a response. Every text field has the API key
// scrubbed before the error is built.
type UpstreamError struct {
	StatusCode int
	Body       string
	URL        string
	Cause      string
}

func (e *UpstreamError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("News API error %d: %s", e.StatusCode, e.Body)
	case e.Cause != "":
		return fmt.Sprintf("News API request failed: %s", e.Cause)
	default:
		return "News API request failed"
	}
}

// Redact removes the API key from s, both as a raw substring and as the
// value of an apikey query parameter.
func Redact(s, apiKey string) string {
	if apiKey != "" {
		s = strings.ReplaceAll(s, apiKey, redacted)
	}
	return apiKeyParam.ReplaceAllString(s, "${1}"+redacted)
}

// snippet caps s at maxLen bytes without splitting a UTF-8 sequence. Callers
// redact before truncating so a cut never leaves part of a key behind.
func snippet(s string) string {
	const maxLen = 1024
	s = strings.TrimSpace(s)
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
