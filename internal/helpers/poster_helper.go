package helpers

import (
	"encoding/json"
	"strings"
)

// NormalizePosterURLs turns whatever shape the poster_url column holds into a
// clean list of absolute URLs. Historically the column has held a bare URL, a
// JSON-array string like `["url1","url2"]`, and in a few rows a URL with a
// JSON array embedded inside it. All three shapes must keep rendering, so
// every read of the column goes through here.
func NormalizePosterURLs(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}

	if strings.HasPrefix(raw, `["`) && strings.HasSuffix(raw, `"]`) {
		var urls []string
		if err := json.Unmarshal([]byte(raw), &urls); err == nil {
			return cleanURLList(urls)
		}
		return []string{}
	}

	// A JSON array glued into the middle of a URL.
	if start := strings.Index(raw, `["`); start >= 0 {
		if end := strings.Index(raw, `"]`); end >= 0 {
			var urls []string
			if err := json.Unmarshal([]byte(raw[start:end+2]), &urls); err == nil {
				return cleanURLList(urls)
			}
		}
	}

	return []string{cleanURL(raw)}
}

func cleanURLList(urls []string) []string {
	cleaned := make([]string, 0, len(urls))
	for _, u := range urls {
		if strings.TrimSpace(u) == "" {
			continue
		}
		cleaned = append(cleaned, cleanURL(u))
	}
	return cleaned
}

// cleanURL strips the duplicated public/ path segment some legacy uploads
// carry and makes scheme-less host URLs absolute.
func cleanURL(u string) string {
	u = strings.TrimSpace(u)
	u = strings.Replace(u, "/eventposters/public/", "/eventposters/", 1)
	if strings.Contains(u, ".supabase.co") && !strings.HasPrefix(u, "http") {
		u = "https://" + strings.TrimLeft(u, "/")
	}
	return u
}

// EncodePosterURLs is the storage form for new writes: a JSON array string,
// or "" when there are no posters.
func EncodePosterURLs(urls []string) string {
	if len(urls) == 0 {
		return ""
	}
	encoded, err := json.Marshal(urls)
	if err != nil {
		return ""
	}
	return string(encoded)
}
