package enrich

import (
	"net/url"
	"strings"
)

// ValidCoordinates reports whether lat/lng fall inside the WGS84 ranges.
func ValidCoordinates(lat, lng float64) bool {
	return lat >= latMin && lat <= latMax && lng >= lngMin && lng <= lngMax
}

// imageExtensions marks direct image assets.
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg"}

// videoHosts marks watchable video pages.
var videoHosts = []string{"youtube.com/watch", "youtu.be/", "vimeo.com/", "dailymotion.com/video"}

// searchPageMarkers identify search or results pages, which are never
// acceptable as article media.
var searchPageMarkers = []string{"/search?", "/results?", "google.com/search", "bing.com/search", "duckduckgo.com/?q="}

// ValidMediaURL reports whether a URL is a usable media reference of the
// given kind ("image" or "video"). Images must point at a direct asset;
// videos must point at a watchable page. Search result pages are
// rejected for both kinds.
func ValidMediaURL(rawURL, kind string) bool {
	if rawURL == "" {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return false
	}

	lower := strings.ToLower(rawURL)
	for _, marker := range searchPageMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}

	switch kind {
	case "image":
		path := strings.ToLower(u.Path)
		for _, ext := range imageExtensions {
			if strings.HasSuffix(path, ext) {
				return true
			}
		}
		// CDN asset URLs frequently carry format hints in the query.
		for _, ext := range imageExtensions {
			if strings.Contains(path, ext) {
				return true
			}
		}
		return strings.Contains(lower, "images.unsplash.com") || strings.Contains(lower, "/image")
	case "video":
		for _, host := range videoHosts {
			if strings.Contains(lower, host) {
				return true
			}
		}
		return false
	}
	return false
}

// placeholderPhrases mark low-effort model output that should be
// replaced with a fallback.
var placeholderPhrases = []string{
	"i cannot",
	"i can't",
	"i'm unable",
	"i am unable",
	"as an ai",
	"no information",
	"not enough information",
	"n/a",
	"none",
	"null",
}

// QualityContent reports whether generated text is substantial enough
// to keep: long enough and free of refusal boilerplate.
func QualityContent(text string, minLength int) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minLength {
		return false
	}
	lower := strings.ToLower(trimmed)
	for _, phrase := range placeholderPhrases {
		if lower == phrase || strings.HasPrefix(lower, phrase) {
			return false
		}
	}
	return true
}

// truncateChars cuts text to at most n characters, counting runes so a
// multi-byte character is never split.
func truncateChars(text string, n int) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return strings.TrimSpace(string(runes[:n]))
}

// truncateWords cuts text to at most n words.
func truncateWords(text string, n int) string {
	words := strings.Fields(text)
	if len(words) <= n {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:n], " ")
}

// oneOf reports whether value appears in options.
func oneOf(value string, options []string) bool {
	for _, opt := range options {
		if value == opt {
			return true
		}
	}
	return false
}

// clampScore forces a relevance score into [0, 1].
func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
