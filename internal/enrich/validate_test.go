package enrich

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestValidCoordinates(t *testing.T) {
	cases := []struct {
		lat, lng float64
		want     bool
	}{
		{-1.286389, 36.817223, true},
		{90, 180, true},
		{-90, -180, true},
		{90.1, 0, false},
		{0, 180.1, false},
		{-91, 36, false},
	}
	for _, tc := range cases {
		if got := ValidCoordinates(tc.lat, tc.lng); got != tc.want {
			t.Errorf("ValidCoordinates(%v, %v) = %v, want %v", tc.lat, tc.lng, got, tc.want)
		}
	}
}

func TestValidMediaURLImage(t *testing.T) {
	cases := []struct {
		url  string
		want bool
	}{
		{"https://cdn.example.com/photo.jpg", true},
		{"https://cdn.example.com/photo.png?w=800", true},
		{"https://images.unsplash.com/photo-1484417894907?w=800", true},
		{"https://example.com/page.html", false},
		{"https://www.google.com/search?q=solar+plant", false},
		{"ftp://example.com/photo.jpg", false},
		{"", false},
		{"not a url", false},
	}
	for _, tc := range cases {
		if got := ValidMediaURL(tc.url, "image"); got != tc.want {
			t.Errorf("ValidMediaURL(%q, image) = %v, want %v", tc.url, got, tc.want)
		}
	}
}

func TestValidMediaURLVideo(t *testing.T) {
	cases := []struct {
		url  string
		want bool
	}{
		{"https://www.youtube.com/watch?v=abc123", true},
		{"https://youtu.be/abc123", true},
		{"https://vimeo.com/12345", true},
		{"https://example.com/video.mp4", false},
		{"https://www.youtube.com/results?search_query=solar", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidMediaURL(tc.url, "video"); got != tc.want {
			t.Errorf("ValidMediaURL(%q, video) = %v, want %v", tc.url, got, tc.want)
		}
	}
}

func TestQualityContent(t *testing.T) {
	long := "Kenya leads East Africa in renewable energy capacity expansion."
	cases := []struct {
		text string
		want bool
	}{
		{long, true},
		{"short", false},
		{"", false},
		{"I cannot provide information about this topic right now", false},
		{"As an AI, I do not have access to current events data", false},
	}
	for _, tc := range cases {
		if got := QualityContent(tc.text, minSnippetLength); got != tc.want {
			t.Errorf("QualityContent(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestTruncateWords(t *testing.T) {
	if got := truncateWords("one two three four", 2); got != "one two" {
		t.Errorf("expected 'one two', got %q", got)
	}
	if got := truncateWords("one two", 5); got != "one two" {
		t.Errorf("expected unchanged text, got %q", got)
	}
}

func TestTruncateChars(t *testing.T) {
	if got := truncateChars("short title", 50); got != "short title" {
		t.Errorf("expected unchanged text, got %q", got)
	}
	if got := truncateChars("  padded  ", 50); got != "padded" {
		t.Errorf("expected trimmed text, got %q", got)
	}

	// Multi-byte characters count as one each and are never split.
	title := strings.Repeat("é", 60)
	got := truncateChars(title, 50)
	if !utf8.ValidString(got) {
		t.Fatalf("truncation produced invalid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 50 {
		t.Errorf("expected 50 characters, got %d", n)
	}
}

func TestPreviewRuneBoundary(t *testing.T) {
	body := strings.Repeat("ü", 30)
	got := preview(body, 10)
	if !utf8.ValidString(got) {
		t.Fatalf("preview produced invalid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 10 {
		t.Errorf("expected 10 characters, got %d", n)
	}
	if got := preview("plain", 10); got != "plain" {
		t.Errorf("expected unchanged text, got %q", got)
	}
}

func TestClampScore(t *testing.T) {
	if clampScore(1.5) != 1.0 {
		t.Error("expected clamp to 1.0")
	}
	if clampScore(-0.5) != 0.0 {
		t.Error("expected clamp to 0.0")
	}
	if clampScore(0.42) != 0.42 {
		t.Error("expected passthrough")
	}
}
