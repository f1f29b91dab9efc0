package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(imageURL, videoURL string) *Client {
	return &Client{
		apiKey:         "test-key",
		imageSearchURL: imageURL,
		videoSearchURL: videoURL,
		client:         &http.Client{Timeout: 5 * time.Second},
	}
}

const imageResponse = `{
	"results": [
		{
			"title": "Solar plant aerial view",
			"url": "https://example.com/page",
			"source": "example.com",
			"thumbnail": {"src": "https://example.com/thumb.jpg"},
			"properties": {"url": "https://example.com/solar.jpg", "width": 800, "height": 600}
		}
	]
}`

const videoResponse = `{
	"results": [
		{
			"url": "https://www.youtube.com/watch?v=abc123",
			"title": "Solar plant opening ceremony",
			"description": "Coverage of the opening",
			"thumbnail": {"src": "https://example.com/vthumb.jpg"}
		}
	]
}`

func TestSearchImages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Subscription-Token") != "test-key" {
			t.Error("missing subscription token header")
		}
		if r.URL.Query().Get("q") != "solar kenya" {
			t.Errorf("unexpected query %q", r.URL.Query().Get("q"))
		}
		w.Write([]byte(imageResponse))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)
	result := c.SearchImages(context.Background(), "solar kenya")
	if result == nil {
		t.Fatal("expected image result")
	}
	if result.URL != "https://example.com/solar.jpg" {
		t.Errorf("expected direct asset URL, got %q", result.URL)
	}
	if result.PageURL != "https://example.com/page" {
		t.Errorf("expected page URL, got %q", result.PageURL)
	}
	if result.Title != "Solar plant aerial view" {
		t.Errorf("unexpected title %q", result.Title)
	}
}

func TestSearchVideos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(videoResponse))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)
	result := c.SearchVideos(context.Background(), "solar kenya")
	if result == nil {
		t.Fatal("expected video result")
	}
	if result.URL != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("unexpected video URL %q", result.URL)
	}
}

func TestSearchEmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)
	if c.SearchImages(context.Background(), "nothing") != nil {
		t.Error("expected nil for empty image results")
	}
	if c.SearchVideos(context.Background(), "nothing") != nil {
		t.Error("expected nil for empty video results")
	}
}

func TestSearchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)
	if c.SearchImages(context.Background(), "query") != nil {
		t.Error("expected nil on HTTP error")
	}
}

func TestSearchNotConfigured(t *testing.T) {
	c := NewClient("SWEN_TEST_MISSING_BRAVE_KEY", "", "")
	if c.IsConfigured() {
		t.Error("expected unconfigured client")
	}
	if c.SearchImages(context.Background(), "query") != nil {
		t.Error("expected nil without API key")
	}
}

func TestDiscoverMedia(t *testing.T) {
	imageSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(imageResponse))
	}))
	defer imageSrv.Close()
	videoSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(videoResponse))
	}))
	defer videoSrv.Close()

	c := newTestClient(imageSrv.URL, videoSrv.URL)
	results := c.DiscoverMedia(context.Background(), "solar kenya")

	if results.Query != "solar kenya" {
		t.Errorf("expected query preserved, got %q", results.Query)
	}
	if results.ImageURL != "https://example.com/solar.jpg" {
		t.Errorf("unexpected image URL %q", results.ImageURL)
	}
	if results.VideoURL != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("unexpected video URL %q", results.VideoURL)
	}
	if results.Image == nil || results.Video == nil {
		t.Error("expected metadata for both verticals")
	}
}

func TestDiscoverMediaNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)
	results := c.DiscoverMedia(context.Background(), "nothing")
	if results.ImageURL != "" || results.VideoURL != "" {
		t.Error("expected empty URLs when both verticals miss")
	}
}
