package search

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"
)

const (
	defaultImageSearchURL = "https://api.search.brave.com/res/v1/images/search"
	defaultVideoSearchURL = "https://api.search.brave.com/res/v1/videos/search"
)

// ImageResult is the first image hit for a query.
type ImageResult struct {
	URL       string // direct asset URL
	PageURL   string
	Title     string
	Source    string
	Thumbnail string
	Width     int
	Height    int
}

// VideoResult is the first video hit for a query.
type VideoResult struct {
	URL         string
	Title       string
	Description string
	Thumbnail   string
}

// MediaResults combines the image and video hits for one query.
type MediaResults struct {
	Query    string
	ImageURL string
	Image    *ImageResult
	VideoURL string
	Video    *VideoResult
}

// Client queries the Brave Search API for images and videos. Every
// lookup returns nil on missing credentials, transport errors, HTTP
// errors, or empty result sets; callers treat absence as a normal
// outcome.
type Client struct {
	apiKey         string
	imageSearchURL string
	videoSearchURL string
	client         *http.Client
}

// NewClient creates a new Brave Search client. The API key is read from
// the environment variable named by apiKeyEnv.
func NewClient(apiKeyEnv, imageSearchURL, videoSearchURL string) *Client {
	if imageSearchURL == "" {
		imageSearchURL = defaultImageSearchURL
	}
	if videoSearchURL == "" {
		videoSearchURL = defaultVideoSearchURL
	}
	return &Client{
		apiKey:         os.Getenv(apiKeyEnv),
		imageSearchURL: imageSearchURL,
		videoSearchURL: videoSearchURL,
		client:         &http.Client{Timeout: 30 * time.Second},
	}
}

// IsConfigured returns whether the API key is available.
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

// SearchImages returns the first image result for a query, or nil.
func (c *Client) SearchImages(ctx context.Context, query string) *ImageResult {
	body := c.get(ctx, c.imageSearchURL, query)
	if body == nil {
		return nil
	}

	var result struct {
		Results []struct {
			Title     string `json:"title"`
			URL       string `json:"url"`
			Source    string `json:"source"`
			Thumbnail struct {
				Src string `json:"src"`
			} `json:"thumbnail"`
			Properties struct {
				URL    string `json:"url"`
				Width  int    `json:"width"`
				Height int    `json:"height"`
			} `json:"properties"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		log.Printf("Brave image search decode error: %v", err)
		return nil
	}
	if len(result.Results) == 0 {
		return nil
	}

	first := result.Results[0]
	return &ImageResult{
		URL:       first.Properties.URL,
		PageURL:   first.URL,
		Title:     first.Title,
		Source:    first.Source,
		Thumbnail: first.Thumbnail.Src,
		Width:     first.Properties.Width,
		Height:    first.Properties.Height,
	}
}

// SearchVideos returns the first video result for a query, or nil.
func (c *Client) SearchVideos(ctx context.Context, query string) *VideoResult {
	body := c.get(ctx, c.videoSearchURL, query)
	if body == nil {
		return nil
	}

	var result struct {
		Results []struct {
			URL         string `json:"url"`
			Title       string `json:"title"`
			Description string `json:"description"`
			Thumbnail   struct {
				Src string `json:"src"`
			} `json:"thumbnail"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		log.Printf("Brave video search decode error: %v", err)
		return nil
	}
	if len(result.Results) == 0 {
		return nil
	}

	first := result.Results[0]
	return &VideoResult{
		URL:         first.URL,
		Title:       first.Title,
		Description: first.Description,
		Thumbnail:   first.Thumbnail.Src,
	}
}

// DiscoverMedia searches both verticals with a single query.
func (c *Client) DiscoverMedia(ctx context.Context, query string) MediaResults {
	r := MediaResults{Query: query}

	if img := c.SearchImages(ctx, query); img != nil {
		r.Image = img
		r.ImageURL = img.URL
	}
	if vid := c.SearchVideos(ctx, query); vid != nil {
		r.Video = vid
		r.VideoURL = vid.URL
	}

	return r
}

func (c *Client) get(ctx context.Context, searchURL, query string) []byte {
	if c.apiKey == "" {
		log.Println("Brave Search not configured, skipping lookup")
		return nil
	}

	params := url.Values{
		"q":     {query},
		"count": {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, "GET", searchURL+"?"+params.Encode(), nil)
	if err != nil {
		log.Printf("Brave Search request error: %v", err)
		return nil
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("Brave Search error: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Brave Search HTTP error: %d", resp.StatusCode)
		return nil
	}

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("Brave Search read error: %v", err)
		return nil
	}
	return buf
}
