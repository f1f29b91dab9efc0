package fetch

import (
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
)

const minExtractedLength = 100

// ContentFetcher fetches full article text via HTTP + readability
// extraction. Feed entries often carry only a teaser paragraph; the
// fetcher pulls the real body before enrichment.
type ContentFetcher struct {
	client *http.Client
}

// NewContentFetcher creates a new content fetcher.
func NewContentFetcher(timeout time.Duration) *ContentFetcher {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &ContentFetcher{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return http.ErrUseLastResponse
				}
				return nil
			},
		},
	}
}

// FetchContent extracts the readable article text from a URL. Returns
// an empty string when nothing substantial could be extracted; network
// and parse failures are soft errors since the caller can still ingest
// the feed-provided teaser.
func (f *ContentFetcher) FetchContent(articleURL string) string {
	req, err := http.NewRequest("GET", articleURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", "SWEN/1.0 (news pipeline)")

	resp, err := f.client.Do(req)
	if err != nil {
		log.Printf("fetch error for %s: %v", articleURL, err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		log.Printf("fetch HTTP %d for %s", resp.StatusCode, articleURL)
		return ""
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return ""
	}

	parsedURL, _ := url.Parse(articleURL)
	article, err := readability.FromReader(strings.NewReader(string(bodyBytes)), parsedURL)
	if err != nil {
		return ""
	}

	text := strings.TrimSpace(article.TextContent)
	if len(text) < minExtractedLength {
		return ""
	}
	return text
}
