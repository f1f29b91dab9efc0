package collect

import (
	"context"
	"log"
	"time"

	"github.com/nahomderese/fast-api-news-api/internal/fetch"
	"github.com/nahomderese/fast-api-news-api/internal/ingest"
	"github.com/nahomderese/fast-api-news-api/internal/news"
)

// Result holds the results of a collection run.
type Result struct {
	TotalFound int
	Ingested   int
	Duplicates int
	Failed     int
	Sources    map[string]int
}

// Deduper answers whether a source URL has already been ingested.
type Deduper interface {
	HasSourceURL(sourceURL string) (bool, error)
}

// Collector pulls articles from RSS feeds and runs them through the
// ingestion pipeline.
type Collector struct {
	feedParser *FeedParser
	fetcher    *fetch.ContentFetcher
	ingester   *ingest.Service
	dedupe     Deduper
	daysBack   int
}

// NewCollector creates a new article collector.
func NewCollector(feeds []FeedConfig, ingester *ingest.Service, dedupe Deduper, daysBack int) *Collector {
	return &Collector{
		feedParser: NewFeedParser(feeds),
		fetcher:    fetch.NewContentFetcher(15 * time.Second),
		ingester:   ingester,
		dedupe:     dedupe,
		daysBack:   daysBack,
	}
}

// Collect parses all configured feeds and ingests every new entry.
// Entries whose source URL is already stored are skipped; a failing
// entry does not stop the run.
func (c *Collector) Collect(ctx context.Context) *Result {
	r := &Result{Sources: make(map[string]int)}

	log.Println("Collecting from RSS feeds...")
	entries := c.feedParser.ParseAll(ctx, c.daysBack)
	r.TotalFound = len(entries)

	for _, entry := range entries {
		seen, err := c.dedupe.HasSourceURL(entry.URL)
		if err != nil {
			log.Printf("Dedupe check failed for %s: %v", entry.URL, err)
			r.Failed++
			continue
		}
		if seen {
			r.Duplicates++
			continue
		}

		body := entry.Body
		// Feed teasers are usually too thin to enrich well.
		if len(body) < 200 {
			if full := c.fetcher.FetchContent(entry.URL); full != "" {
				body = full
			}
		}
		if body == "" {
			log.Printf("No content for %s, skipping", entry.URL)
			r.Failed++
			continue
		}

		raw := &news.RawArticle{
			Title:         entry.Title,
			Body:          body,
			SourceURL:     entry.URL,
			Author:        entry.Publisher,
			PublishedDate: entry.Published,
		}

		if _, err := c.ingester.Ingest(ctx, raw); err != nil {
			log.Printf("Ingest failed for %s: %v", entry.URL, err)
			r.Failed++
			continue
		}
		r.Ingested++
		r.Sources[entry.Publisher]++
	}

	log.Printf("Collection complete: %d found, %d ingested, %d duplicates, %d failed",
		r.TotalFound, r.Ingested, r.Duplicates, r.Failed)
	return r
}
