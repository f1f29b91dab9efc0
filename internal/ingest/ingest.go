package ingest

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/nahomderese/fast-api-news-api/internal/enrich"
	"github.com/nahomderese/fast-api-news-api/internal/news"
)

// ErrInvalidArticle marks input validation failures, distinguishing
// them from storage errors for HTTP status mapping.
var ErrInvalidArticle = errors.New("invalid article")

// Store persists enriched articles.
type Store interface {
	UpsertArticle(a *news.Article) error
}

// Service runs the ingestion pipeline: validate, enrich, persist.
type Service struct {
	store    Store
	enricher *enrich.Enricher
}

// NewService creates an ingestion service.
func NewService(store Store, enricher *enrich.Enricher) *Service {
	return &Service{store: store, enricher: enricher}
}

// Ingest processes a raw article into an enriched, stored record.
// Enrichment facets degrade individually, so the only failure modes are
// invalid input and storage errors. Nothing is written before the
// article is fully assembled.
func (s *Service) Ingest(ctx context.Context, raw *news.RawArticle) (*news.Article, error) {
	if err := raw.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArticle, err)
	}

	article := &news.Article{
		ID:          uuid.NewString(),
		Title:       raw.Title,
		Body:        raw.Body,
		SourceURL:   raw.SourceURL,
		Publisher:   raw.Author,
		PublishedAt: raw.PublishedDate,
		IngestedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	start := time.Now()
	s.enricher.Enrich(ctx, article)
	log.Printf("enriched %q in %v", article.Title, time.Since(start).Round(time.Millisecond))

	if err := s.store.UpsertArticle(article); err != nil {
		return nil, fmt.Errorf("storing article: %w", err)
	}

	return article, nil
}
