package ingest

import (
	"context"
	"strings"
	"testing"

	"github.com/nahomderese/fast-api-news-api/internal/enrich"
	"github.com/nahomderese/fast-api-news-api/internal/news"
)

type memStore struct {
	articles []*news.Article
	failNext bool
}

func (m *memStore) UpsertArticle(a *news.Article) error {
	if m.failNext {
		return context.DeadlineExceeded
	}
	m.articles = append(m.articles, a)
	return nil
}

func rawArticle() *news.RawArticle {
	return &news.RawArticle{
		Title:     "Kenya opens solar plant",
		Body:      "A new solar facility opened near Nairobi this week, expanding renewable capacity for the region and beyond.",
		SourceURL: "https://example.com/solar",
		Author:    "Example News",
	}
}

func TestIngestMockMode(t *testing.T) {
	store := &memStore{}
	svc := NewService(store, enrich.New(nil, nil, true, 0))

	article, err := svc.Ingest(context.Background(), rawArticle())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if article.ID == "" {
		t.Error("expected generated ID")
	}
	if article.Summary == "" || !strings.HasSuffix(article.Summary, "...") {
		t.Errorf("expected mock summary, got %q", article.Summary)
	}
	if len(article.Tags) != 3 {
		t.Errorf("expected 3 mock tags, got %v", article.Tags)
	}
	if article.RelevanceScore != 0.7 {
		t.Errorf("expected mock score 0.7, got %v", article.RelevanceScore)
	}
	if article.Geo.IsEmpty() {
		t.Error("expected mock geo location")
	}
	if article.Media.FeaturedImageURL == "" {
		t.Errorf("expected fallback image, got %+v", article.Media)
	}
	if article.IngestedAt == "" {
		t.Error("expected ingested_at timestamp")
	}

	if len(store.articles) != 1 {
		t.Fatalf("expected 1 stored article, got %d", len(store.articles))
	}
	if store.articles[0].ID != article.ID {
		t.Error("stored article mismatch")
	}
}

func TestIngestUniqueIDs(t *testing.T) {
	store := &memStore{}
	svc := NewService(store, enrich.New(nil, nil, true, 0))

	a1, _ := svc.Ingest(context.Background(), rawArticle())
	a2, _ := svc.Ingest(context.Background(), rawArticle())
	if a1.ID == a2.ID {
		t.Error("expected distinct IDs per ingestion")
	}
}

func TestIngestInvalidInput(t *testing.T) {
	store := &memStore{}
	svc := NewService(store, enrich.New(nil, nil, true, 0))

	cases := []*news.RawArticle{
		{Body: "body", SourceURL: "https://example.com"},
		{Title: "title", SourceURL: "https://example.com"},
		{Title: "title", Body: "body", SourceURL: "not-a-url"},
		{Title: "title", Body: "body", SourceURL: "ftp://example.com/x"},
	}
	for i, raw := range cases {
		if _, err := svc.Ingest(context.Background(), raw); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
	if len(store.articles) != 0 {
		t.Errorf("expected no writes on invalid input, got %d", len(store.articles))
	}
}

func TestIngestStorageError(t *testing.T) {
	store := &memStore{failNext: true}
	svc := NewService(store, enrich.New(nil, nil, true, 0))

	if _, err := svc.Ingest(context.Background(), rawArticle()); err == nil {
		t.Error("expected storage error to propagate")
	}
}
