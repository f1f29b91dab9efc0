package news

import (
	"encoding/json"
	"testing"
)

func TestRawArticleAliases(t *testing.T) {
	data := []byte(`{
		"title": "T",
		"body": "B",
		"source_url": "https://example.com",
		"publisher": "Example News",
		"published_at": "2026-08-20"
	}`)

	var raw RawArticle
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw.Author != "Example News" {
		t.Errorf("expected publisher alias mapped to author, got %q", raw.Author)
	}
	if raw.PublishedDate != "2026-08-20" {
		t.Errorf("expected published_at alias mapped, got %q", raw.PublishedDate)
	}
}

func TestRawArticleCanonicalFieldsWin(t *testing.T) {
	data := []byte(`{
		"title": "T",
		"body": "B",
		"source_url": "https://example.com",
		"author": "Author",
		"publisher": "Publisher",
		"published_date": "2026-08-19",
		"published_at": "2026-08-20"
	}`)

	var raw RawArticle
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw.Author != "Author" {
		t.Errorf("expected author to win over publisher, got %q", raw.Author)
	}
	if raw.PublishedDate != "2026-08-19" {
		t.Errorf("expected published_date to win, got %q", raw.PublishedDate)
	}
}

func TestRawArticleValidate(t *testing.T) {
	cases := []struct {
		name string
		raw  RawArticle
		ok   bool
	}{
		{"valid", RawArticle{Title: "T", Body: "B", SourceURL: "https://example.com/x"}, true},
		{"missing title", RawArticle{Body: "B", SourceURL: "https://example.com"}, false},
		{"blank title", RawArticle{Title: "   ", Body: "B", SourceURL: "https://example.com"}, false},
		{"missing body", RawArticle{Title: "T", SourceURL: "https://example.com"}, false},
		{"bad scheme", RawArticle{Title: "T", Body: "B", SourceURL: "ftp://example.com"}, false},
		{"no host", RawArticle{Title: "T", Body: "B", SourceURL: "https://"}, false},
		{"not a url", RawArticle{Title: "T", Body: "B", SourceURL: "hello"}, false},
	}
	for _, tc := range cases {
		err := tc.raw.Validate()
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestGeoIsEmpty(t *testing.T) {
	if !(Geo{}).IsEmpty() {
		t.Error("expected zero geo to be empty")
	}
	lat := 1.0
	if (Geo{Lat: &lat}).IsEmpty() {
		t.Error("expected geo with lat to be non-empty")
	}
}

func TestArticleSummarize(t *testing.T) {
	a := &Article{
		ID:             "id-1",
		Title:          "T",
		Summary:        "S",
		Tags:           []string{"#A"},
		RelevanceScore: 0.9,
		IngestedAt:     "2026-08-25T10:00:00Z",
		Media:          Media{FeaturedImageURL: "https://cdn.example.com/x.jpg"},
	}
	s := a.Summarize()
	if s.ID != "id-1" || s.FeaturedImageURL != "https://cdn.example.com/x.jpg" {
		t.Errorf("unexpected projection %+v", s)
	}
}

func TestGeoOmittedWhenEmpty(t *testing.T) {
	a := &Article{ID: "x", Geo: Geo{}}
	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var m map[string]any
	json.Unmarshal(data, &m)
	geo, ok := m["geo"].(map[string]any)
	if !ok {
		t.Fatal("expected geo object")
	}
	if len(geo) != 0 {
		t.Errorf("expected empty geo object, got %v", geo)
	}
}
