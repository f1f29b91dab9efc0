package news

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// RawArticle is the caller-supplied input to the ingestion pipeline.
// The JSON decoder accepts both author/published_date and the
// publisher/published_at aliases used by some upstream feeds.
type RawArticle struct {
	Title         string
	Body          string
	SourceURL     string
	Author        string
	PublishedDate string
}

type rawArticleJSON struct {
	Title         string `json:"title"`
	Body          string `json:"body"`
	SourceURL     string `json:"source_url"`
	Author        string `json:"author"`
	Publisher     string `json:"publisher"`
	PublishedDate string `json:"published_date"`
	PublishedAt   string `json:"published_at"`
}

// UnmarshalJSON decodes a raw article, preferring author/published_date
// over the publisher/published_at aliases when both are present.
func (r *RawArticle) UnmarshalJSON(data []byte) error {
	var aux rawArticleJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.Title = aux.Title
	r.Body = aux.Body
	r.SourceURL = aux.SourceURL
	r.Author = aux.Author
	if r.Author == "" {
		r.Author = aux.Publisher
	}
	r.PublishedDate = aux.PublishedDate
	if r.PublishedDate == "" {
		r.PublishedDate = aux.PublishedAt
	}
	return nil
}

// Validate checks the raw article before enrichment begins.
func (r *RawArticle) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(r.Body) == "" {
		return fmt.Errorf("body is required")
	}
	u, err := url.Parse(r.SourceURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("source_url must be a valid http(s) URL")
	}
	return nil
}

// Media holds the AI-discovered media enrichment for an article.
type Media struct {
	SearchQuery      string `json:"search_query,omitempty"`
	FeaturedImageURL string `json:"featured_image_url,omitempty"`
	ImageCaption     string `json:"image_caption,omitempty"`
	RelatedVideoURL  string `json:"related_video_url,omitempty"`
	VideoCaption     string `json:"video_caption,omitempty"`
	Justification    string `json:"media_justification,omitempty"`
}

// Context holds the AI-generated contextual enrichment.
type Context struct {
	WikipediaSnippet string `json:"wikipedia_snippet,omitempty"`
	SocialSentiment  string `json:"social_sentiment,omitempty"`
	SearchTrend      string `json:"search_trend,omitempty"`
}

// Geo holds geographic coordinates and a map link. Either all three
// fields are populated or all three are empty.
type Geo struct {
	Lat    *float64 `json:"lat,omitempty"`
	Lng    *float64 `json:"lng,omitempty"`
	MapURL string   `json:"map_url,omitempty"`
}

// IsEmpty reports whether the geo point carries no location.
func (g Geo) IsEmpty() bool {
	return g.Lat == nil && g.Lng == nil && g.MapURL == ""
}

// Article is the fully enriched record stored and returned by the API.
type Article struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Body           string   `json:"body"`
	SourceURL      string   `json:"source_url"`
	Publisher      string   `json:"publisher,omitempty"`
	PublishedAt    string   `json:"published_at,omitempty"`
	Summary        string   `json:"summary"`
	Tags           []string `json:"tags"`
	RelevanceScore float64  `json:"relevance_score"`
	Media          Media    `json:"media"`
	Context        Context  `json:"context"`
	Geo            Geo      `json:"geo"`
	IngestedAt     string   `json:"ingested_at"`
}

// Summary is the reduced projection used by the list endpoint.
type Summary struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Summary          string   `json:"summary"`
	Tags             []string `json:"tags"`
	RelevanceScore   float64  `json:"relevance_score"`
	PublishedAt      string   `json:"published_at,omitempty"`
	IngestedAt       string   `json:"ingested_at"`
	FeaturedImageURL string   `json:"featured_image_url,omitempty"`
}

// Summarize reduces an article to its list projection.
func (a *Article) Summarize() Summary {
	return Summary{
		ID:               a.ID,
		Title:            a.Title,
		Summary:          a.Summary,
		Tags:             a.Tags,
		RelevanceScore:   a.RelevanceScore,
		PublishedAt:      a.PublishedAt,
		IngestedAt:       a.IngestedAt,
		FeaturedImageURL: a.Media.FeaturedImageURL,
	}
}

// ListResponse is the payload of GET /api/v1/news.
type ListResponse struct {
	Total int       `json:"total"`
	Items []Summary `json:"items"`
}

// IngestResponse is the payload of POST /api/v1/ingest.
type IngestResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	ID      string   `json:"id"`
	Data    *Article `json:"data"`
}
