package database

// articleRow mirrors the news_articles table. Tags are stored as a JSON
// array in a TEXT column; geo coordinates are nullable.
type articleRow struct {
	ID                 int64
	Slug               string
	Title              string
	Body               string
	SourceURL          string
	Author             *string
	PublishedDate      *string
	Summary            string
	TagsJSON           string
	SentimentLabel     string
	SentimentScore     float64
	FeaturedImageURL   *string
	RelatedVideoURL    *string
	MediaJustification *string
	WikipediaSnippet   *string
	SearchTrend        *string
	GeoLat             *float64
	GeoLng             *float64
	MapURL             *string
	RelevanceScore     float64
	IngestedAt         string
}

// Stats summarizes the stored corpus.
type Stats struct {
	TotalArticles int
	AvgRelevance  float64
}
