package enrich

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/nahomderese/fast-api-news-api/internal/llm"
	"github.com/nahomderese/fast-api-news-api/internal/news"
	"github.com/nahomderese/fast-api-news-api/internal/search"
)

// MediaSearcher discovers image and video candidates for a query.
type MediaSearcher interface {
	DiscoverMedia(ctx context.Context, query string) search.MediaResults
	IsConfigured() bool
}

// Enricher produces the AI facets attached to an ingested article. Each
// facet method degrades to a deterministic fallback on provider errors,
// so enrichment never blocks ingestion.
type Enricher struct {
	provider  llm.Provider
	search    MediaSearcher
	useMock   bool
	maxTokens int
}

// New creates an enricher. With useMock set, or when the provider has
// no credentials, facets return deterministic values without network
// calls.
func New(provider llm.Provider, searcher MediaSearcher, useMock bool, maxTokens int) *Enricher {
	if maxTokens <= 0 {
		maxTokens = 1024
	}
	return &Enricher{
		provider:  provider,
		search:    searcher,
		useMock:   useMock,
		maxTokens: maxTokens,
	}
}

func (e *Enricher) mock() bool {
	return e.useMock || e.provider == nil || !e.provider.IsConfigured()
}

// generate runs one prompt and returns the cleaned response text.
func (e *Enricher) generate(ctx context.Context, prompt string) (string, error) {
	text, err := e.provider.Generate(ctx, prompt, e.maxTokens)
	if err != nil {
		return "", err
	}
	return llm.CleanResponse(text), nil
}

// Summarize produces a 2-3 sentence summary of the article.
func (e *Enricher) Summarize(ctx context.Context, title, body string) string {
	if e.mock() {
		words := strings.Fields(body)
		if len(words) > 30 {
			words = words[:30]
		}
		return strings.Join(words, " ") + "..."
	}

	text, err := e.generate(ctx, summaryPrompt(title, body))
	if err != nil || !QualityContent(text, minSnippetLength) {
		if err != nil {
			log.Printf("summary generation failed: %v", err)
		}
		return fallbackSummary
	}
	return text
}

// Tags produces between three and five hashtags for the article.
func (e *Enricher) Tags(ctx context.Context, title, body string) []string {
	if e.mock() {
		return append([]string(nil), mockTags...)
	}

	text, err := e.generate(ctx, tagsPrompt(title, body))
	if err != nil {
		log.Printf("tag generation failed: %v", err)
		return append([]string(nil), fallbackTags...)
	}

	raw := llm.ParseJSONArray(text)
	if raw == nil {
		return append([]string(nil), fallbackTags...)
	}

	var tags []string
	for _, tag := range raw {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + tag
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return append([]string(nil), fallbackTags...)
	}
	for len(tags) < minTags {
		tags = append(tags, padTag)
	}
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	return tags
}

// RelevanceScore rates the article's relevance on a 0-1 scale.
func (e *Enricher) RelevanceScore(ctx context.Context, title, body string) float64 {
	if e.mock() {
		return fallbackRelevanceScore
	}

	text, err := e.generate(ctx, relevancePrompt(title, body))
	if err != nil {
		log.Printf("relevance scoring failed: %v", err)
		return fallbackRelevanceScore
	}

	score, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		log.Printf("relevance score %q not a number, using fallback", text)
		return fallbackRelevanceScore
	}
	return clampScore(score)
}

// MediaSearchQuery produces a short search query for media discovery.
// The query never exceeds seven words; on failure it falls back to the
// truncated article title.
func (e *Enricher) MediaSearchQuery(ctx context.Context, title, body string) string {
	if e.mock() {
		return truncateChars(title, mockQueryChars)
	}

	text, err := e.generate(ctx, mediaQueryPrompt(title, body))
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			log.Printf("media query generation failed: %v", err)
		}
		return truncateChars(title, fallbackQueryChars)
	}
	query := strings.Trim(strings.TrimSpace(text), `"'`)
	return truncateWords(query, maxQueryWords)
}

// DiscoverMedia resolves the search query into concrete media
// references. A missing or invalid image is replaced with the curated
// fallback; a missing video stays absent. Mock mode returns a fixed
// media block without touching the network.
func (e *Enricher) DiscoverMedia(ctx context.Context, query string) news.Media {
	if e.mock() {
		return news.Media{
			SearchQuery:      mockSearchQuery,
			FeaturedImageURL: fallbackImageURL,
			ImageCaption:     fallbackImageCaption,
			RelatedVideoURL:  mockVideoURL,
			VideoCaption:     mockVideoCaption,
			Justification:    fallbackJustification,
		}
	}

	media := news.Media{
		SearchQuery:   query,
		Justification: fallbackJustification,
	}

	var results search.MediaResults
	if e.search != nil && e.search.IsConfigured() {
		results = e.search.DiscoverMedia(ctx, query)
	}

	if ValidMediaURL(results.ImageURL, "image") {
		media.FeaturedImageURL = results.ImageURL
		caption := query
		if results.Image != nil && results.Image.Title != "" {
			caption = results.Image.Title
		}
		media.ImageCaption = truncateWords(caption, maxCaptionWords)
	} else {
		media.FeaturedImageURL = fallbackImageURL
		media.ImageCaption = fallbackImageCaption
	}

	// No video fallback: an absent video stays absent.
	if ValidMediaURL(results.VideoURL, "video") {
		media.RelatedVideoURL = results.VideoURL
		caption := query
		if results.Video != nil && results.Video.Title != "" {
			caption = results.Video.Title
		}
		media.VideoCaption = truncateWords(caption, maxCaptionWords)
	}

	return media
}

// ExtractContext produces the contextual facet: background snippet,
// sentiment label, and trend label.
func (e *Enricher) ExtractContext(ctx context.Context, title, body string) news.Context {
	if e.mock() {
		return news.Context{
			WikipediaSnippet: fallbackSnippet,
			SocialSentiment:  fallbackSentiment,
			SearchTrend:      fallbackTrend,
		}
	}

	fallback := news.Context{
		WikipediaSnippet: fallbackSnippet,
		SocialSentiment:  fallbackSentiment,
		SearchTrend:      fallbackTrend,
	}

	text, err := e.generate(ctx, contextPrompt(title, body))
	if err != nil {
		log.Printf("context extraction failed: %v", err)
		return fallback
	}

	parsed := llm.ParseJSONResponse(text)
	if parsed == nil {
		return fallback
	}

	// A parsed response with a missing or thin snippet gets the thin
	// substitute; only unparseable responses keep the full fallback.
	result := fallback
	result.WikipediaSnippet = thinSnippet
	if snippet, ok := parsed["wikipedia_snippet"].(string); ok && QualityContent(snippet, minSnippetLength) {
		result.WikipediaSnippet = snippet
	}
	if sentiment, ok := parsed["social_sentiment"].(string); ok {
		sentiment = strings.ToLower(strings.TrimSpace(sentiment))
		if oneOf(sentiment, sentimentOptions) {
			result.SocialSentiment = sentiment
		}
	}
	if trend, ok := parsed["search_trend"].(string); ok {
		trend = strings.ToLower(strings.TrimSpace(trend))
		if oneOf(trend, trendOptions) {
			result.SearchTrend = trend
		}
	}
	return result
}

// ExtractGeo identifies the article's primary location. The result is
// all-or-nothing: either lat, lng and map URL are all set, or the geo
// facet is empty.
func (e *Enricher) ExtractGeo(ctx context.Context, title, body string) news.Geo {
	if e.mock() {
		return geoPoint(mockLat, mockLng)
	}

	text, err := e.generate(ctx, geoPrompt(title, body))
	if err != nil {
		log.Printf("geo extraction failed: %v", err)
		return news.Geo{}
	}

	parsed := llm.ParseJSONResponse(text)
	if parsed == nil {
		return news.Geo{}
	}

	lat, latOK := asFloat(parsed["lat"])
	lng, lngOK := asFloat(parsed["lng"])
	if !latOK || !lngOK || !ValidCoordinates(lat, lng) {
		return news.Geo{}
	}

	geo := geoPoint(lat, lng)
	if mapURL, ok := parsed["map_url"].(string); ok && strings.HasPrefix(mapURL, "https://") {
		geo.MapURL = mapURL
	}
	return geo
}

// geoPoint builds a complete geo facet from coordinates.
func geoPoint(lat, lng float64) news.Geo {
	return news.Geo{
		Lat:    &lat,
		Lng:    &lng,
		MapURL: fmt.Sprintf("https://www.google.com/maps?q=%g,%g", lat, lng),
	}
}

func asFloat(v any) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

// Enrich runs all six facets concurrently and assembles the result
// onto the article. Facet methods never return errors, so a slow or
// failing provider degrades individual facets without aborting the
// whole enrichment.
func (e *Enricher) Enrich(ctx context.Context, article *news.Article) {
	title, body := article.Title, article.Body

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		article.Summary = e.Summarize(gctx, title, body)
		return nil
	})
	g.Go(func() error {
		article.Tags = e.Tags(gctx, title, body)
		return nil
	})
	g.Go(func() error {
		article.RelevanceScore = e.RelevanceScore(gctx, title, body)
		return nil
	})
	g.Go(func() error {
		query := e.MediaSearchQuery(gctx, title, body)
		article.Media = e.DiscoverMedia(gctx, query)
		return nil
	})
	g.Go(func() error {
		article.Context = e.ExtractContext(gctx, title, body)
		return nil
	})
	g.Go(func() error {
		article.Geo = e.ExtractGeo(gctx, title, body)
		return nil
	})

	g.Wait()
}
