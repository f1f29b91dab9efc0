package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nahomderese/fast-api-news-api/internal/news"
)

const articleColumns = `slug, title, body, source_url, author, published_date,
	summary, tags, sentiment_label, sentiment_score,
	featured_image_url, related_video_url, media_justification,
	wikipedia_snippet, search_trend, geo_lat, geo_lng, map_url,
	relevance_score, ingested_at`

// UpsertArticle stores an enriched article. An existing article with
// the same slug is replaced atomically; partial writes are impossible
// because the statement is a single INSERT ... ON CONFLICT.
func (db *DB) UpsertArticle(a *news.Article) error {
	tags, err := json.Marshal(a.Tags)
	if err != nil {
		return fmt.Errorf("encoding tags: %w", err)
	}

	row := rowFromArticle(a, string(tags))

	_, err = db.conn.Exec(`
INSERT INTO news_articles (`+articleColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(slug) DO UPDATE SET
	title = excluded.title,
	body = excluded.body,
	source_url = excluded.source_url,
	author = excluded.author,
	published_date = excluded.published_date,
	summary = excluded.summary,
	tags = excluded.tags,
	sentiment_label = excluded.sentiment_label,
	sentiment_score = excluded.sentiment_score,
	featured_image_url = excluded.featured_image_url,
	related_video_url = excluded.related_video_url,
	media_justification = excluded.media_justification,
	wikipedia_snippet = excluded.wikipedia_snippet,
	search_trend = excluded.search_trend,
	geo_lat = excluded.geo_lat,
	geo_lng = excluded.geo_lng,
	map_url = excluded.map_url,
	relevance_score = excluded.relevance_score,
	ingested_at = excluded.ingested_at,
	updated_at = datetime('now')`,
		row.Slug, row.Title, row.Body, row.SourceURL, row.Author, row.PublishedDate,
		row.Summary, row.TagsJSON, row.SentimentLabel, row.SentimentScore,
		row.FeaturedImageURL, row.RelatedVideoURL, row.MediaJustification,
		row.WikipediaSnippet, row.SearchTrend, row.GeoLat, row.GeoLng, row.MapURL,
		row.RelevanceScore, row.IngestedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting article %s: %w", a.ID, err)
	}
	return nil
}

// GetArticle returns the article with the given slug, or nil.
func (db *DB) GetArticle(slug string) (*news.Article, error) {
	row := db.conn.QueryRow(
		`SELECT `+articleColumns+` FROM news_articles WHERE slug = ?`, slug,
	)
	a, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListArticles returns stored articles newest-first with the given
// window. Ties on ingested_at break by insertion order, newest first.
func (db *DB) ListArticles(limit, offset int) ([]*news.Article, error) {
	rows, err := db.conn.Query(
		`SELECT `+articleColumns+` FROM news_articles
		ORDER BY ingested_at DESC, id DESC LIMIT ? OFFSET ?`, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanArticles(rows)
}

// CountArticles returns the total number of stored articles.
func (db *DB) CountArticles() (int, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM news_articles").Scan(&count)
	return count, err
}

// DeleteArticle removes the article with the given slug. Returns
// whether a row was deleted.
func (db *DB) DeleteArticle(slug string) (bool, error) {
	result, err := db.conn.Exec("DELETE FROM news_articles WHERE slug = ?", slug)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// SearchArticles returns articles whose title, body, summary or tags
// contain the query, case-insensitively, most relevant first.
func (db *DB) SearchArticles(query string, limit int) ([]*news.Article, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	rows, err := db.conn.Query(
		`SELECT `+articleColumns+` FROM news_articles
		WHERE lower(title) LIKE ? OR lower(body) LIKE ? OR lower(summary) LIKE ? OR lower(tags) LIKE ?
		ORDER BY relevance_score DESC, ingested_at DESC LIMIT ?`,
		pattern, pattern, pattern, pattern, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanArticles(rows)
}

// HasSourceURL reports whether an article from this source URL already
// exists. Collectors use it to skip re-ingesting known articles.
func (db *DB) HasSourceURL(sourceURL string) (bool, error) {
	var count int
	err := db.conn.QueryRow(
		"SELECT COUNT(*) FROM news_articles WHERE source_url = ?", sourceURL,
	).Scan(&count)
	return count > 0, err
}

// GetStats returns corpus-level statistics.
func (db *DB) GetStats() (*Stats, error) {
	var s Stats
	err := db.conn.QueryRow(
		"SELECT COUNT(*), COALESCE(AVG(relevance_score), 0) FROM news_articles",
	).Scan(&s.TotalArticles, &s.AvgRelevance)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func rowFromArticle(a *news.Article, tagsJSON string) articleRow {
	row := articleRow{
		Slug:           a.ID,
		Title:          a.Title,
		Body:           a.Body,
		SourceURL:      a.SourceURL,
		Summary:        a.Summary,
		TagsJSON:       tagsJSON,
		SentimentLabel: a.Context.SocialSentiment,
		RelevanceScore: a.RelevanceScore,
		IngestedAt:     a.IngestedAt,
	}
	row.Author = nullable(a.Publisher)
	row.PublishedDate = nullable(a.PublishedAt)
	row.FeaturedImageURL = nullable(a.Media.FeaturedImageURL)
	row.RelatedVideoURL = nullable(a.Media.RelatedVideoURL)
	row.MediaJustification = nullable(a.Media.Justification)
	row.WikipediaSnippet = nullable(a.Context.WikipediaSnippet)
	row.SearchTrend = nullable(a.Context.SearchTrend)
	row.GeoLat = a.Geo.Lat
	row.GeoLng = a.Geo.Lng
	row.MapURL = nullable(a.Geo.MapURL)
	return row
}

func articleFromRow(row *articleRow) (*news.Article, error) {
	var tags []string
	if err := json.Unmarshal([]byte(row.TagsJSON), &tags); err != nil {
		return nil, fmt.Errorf("decoding tags for %s: %w", row.Slug, err)
	}

	a := &news.Article{
		ID:             row.Slug,
		Title:          row.Title,
		Body:           row.Body,
		SourceURL:      row.SourceURL,
		Publisher:      deref(row.Author),
		PublishedAt:    deref(row.PublishedDate),
		Summary:        row.Summary,
		Tags:           tags,
		RelevanceScore: row.RelevanceScore,
		Media: news.Media{
			FeaturedImageURL: deref(row.FeaturedImageURL),
			RelatedVideoURL:  deref(row.RelatedVideoURL),
			Justification:    deref(row.MediaJustification),
		},
		Context: news.Context{
			WikipediaSnippet: deref(row.WikipediaSnippet),
			SocialSentiment:  row.SentimentLabel,
			SearchTrend:      deref(row.SearchTrend),
		},
		Geo: news.Geo{
			Lat:    row.GeoLat,
			Lng:    row.GeoLng,
			MapURL: deref(row.MapURL),
		},
		IngestedAt: row.IngestedAt,
	}
	return a, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRow(s scanner) (*news.Article, error) {
	var row articleRow
	err := s.Scan(
		&row.Slug, &row.Title, &row.Body, &row.SourceURL, &row.Author, &row.PublishedDate,
		&row.Summary, &row.TagsJSON, &row.SentimentLabel, &row.SentimentScore,
		&row.FeaturedImageURL, &row.RelatedVideoURL, &row.MediaJustification,
		&row.WikipediaSnippet, &row.SearchTrend, &row.GeoLat, &row.GeoLng, &row.MapURL,
		&row.RelevanceScore, &row.IngestedAt,
	)
	if err != nil {
		return nil, err
	}
	return articleFromRow(&row)
}

func scanArticle(row *sql.Row) (*news.Article, error) {
	return scanRow(row)
}

func scanArticles(rows *sql.Rows) ([]*news.Article, error) {
	var articles []*news.Article
	for rows.Next() {
		a, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
