package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/nahomderese/fast-api-news-api/internal/ingest"
	"github.com/nahomderese/fast-api-news-api/internal/news"
)

const (
	serviceName    = "SWEN AI-Enriched News Pipeline"
	serviceVersion = "1.0.0"

	defaultListLimit = 50
	maxListLimit     = 100
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"detail": message})
}

// handleIngest accepts a raw article, enriches it, and stores it.
func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var raw news.RawArticle
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	article, err := s.ingester.Ingest(r.Context(), &raw)
	if err != nil {
		if errors.Is(err, ingest.ErrInvalidArticle) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Ingestion failed: %v", err)
		writeError(w, http.StatusInternalServerError, "ingestion failed")
		return
	}

	writeJSON(w, http.StatusCreated, news.IngestResponse{
		Status:  "success",
		Message: "Article ingested and enriched",
		ID:      article.ID,
		Data:    article,
	})
}

// handleNewsList returns a paginated window of stored articles.
func (s *Server) handleNewsList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	limit, ok := queryInt(r, "limit", defaultListLimit)
	if !ok || limit < 1 || limit > maxListLimit {
		writeError(w, http.StatusBadRequest, "limit must be between 1 and 100")
		return
	}
	offset, ok := queryInt(r, "offset", 0)
	if !ok || offset < 0 {
		writeError(w, http.StatusBadRequest, "offset must be non-negative")
		return
	}

	articles, err := s.db.ListArticles(limit, offset)
	if err != nil {
		log.Printf("List failed: %v", err)
		writeError(w, http.StatusInternalServerError, "listing articles failed")
		return
	}
	total, err := s.db.CountArticles()
	if err != nil {
		log.Printf("Count failed: %v", err)
		writeError(w, http.StatusInternalServerError, "listing articles failed")
		return
	}

	items := make([]news.Summary, 0, len(articles))
	for _, a := range articles {
		items = append(items, a.Summarize())
	}
	writeJSON(w, http.StatusOK, news.ListResponse{Total: total, Items: items})
}

// handleNewsItem serves GET and DELETE for a single article by ID.
func (s *Server) handleNewsItem(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimPrefix(r.URL.Path, "/api/v1/news/")
	if slug == "" || strings.Contains(slug, "/") {
		writeError(w, http.StatusNotFound, "article not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		article, err := s.db.GetArticle(slug)
		if err != nil {
			log.Printf("Get failed: %v", err)
			writeError(w, http.StatusInternalServerError, "fetching article failed")
			return
		}
		if article == nil {
			writeError(w, http.StatusNotFound, "article not found")
			return
		}
		writeJSON(w, http.StatusOK, article)

	case http.MethodDelete:
		deleted, err := s.db.DeleteArticle(slug)
		if err != nil {
			log.Printf("Delete failed: %v", err)
			writeError(w, http.StatusInternalServerError, "deleting article failed")
			return
		}
		if !deleted {
			writeError(w, http.StatusNotFound, "article not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleSearch returns articles matching a free-text query.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "q is required")
		return
	}
	limit, ok := queryInt(r, "limit", defaultListLimit)
	if !ok || limit < 1 || limit > maxListLimit {
		writeError(w, http.StatusBadRequest, "limit must be between 1 and 100")
		return
	}

	articles, err := s.db.SearchArticles(query, limit)
	if err != nil {
		log.Printf("Search failed: %v", err)
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}

	items := make([]news.Summary, 0, len(articles))
	for _, a := range articles {
		items = append(items, a.Summarize())
	}
	writeJSON(w, http.StatusOK, news.ListResponse{Total: len(items), Items: items})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": serviceName,
		"version": serviceVersion,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.db.GetStats()
	if err != nil {
		log.Printf("Stats failed: %v", err)
		writeError(w, http.StatusInternalServerError, "stats failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total_articles": stats.TotalArticles,
		"avg_relevance":  stats.AvgRelevance,
		"status":         "operational",
	})
}

// queryInt parses an integer query parameter with a default. The
// second return is false when the value is present but not a number.
func queryInt(r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
