package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/nahomderese/fast-api-news-api/internal/collect"
	"github.com/nahomderese/fast-api-news-api/internal/config"
	"github.com/nahomderese/fast-api-news-api/internal/database"
	"github.com/nahomderese/fast-api-news-api/internal/enrich"
	"github.com/nahomderese/fast-api-news-api/internal/ingest"
	"github.com/nahomderese/fast-api-news-api/internal/llm"
	"github.com/nahomderese/fast-api-news-api/internal/news"
	"github.com/nahomderese/fast-api-news-api/internal/search"
	"github.com/nahomderese/fast-api-news-api/internal/server"
)

var version = "dev"

var (
	verbose    bool
	configPath string
	cfg        *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "swen",
	Short:   "AI-enriched news pipeline",
	Long:    "SWEN ingests news articles, enriches them with AI-generated facets and media, and serves them over a REST API.",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetFlags(log.LstdFlags | log.Lshortfile)
		} else {
			log.SetFlags(log.LstdFlags)
		}

		// Skip config loading for init and version
		if cmd.Name() == "init" || cmd.Name() == "version" {
			return nil
		}

		path, err := config.ResolveConfigPath(configPath)
		if err != nil {
			return err
		}
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(removeCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("swen", version)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration in ~/.config/swen/",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := filepath.Join(config.ConfigDir(), "config.yaml")
		if _, err := os.Stat(target); err == nil {
			fmt.Printf("Config already exists: %s\n", target)
			return nil
		}

		if err := os.MkdirAll(config.ConfigDir(), 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}

		if err := os.WriteFile(target, config.DefaultConfigYAML, 0o644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		fmt.Printf("Created config: %s\n", target)
		fmt.Println("Edit it to configure feeds, API keys, and the AI provider.")
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database and system status",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		stats, err := db.GetStats()
		if err != nil {
			return fmt.Errorf("getting stats: %w", err)
		}

		fmt.Println("Articles:")
		fmt.Printf("  Total: %d\n", stats.TotalArticles)
		fmt.Printf("  Average relevance: %.2f\n", stats.AvgRelevance)
		fmt.Println("\nProviders:")
		provider := llm.NewGeminiProvider(cfg.AI.Model, cfg.AI.APIKeyEnv)
		searcher := search.NewClient(cfg.Search.APIKeyEnv, cfg.Search.ImageSearchURL, cfg.Search.VideoSearchURL)
		fmt.Printf("  AI (%s): %s\n", cfg.AI.Model, configuredLabel(provider.IsConfigured(), cfg.AI.UseMock))
		fmt.Printf("  Media search: %s\n", configuredLabel(searcher.IsConfigured(), false))
		return nil
	},
}

func configuredLabel(configured, mock bool) string {
	if mock {
		return "mock mode"
	}
	if configured {
		return "configured"
	}
	return "not configured (set the API key or enable mock mode)"
}

// --- serve command ---

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API and dashboard server",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		port := cfg.Server.Port
		if servePort != 0 {
			port = servePort
		}

		fmt.Printf("Starting server at http://%s:%d\n", cfg.Server.Host, port)
		fmt.Println("Press Ctrl+C to stop")
		return server.Serve(db, newIngester(db), cfg.Server.Host, port)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to run server on (overrides config)")
}

// --- ingest command ---

var ingestCmd = &cobra.Command{
	Use:   "ingest [file]",
	Short: "Ingest a raw article from a JSON file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			return fmt.Errorf("reading article: %w", err)
		}

		var raw news.RawArticle
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parsing article JSON: %w", err)
		}

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		article, err := newIngester(db).Ingest(context.Background(), &raw)
		if err != nil {
			return err
		}

		fmt.Printf("Ingested: %s\n", article.ID)
		fmt.Printf("  Title: %s\n", article.Title)
		fmt.Printf("  Summary: %s\n", article.Summary)
		fmt.Printf("  Tags: %v\n", article.Tags)
		fmt.Printf("  Relevance: %.2f\n", article.RelevanceScore)
		return nil
	},
}

// --- collect command ---

var daysBack int

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect and ingest articles from configured feeds",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(cfg.Sources.Feeds) == 0 {
			return fmt.Errorf("no feeds configured; add sources.feeds to the config")
		}

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		feeds := make([]collect.FeedConfig, len(cfg.Sources.Feeds))
		for i, f := range cfg.Sources.Feeds {
			feeds[i] = collect.FeedConfig{URL: f.URL, Name: f.Name, MaxItems: f.MaxItems}
		}

		collector := collect.NewCollector(feeds, newIngester(db), db, daysBack)
		result := collector.Collect(context.Background())

		fmt.Println("\nCollection complete:")
		fmt.Printf("  Total found: %d\n", result.TotalFound)
		fmt.Printf("  Ingested: %d\n", result.Ingested)
		fmt.Printf("  Duplicates skipped: %d\n", result.Duplicates)
		fmt.Printf("  Failed: %d\n", result.Failed)

		if len(result.Sources) > 0 {
			fmt.Println("\nArticles by source:")
			// Sort sources by count descending
			type kv struct {
				key string
				val int
			}
			var sorted []kv
			for k, v := range result.Sources {
				sorted = append(sorted, kv{k, v})
			}
			sort.Slice(sorted, func(i, j int) bool { return sorted[i].val > sorted[j].val })
			for _, s := range sorted {
				fmt.Printf("  %s: %d\n", s.key, s.val)
			}
		}
		return nil
	},
}

func init() {
	collectCmd.Flags().IntVar(&daysBack, "days-back", 1, "Lookback window for feed entries (days)")
}

// --- remove command ---

var removeCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a stored article",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		deleted, err := db.DeleteArticle(args[0])
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("article %s not found", args[0])
		}
		fmt.Printf("Removed article: %s\n", args[0])
		return nil
	},
}

func newIngester(db *database.DB) *ingest.Service {
	provider := llm.NewGeminiProvider(cfg.AI.Model, cfg.AI.APIKeyEnv)
	searcher := search.NewClient(cfg.Search.APIKeyEnv, cfg.Search.ImageSearchURL, cfg.Search.VideoSearchURL)
	enricher := enrich.New(provider, searcher, cfg.AI.UseMock, cfg.AI.MaxTokens)
	return ingest.NewService(db, enricher)
}

func openDB() (*database.DB, error) {
	dataDir := cfg.GetDataDir()
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	dbPath := filepath.Join(dataDir, "swen.db")
	return database.Open(dbPath)
}
