package collect

import (
	"context"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// defaultMaxItems caps how many entries one feed contributes when its
// config does not set a limit of its own.
const defaultMaxItems = 20

// FeedEntry is one article candidate pulled from a feed.
type FeedEntry struct {
	URL       string
	Title     string
	Published string // YYYY-MM-DD, empty when the feed carries no date
	Body      string
	Publisher string
}

// FeedConfig describes one RSS/Atom feed to poll.
type FeedConfig struct {
	URL      string
	Name     string
	MaxItems int
}

// FeedParser polls the configured feeds for article candidates.
type FeedParser struct {
	feeds  []FeedConfig
	parser *gofeed.Parser
}

func NewFeedParser(feeds []FeedConfig) *FeedParser {
	return &FeedParser{feeds: feeds, parser: gofeed.NewParser()}
}

// ParseAll polls every feed and returns the entries published within
// the last daysBack days. A feed that fails to parse is logged and
// skipped; the others still contribute.
func (fp *FeedParser) ParseAll(ctx context.Context, daysBack int) []FeedEntry {
	cutoff := time.Now().AddDate(0, 0, -daysBack)

	var all []FeedEntry
	for _, fc := range fp.feeds {
		entries, err := fp.parseFeed(ctx, fc, cutoff)
		if err != nil {
			log.Printf("Failed to parse feed %s: %v", fc.URL, err)
			continue
		}
		all = append(all, entries...)
		log.Printf("Parsed %d entries from %s (within %d days)", len(entries), fc.URL, daysBack)
	}
	return all
}

func (fp *FeedParser) parseFeed(ctx context.Context, fc FeedConfig, cutoff time.Time) ([]FeedEntry, error) {
	feed, err := fp.parser.ParseURLWithContext(fc.URL, ctx)
	if err != nil {
		return nil, err
	}

	publisher := fc.Name
	if publisher == "" {
		publisher = publisherFromURL(fc.URL)
	}
	limit := fc.MaxItems
	if limit <= 0 {
		limit = defaultMaxItems
	}

	var entries []FeedEntry
	for _, item := range feed.Items {
		if len(entries) >= limit {
			break
		}
		entry, ok := entryFromItem(item, publisher)
		if !ok {
			continue
		}
		if tooOld(entry.Published, cutoff) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// entryFromItem maps a feed item onto a FeedEntry. Items without a
// resolvable link or a title are dropped.
func entryFromItem(item *gofeed.Item, publisher string) (FeedEntry, bool) {
	link := item.Link
	if link == "" {
		link = item.GUID
	}
	title := strings.TrimSpace(item.Title)
	if link == "" || title == "" {
		return FeedEntry{}, false
	}

	entry := FeedEntry{
		URL:       link,
		Title:     title,
		Publisher: publisher,
	}

	switch {
	case item.PublishedParsed != nil:
		entry.Published = item.PublishedParsed.Format("2006-01-02")
	case item.UpdatedParsed != nil:
		entry.Published = item.UpdatedParsed.Format("2006-01-02")
	}

	if item.Content != "" {
		entry.Body = stripHTML(item.Content)
	} else if item.Description != "" {
		entry.Body = stripHTML(item.Description)
	}
	return entry, true
}

// tooOld reports whether a published date falls before the cutoff.
// Undated or unparseable entries are kept.
func tooOld(published string, cutoff time.Time) bool {
	if published == "" {
		return false
	}
	pub, err := time.Parse("2006-01-02", published)
	if err != nil {
		return false
	}
	return pub.Before(cutoff)
}

var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// stripHTML drops markup from feed content: tags are replaced with
// spaces, common entities decoded, whitespace collapsed.
func stripHTML(text string) string {
	var b strings.Builder
	depth := 0
	for _, r := range text {
		switch {
		case r == '<':
			depth++
			b.WriteRune(' ')
		case r == '>':
			if depth > 0 {
				depth--
			}
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(entityReplacer.Replace(b.String())), " ")
}

// publisherFromURL derives a display name from the feed host when the
// config names none.
func publisherFromURL(feedURL string) string {
	u, err := url.Parse(feedURL)
	if err != nil || u.Hostname() == "" {
		return feedURL
	}
	host := strings.ToLower(u.Hostname())
	for _, prefix := range []string{"www.", "blog.", "blogs.", "rss.", "feeds."} {
		host = strings.TrimPrefix(host, prefix)
	}

	name := host
	if parts := strings.Split(host, "."); len(parts) >= 2 {
		name = parts[len(parts)-2]
	}
	if name == "" {
		return feedURL
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
