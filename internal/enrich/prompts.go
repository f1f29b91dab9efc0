package enrich

import (
	"fmt"
	"strings"
)

func summaryPrompt(title, body string) string {
	return fmt.Sprintf(`You are a news editor for SWEN, focusing on African market relevance. Highlight connections to Africa, sustainability, and regional impact.

Summarize this news article in 2-3 concise sentences, emphasizing relevance to African audiences and markets.

Title: %s
Content: %s`, title, body)
}

func tagsPrompt(title, body string) string {
	return fmt.Sprintf(`You are a content strategist for SWEN focusing on African market relevance.

Analyze this news article and generate 3-5 COHERENT, SPECIFIC hashtags that:
1. Accurately reflect the article's main topics
2. Are relevant to African audiences
3. Include specific countries/regions mentioned
4. Capture key themes (economy, technology, sustainability, mining, etc.)
5. Use proper capitalization (CamelCase)

CRITICAL: Tags must be coherent with the article content. Do NOT use generic tags.

Example outputs:
- For mining news: ["#ZambiaMining", "#CriticalMinerals", "#SupplyChainDiversification"]
- For renewable energy: ["#GreenHydrogen", "#SouthAfrica", "#RenewableEnergy"]
- For tech news: ["#Nigeria", "#TechStartups", "#FinTech", "#AfricanInnovation"]

Title: %s
Content: %s

Return ONLY a JSON array of hashtag strings (with # prefix).`, title, preview(body, tagsBodyPreview))
}

func relevancePrompt(title, body string) string {
	return fmt.Sprintf(`You are SWEN's African market analyst. Score articles based on their relevance and value to African audiences.

Rate this news article's relevance to African audiences on a scale of 0.0 to 1.0.

Scoring criteria (African audience focus):
- Direct impact on African countries/regions: HIGH weight
- Relevance to African sustainability, green energy, climate: HIGH weight
- African business, economy, trade implications: HIGH weight
- Regional development, infrastructure, technology: MEDIUM weight
- Global news with African connections: MEDIUM weight
- General news with minimal African relevance: LOW weight

Return ONLY a number between 0.0 and 1.0, nothing else.

Title: %s
Content: %s`, title, preview(body, scoreBodyPreview))
}

func mediaQueryPrompt(title, body string) string {
	return fmt.Sprintf(`You are SWEN's media search query generator. Generate ONE concise, high-quality search query for finding relevant images and videos.

REQUIREMENTS:
1. Generate a search query that is 3-7 words maximum
2. Focus on the main topic/subject of the article
3. Include relevant keywords that will find authoritative media
4. Make it specific and descriptive
5. Return ONLY the search query string (no quotes, no JSON, just the query)

Article Title: %s
Article Content: %s

Generate the optimal search query:`, title, preview(body, queryBodyPreview))
}

func contextPrompt(title, body string) string {
	return fmt.Sprintf(`You are SWEN's African context analyst. Generate RICH, HIGH-QUALITY contextual analysis.

CRITICAL REQUIREMENTS:
1. Wikipedia Snippet: Write 50-100 words of insightful background context
   - Emphasize African relevance and regional impact
   - Include specific facts, statistics, or historical context
2. Social Sentiment: Analyze from African audience perspective
   - "positive" - good news for Africa, opportunities, progress
   - "negative" - challenges, setbacks, concerns for Africa
   - "neutral" - balanced or informational
3. Search Trend: Assess trending status
   - "viral" - extremely high interest, widespread discussion
   - "rising" - growing interest and searches
   - "stable" - consistent interest
   - "declining" - decreasing interest

Title: %s
Content: %s

Analyze deeply and return ONLY a JSON object:
{
  "wikipedia_snippet": "Rich, detailed background context with African relevance (50-100 words)",
  "social_sentiment": "positive",
  "search_trend": "rising"
}

NO generic responses. Make it specific and valuable.`, title, preview(body, contextBodyPreview))
}

func geoPrompt(title, body string) string {
	return fmt.Sprintf(`You are SWEN's geographic analyst with access to coordinate databases.

CRITICAL REQUIREMENTS:
1. Identify the PRIMARY location mentioned in the article (country, city, region)
2. Provide ACCURATE latitude and longitude coordinates for that location
3. Generate a proper Google Maps URL using those coordinates
4. If multiple locations are mentioned, choose the most relevant one
5. Use real coordinates (not approximations)

Common African locations reference:
%s

Title: %s
Content: %s

Analyze the content carefully and return ONLY a JSON object:
{
  "lat": -1.286389,
  "lng": 36.817223,
  "map_url": "https://www.google.com/maps?q=-1.286389,36.817223",
  "location_name": "Nairobi, Kenya"
}

If NO specific location is mentioned, return: {"lat": null, "lng": null, "map_url": null}

Return ONLY the JSON object.`, cityReference(), title, preview(body, geoBodyPreview))
}

// cityReference formats the reference cities for the geo prompt.
func cityReference() string {
	var lines []string
	for _, c := range referenceCities {
		lines = append(lines, fmt.Sprintf("- %s: %g, %g", c.Name, c.Lat, c.Lng))
	}
	return strings.Join(lines, "\n")
}

// preview truncates body text fed into a prompt, on rune boundaries.
func preview(body string, limit int) string {
	runes := []rune(body)
	if len(runes) <= limit {
		return body
	}
	return string(runes[:limit])
}
