package enrich

// Fallback values substituted when an enrichment facet fails. Every
// facet degrades to one of these; a facet failure never aborts an
// ingestion.
const (
	fallbackSummary = "This article provides important insights relevant to African markets and development."
	fallbackSnippet = "This article covers topics of significance to African audiences and regional development."
	thinSnippet     = "This article provides important insights relevant to African markets, regional development, and continental progress."

	fallbackSentiment = "neutral"
	fallbackTrend     = "stable"

	fallbackRelevanceScore = 0.7

	fallbackImageURL     = "https://images.unsplash.com/photo-1484417894907-623942c8ee29?w=800&q=80"
	fallbackImageCaption = "High-quality image relevant to African development"

	fallbackJustification = "High-quality media content selected from authoritative sources for African audience engagement and understanding"
)

// fallbackTags replaces an unparseable tag response; padTag fills short
// tag lists up to the minimum.
var fallbackTags = []string{"#Africa", "#News", "#Development"}

const padTag = "#Africa"

// mockTags is the deterministic tag set returned in mock mode.
var mockTags = []string{"#Africa", "#News", "#Technology"}

// Deterministic media block returned in mock mode.
const (
	mockSearchQuery  = "African development technology"
	mockVideoURL     = "https://www.youtube.com/watch?v=zn8o_DwUwFk"
	mockVideoCaption = "Authoritative video content"
)

// Content limits shared by the facets.
const (
	minTags          = 3
	maxTags          = 5
	minSnippetLength = 20
	maxQueryWords    = 7
	maxCaptionWords  = 15

	mockQueryChars     = 50
	fallbackQueryChars = 100

	tagsBodyPreview    = 800
	scoreBodyPreview   = 800
	queryBodyPreview   = 800
	contextBodyPreview = 1200
	geoBodyPreview     = 1200
)

// Coordinate validation ranges.
const (
	latMin = -90.0
	latMax = 90.0
	lngMin = -180.0
	lngMax = 180.0
)

// Nairobi, used as the deterministic mock-mode location.
const (
	mockLat = -1.286389
	mockLng = 36.817223
)

// sentimentOptions and trendOptions are the fixed label sets produced
// by context extraction.
var (
	sentimentOptions = []string{"positive", "negative", "neutral"}
	trendOptions     = []string{"viral", "rising", "stable", "declining"}
)

// cityCoordinates is the reference table fed to the geo prompt.
type cityCoordinates struct {
	Name string
	Lat  float64
	Lng  float64
}

var referenceCities = []cityCoordinates{
	{"Nairobi, Kenya", -1.286389, 36.817223},
	{"Lagos, Nigeria", 6.5244, 3.3792},
	{"Johannesburg, South Africa", -26.2041, 28.0473},
	{"Cairo, Egypt", 30.0444, 31.2357},
	{"Addis Ababa, Ethiopia", 9.0320, 38.7469},
	{"Accra, Ghana", 5.6037, -0.1870},
	{"Dar es Salaam, Tanzania", -6.7924, 39.2083},
	{"Kigali, Rwanda", -1.9536, 30.0606},
}
