package registry

// defaultSources is the built-in table of published crawler IP-range
// endpoints. Structured sources publish JSON with ipv4Prefix/ipv6Prefix
// fields in varying layouts; pattern sources publish ranges embedded in
// documentation pages.
var defaultSources = []SourceDescriptor{
	{
		ID:       "openai:gptbot",
		Provider: "openai",
		Bot:      "gptbot",
		Category: CategoryTraining,
		URL:      "https://openai.com/gptbot.json",
		Shape:    ShapeStructured,
	},
	{
		ID:       "openai:oai-searchbot",
		Provider: "openai",
		Bot:      "oai-searchbot",
		Category: CategorySearch,
		URL:      "https://openai.com/searchbot.json",
		Shape:    ShapeStructured,
	},
	{
		ID:       "openai:chatgpt-user",
		Provider: "openai",
		Bot:      "chatgpt-user",
		Category: CategoryUser,
		URL:      "https://openai.com/chatgpt-user.json",
		Shape:    ShapeStructured,
	},
	{
		ID:       "google:googlebot",
		Provider: "google",
		Bot:      "googlebot",
		Category: CategorySearch,
		URL:      "https://developers.google.com/static/search/apis/ipranges/googlebot.json",
		Shape:    ShapeStructured,
	},
	{
		ID:       "google:special-crawlers",
		Provider: "google",
		Bot:      "special-crawlers",
		Category: CategoryTraining,
		URL:      "https://developers.google.com/static/search/apis/ipranges/special-crawlers.json",
		Shape:    ShapeStructured,
	},
	{
		ID:       "google:user-triggered-fetchers",
		Provider: "google",
		Bot:      "user-triggered-fetchers",
		Category: CategoryUser,
		URL:      "https://developers.google.com/static/search/apis/ipranges/user-triggered-fetchers.json",
		Shape:    ShapeStructured,
	},
	{
		ID:       "google:user-triggered-fetchers-google",
		Provider: "google",
		Bot:      "user-triggered-fetchers-google",
		Category: CategoryAPI,
		URL:      "https://developers.google.com/static/search/apis/ipranges/user-triggered-fetchers-google.json",
		Shape:    ShapeStructured,
	},
	{
		ID:       "microsoft:bingbot",
		Provider: "microsoft",
		Bot:      "bingbot",
		Category: CategorySearch,
		URL:      "https://www.bing.com/toolbox/bingbot.json",
		Shape:    ShapeStructured,
	},
	{
		ID:       "apple:applebot",
		Provider: "apple",
		Bot:      "applebot",
		Category: CategorySearch,
		URL:      "https://search.developer.apple.com/applebot.json",
		Shape:    ShapeStructured,
	},
	{
		ID:       "perplexity:perplexitybot",
		Provider: "perplexity",
		Bot:      "perplexitybot",
		Category: CategorySearch,
		URL:      "https://www.perplexity.ai/perplexitybot.json",
		Shape:    ShapeStructured,
	},
	{
		ID:       "perplexity:perplexity-user",
		Provider: "perplexity",
		Bot:      "perplexity-user",
		Category: CategoryUser,
		URL:      "https://www.perplexity.ai/perplexity-user.json",
		Shape:    ShapeStructured,
	},
	{
		ID:       "amazon:amazonbot",
		Provider: "amazon",
		Bot:      "amazonbot",
		Category: CategoryTraining,
		URL:      "https://developer.amazon.com/amazonbot",
		Shape:    ShapePattern,
	},
	{
		ID:       "duckduckgo:duckduckbot",
		Provider: "duckduckgo",
		Bot:      "duckduckbot",
		Category: CategorySearch,
		URL:      "https://help.duckduckgo.com/duckduckgo-help-pages/results/duckduckbot/",
		Shape:    ShapePattern,
	},
	{
		ID:       "meta:facebookexternalhit",
		Provider: "meta",
		Bot:      "facebookexternalhit",
		Category: CategoryUser,
		URL:      "https://developers.facebook.com/docs/sharing/webmasters/crawler/",
		Shape:    ShapePattern,
	},
}

// NewDefaultCatalog returns the built-in source catalog.
func NewDefaultCatalog() *Catalog {
	catalog, err := NewCatalog(defaultSources...)
	if err != nil {
		// The built-in table is validated by tests; a broken table is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return catalog
}
