package registry

import (
	"fmt"
	"sort"
)

// Category classifies what a bot uses its published ranges for.
type Category string

const (
	// CategoryTraining marks crawlers that collect model training data
	CategoryTraining Category = "training"

	// CategorySearch marks search-index crawlers
	CategorySearch Category = "search"

	// CategoryUser marks user-triggered fetchers acting on behalf of a person
	CategoryUser Category = "user"

	// CategoryAPI marks fetchers driven by API integrations
	CategoryAPI Category = "api"
)

// Shape selects the extraction strategy for a source's payload.
type Shape string

const (
	// ShapeStructured is a JSON document carrying ipv4Prefix/ipv6Prefix fields
	ShapeStructured Shape = "structured"

	// ShapePattern is a text or HTML document with CIDR ranges embedded in prose
	ShapePattern Shape = "pattern"
)

// SourceDescriptor describes one upstream endpoint for one bot identity.
type SourceDescriptor struct {
	// ID is the unique source identifier, namespaced as provider:bot
	ID string

	// Provider is the organization owning the bot
	Provider string

	// Bot is the bot identity within the provider
	Bot string

	// Category classifies the bot's purpose
	Category Category

	// URL is the upstream location of the published ranges
	URL string

	// Shape selects the extractor used for this source's payload
	Shape Shape
}

// Catalog is an immutable, ordered set of source descriptors.
type Catalog struct {
	sources []SourceDescriptor
	byID    map[string]SourceDescriptor
}

// NewCatalog builds a catalog from the given descriptors. Descriptor IDs
// must be unique; the catalog keeps sources sorted by ID so downstream
// output is deterministic.
func NewCatalog(sources ...SourceDescriptor) (*Catalog, error) {
	byID := make(map[string]SourceDescriptor, len(sources))
	ordered := make([]SourceDescriptor, 0, len(sources))

	for _, src := range sources {
		if src.ID == "" {
			return nil, fmt.Errorf("source descriptor has empty ID (url: %s)", src.URL)
		}
		if _, exists := byID[src.ID]; exists {
			return nil, fmt.Errorf("duplicate source ID: %s", src.ID)
		}
		byID[src.ID] = src
		ordered = append(ordered, src)
	}

	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].ID < ordered[j].ID
	})

	return &Catalog{sources: ordered, byID: byID}, nil
}

// Sources returns all descriptors ordered by ID.
func (c *Catalog) Sources() []SourceDescriptor {
	out := make([]SourceDescriptor, len(c.sources))
	copy(out, c.sources)
	return out
}

// Providers returns the distinct provider names, sorted. The provider set
// is derived from the descriptors rather than stored separately.
func (c *Catalog) Providers() []string {
	seen := make(map[string]struct{}, len(c.sources))
	var providers []string
	for _, src := range c.sources {
		if _, ok := seen[src.Provider]; ok {
			continue
		}
		seen[src.Provider] = struct{}{}
		providers = append(providers, src.Provider)
	}
	sort.Strings(providers)
	return providers
}

// HasProvider reports whether any source belongs to the given provider.
func (c *Catalog) HasProvider(provider string) bool {
	for _, src := range c.sources {
		if src.Provider == provider {
			return true
		}
	}
	return false
}

// Lookup returns the descriptor for the given source ID.
func (c *Catalog) Lookup(id string) (SourceDescriptor, bool) {
	src, ok := c.byID[id]
	return src, ok
}

// Len returns the number of registered sources.
func (c *Catalog) Len() int {
	return len(c.sources)
}
