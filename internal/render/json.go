package render

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/botranges/botranges/internal/aggregate"
)

// jsonSelection echoes the selection criteria of the run.
type jsonSelection struct {
	Providers     string `json:"providers"`
	Bots          string `json:"bots"`
	ExcludeSearch bool   `json:"excludeSearch"`
	ExcludeUser   bool   `json:"excludeUser"`
}

// jsonDocument is the JSON output artifact.
type jsonDocument struct {
	Generated string              `json:"generated"`
	IPVersion string              `json:"ipVersion"`
	Format    string              `json:"format"`
	Selection jsonSelection       `json:"selection"`
	Prefixes  []string            `json:"prefixes"`
	Bots      map[string][]string `json:"bots"`
}

// JSON renders the aggregate with run metadata, the sorted flat prefix
// list, and the per-source groups under "bots". Sources that contributed
// zero prefixes are absent from the map rather than present with an empty
// list.
func JSON(agg *aggregate.Aggregate, meta Metadata) (string, error) {
	groups := agg.Groups()
	bots := make(map[string][]string, len(groups))
	for id, prefixes := range groups {
		sorted := make([]string, len(prefixes))
		copy(sorted, prefixes)
		sort.Strings(sorted)
		bots[id] = sorted
	}

	doc := jsonDocument{
		Generated: meta.GeneratedAt.UTC().Format(time.RFC3339),
		IPVersion: meta.IPVersion,
		Format:    string(FormatJSON),
		Selection: jsonSelection{
			Providers:     meta.Providers,
			Bots:          meta.Bots,
			ExcludeSearch: meta.ExcludeSearch,
			ExcludeUser:   meta.ExcludeUser,
		},
		Prefixes: agg.Prefixes(),
		Bots:     bots,
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON output: %w", err)
	}
	return string(out) + "\n", nil
}
