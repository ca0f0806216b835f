package filtering

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/botranges/botranges/internal/registry"
)

// Select resolves criteria against the catalog into the concrete set of
// sources to fetch, ordered by source ID.
//
// The selection process:
//  1. Resolve wanted providers: "all" means every provider in the catalog;
//     an explicit list is validated and an unknown name fails the run.
//  2. Resolve candidate IDs: "all" means every registered source; an
//     explicit list is taken literally.
//  3. Keep each candidate whose provider is wanted and whose category is
//     not excluded.
func Select(catalog *registry.Catalog, criteria Criteria) ([]registry.SourceDescriptor, error) {
	wantedProviders, err := resolveProviders(catalog, criteria.Providers)
	if err != nil {
		return nil, err
	}

	candidates := catalog.Sources()
	if !wantsAll(criteria.Bots) {
		candidates = candidates[:0:0]
		for _, id := range splitCSV(criteria.Bots) {
			src, ok := catalog.Lookup(id)
			if !ok {
				// Unknown bot IDs are checked at fetch time, not here; they
				// just select nothing.
				slog.Debug("Ignoring unknown bot identifier", "bot", id)
				continue
			}
			candidates = append(candidates, src)
		}
	}

	selection := make([]registry.SourceDescriptor, 0, len(candidates))
	for _, src := range candidates {
		included, reason := shouldInclude(src, wantedProviders, criteria)
		if included {
			slog.Debug("Including source", "source", src.ID, "reason", reason)
			selection = append(selection, src)
		} else {
			slog.Debug("Excluding source", "source", src.ID, "reason", reason)
		}
	}

	// Candidates come from the catalog (already sorted by ID) or from the
	// user's bot list; re-sorting keeps explicit lists deterministic too.
	sortByID(selection)
	return selection, nil
}

// resolveProviders returns the set of wanted provider names, validating
// explicit entries against the catalog.
func resolveProviders(catalog *registry.Catalog, field string) (map[string]struct{}, error) {
	wanted := make(map[string]struct{})
	if wantsAll(field) {
		for _, provider := range catalog.Providers() {
			wanted[provider] = struct{}{}
		}
		return wanted, nil
	}

	for _, provider := range splitCSV(field) {
		if !catalog.HasProvider(provider) {
			return nil, &UnknownProviderError{Provider: provider, Known: catalog.Providers()}
		}
		wanted[provider] = struct{}{}
	}
	return wanted, nil
}

// shouldInclude applies provider membership and category exclusions,
// returning the decision and its reason.
func shouldInclude(
	src registry.SourceDescriptor,
	wantedProviders map[string]struct{},
	criteria Criteria,
) (bool, string) {
	if _, ok := wantedProviders[src.Provider]; !ok {
		return false, fmt.Sprintf("provider %q not selected", src.Provider)
	}
	if criteria.ExcludeSearch && src.Category == registry.CategorySearch {
		return false, "search category excluded"
	}
	if criteria.ExcludeUser && src.Category == registry.CategoryUser {
		return false, "user category excluded"
	}
	return true, "matched selection criteria"
}

func sortByID(sources []registry.SourceDescriptor) {
	sort.Slice(sources, func(i, j int) bool {
		return sources[i].ID < sources[j].ID
	})
}
