package aggregate

import (
	"fmt"
	"sort"
)

// Warning records one source that contributed nothing to the aggregate.
type Warning struct {
	// SourceID is the identifier of the failed source
	SourceID string

	// URL is the upstream location that was fetched
	URL string

	// Reason describes the failure
	Reason string
}

// String formats the warning for the error stream.
func (w Warning) String() string {
	return fmt.Sprintf("source %s (%s): %s", w.SourceID, w.URL, w.Reason)
}

// Aggregate is the deduplicated union of prefixes across all successfully
// fetched sources, plus the per-source grouping needed by the JSON renderer.
//
// The flat set always equals the union of the groups: a prefix published by
// two sources appears once in the flat view and in both groups.
type Aggregate struct {
	flat   map[string]struct{}
	groups map[string][]string
}

// New creates an empty Aggregate.
func New() *Aggregate {
	return &Aggregate{
		flat:   make(map[string]struct{}),
		groups: make(map[string][]string),
	}
}

// Insert records prefixes for a source. Duplicates are dropped from the
// flat view by exact string equality; within the source's group duplicates
// are dropped too, preserving first-seen order. Inserting zero prefixes is
// a no-op, so sources contributing nothing never appear in the groups.
func (a *Aggregate) Insert(sourceID string, prefixes []string) {
	if len(prefixes) == 0 {
		return
	}

	seen := make(map[string]struct{}, len(prefixes))
	for _, existing := range a.groups[sourceID] {
		seen[existing] = struct{}{}
	}
	for _, prefix := range prefixes {
		a.flat[prefix] = struct{}{}
		if _, dup := seen[prefix]; dup {
			continue
		}
		seen[prefix] = struct{}{}
		a.groups[sourceID] = append(a.groups[sourceID], prefix)
	}
}

// Prefixes returns the flat deduplicated prefix set, sorted.
func (a *Aggregate) Prefixes() []string {
	out := make([]string, 0, len(a.flat))
	for prefix := range a.flat {
		out = append(out, prefix)
	}
	sort.Strings(out)
	return out
}

// Groups returns the per-source prefix lists, keyed by source ID. Only
// sources that contributed at least one prefix are present.
func (a *Aggregate) Groups() map[string][]string {
	out := make(map[string][]string, len(a.groups))
	for id, prefixes := range a.groups {
		group := make([]string, len(prefixes))
		copy(group, prefixes)
		out[id] = group
	}
	return out
}

// Len returns the number of distinct prefixes in the flat view.
func (a *Aggregate) Len() int {
	return len(a.flat)
}
