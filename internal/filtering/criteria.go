package filtering

import (
	"fmt"
	"strings"
)

// All selects every provider or bot known to the catalog.
const All = "all"

// Criteria is the user-supplied selection input.
type Criteria struct {
	// Providers is a comma-separated list of provider names, or "all"
	Providers string

	// Bots is a comma-separated list of source IDs (provider:bot), or "all"
	Bots string

	// ExcludeSearch drops sources tagged with the search category
	ExcludeSearch bool

	// ExcludeUser drops sources tagged with the user category
	ExcludeUser bool
}

// DefaultCriteria selects everything.
func DefaultCriteria() Criteria {
	return Criteria{Providers: All, Bots: All}
}

// wantsAll reports whether a criteria field selects the full catalog.
// Empty input is treated as "all" so zero-value criteria select everything.
func wantsAll(field string) bool {
	return field == "" || strings.EqualFold(strings.TrimSpace(field), All)
}

// splitCSV parses a comma-separated criteria field, trimming whitespace
// and dropping empty entries.
func splitCSV(field string) []string {
	var out []string
	for _, part := range strings.Split(field, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// UnknownProviderError reports a provider name not present in the catalog.
type UnknownProviderError struct {
	Provider string
	Known    []string
}

// Error returns the error message.
func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("unknown provider %q (known providers: %s)",
		e.Provider, strings.Join(e.Known, ", "))
}
