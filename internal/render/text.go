package render

import (
	"strings"

	"github.com/botranges/botranges/internal/aggregate"
)

// Text renders the flat aggregate as a sorted, newline-terminated prefix
// list. An empty aggregate renders to an empty string.
func Text(agg *aggregate.Aggregate) string {
	prefixes := agg.Prefixes()
	if len(prefixes) == 0 {
		return ""
	}
	return strings.Join(prefixes, "\n") + "\n"
}
