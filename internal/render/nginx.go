package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/botranges/botranges/internal/aggregate"
)

// Nginx renders a geo block classifying client addresses: matching
// prefixes map to 1, everything else to the default 0. The output is valid
// for direct inclusion at the http level of an nginx configuration; a
// commented template shows the matching deny action for a server block.
func Nginx(agg *aggregate.Aggregate, meta Metadata) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Crawler allowlist generated %s (mode: %s)\n",
		meta.GeneratedAt.UTC().Format(time.RFC3339), meta.IPVersion)
	b.WriteString("geo $crawler_allowed {\n")
	b.WriteString("    default 0;\n")
	for _, prefix := range agg.Prefixes() {
		fmt.Fprintf(&b, "    %s 1;\n", prefix)
	}
	b.WriteString("}\n")
	b.WriteString("\n")
	b.WriteString("# Add to a server block to deny everything except listed crawlers:\n")
	b.WriteString("# if ($crawler_allowed = 0) {\n")
	b.WriteString("#     return 403;\n")
	b.WriteString("# }\n")

	return b.String()
}
