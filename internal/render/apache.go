package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/botranges/botranges/internal/aggregate"
)

// Apache renders an access-control block granting access by default and
// excluding each prefix via a negated per-IP rule. RequireAll is valid in
// both the main server configuration and per-directory .htaccess files.
func Apache(agg *aggregate.Aggregate, meta Metadata) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Crawler blocklist generated %s (mode: %s)\n",
		meta.GeneratedAt.UTC().Format(time.RFC3339), meta.IPVersion)
	b.WriteString("<RequireAll>\n")
	b.WriteString("    Require all granted\n")
	for _, prefix := range agg.Prefixes() {
		fmt.Fprintf(&b, "    Require not ip %s\n", prefix)
	}
	b.WriteString("</RequireAll>\n")

	return b.String()
}
