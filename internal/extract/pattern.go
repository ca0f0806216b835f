package extract

import "regexp"

// PatternExtractor scans free-text or HTML payloads for CIDR notation.
// It is used for providers that publish their ranges inside documentation
// pages rather than as structured data.
type PatternExtractor struct{}

var _ Extractor = (*PatternExtractor)(nil)

var (
	// Dotted-decimal IPv4 CIDR, e.g. 17.22.245.0/24.
	ipv4CIDRPattern = regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}/\d{1,2}\b`)

	// Colon-hex IPv6 CIDR, e.g. 2620:149:339::/48. Deliberately permissive:
	// addresses with fewer than eight hextets are accepted as-is, matching
	// the lenient handling of prose-published ranges.
	ipv6CIDRPattern = regexp.MustCompile(`(?i)\b(?:[0-9a-f]{1,4}:)+[0-9a-f:]*/\d{1,3}`)
)

// NewPatternExtractor creates a new PatternExtractor.
func NewPatternExtractor() *PatternExtractor {
	return &PatternExtractor{}
}

// Extract returns every CIDR-looking match in the payload for the requested
// IP version mode. Matches are accepted as found; no semantic validation is
// applied.
func (*PatternExtractor) Extract(payload []byte, mode IPVersion) ([]string, error) {
	prefixes := []string{}
	if mode.WantV4() {
		prefixes = append(prefixes, ipv4CIDRPattern.FindAllString(string(payload), -1)...)
	}
	if mode.WantV6() {
		prefixes = append(prefixes, ipv6CIDRPattern.FindAllString(string(payload), -1)...)
	}
	return prefixes, nil
}
