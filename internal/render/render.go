// Package render turns an aggregate into one of the supported output
// artifacts. Renderers are pure functions over the aggregate and the run
// metadata; an empty aggregate renders to a syntactically valid,
// empty-bodied artifact in every format.
package render

import (
	"fmt"
	"time"

	"github.com/botranges/botranges/internal/aggregate"
)

// Format names an output artifact type.
type Format string

const (
	// FormatText is a sorted plain-text prefix list
	FormatText Format = "text"

	// FormatJSON is a JSON document with metadata and per-source groups
	FormatJSON Format = "json"

	// FormatNginx is an nginx geo block
	FormatNginx Format = "nginx"

	// FormatApache is an Apache RequireAll access-control block
	FormatApache Format = "apache"
)

// Formats lists the supported formats in help-text order.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatNginx, FormatApache}
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatText, FormatJSON, FormatNginx, FormatApache:
		return Format(name), nil
	default:
		return "", fmt.Errorf("invalid format %q (supported: text, json, nginx, apache)", name)
	}
}

// Metadata describes the run that produced an aggregate. It is echoed into
// formats that carry headers or metadata fields.
type Metadata struct {
	// GeneratedAt is the generation timestamp
	GeneratedAt time.Time

	// IPVersion is the requested IP version mode name
	IPVersion string

	// Providers echoes the provider selection criteria
	Providers string

	// Bots echoes the bot selection criteria
	Bots string

	// ExcludeSearch echoes the search-category exclusion flag
	ExcludeSearch bool

	// ExcludeUser echoes the user-category exclusion flag
	ExcludeUser bool
}

// Render dispatches to the renderer for the given format.
func Render(format Format, agg *aggregate.Aggregate, meta Metadata) (string, error) {
	switch format {
	case FormatText:
		return Text(agg), nil
	case FormatJSON:
		return JSON(agg, meta)
	case FormatNginx:
		return Nginx(agg, meta), nil
	case FormatApache:
		return Apache(agg, meta), nil
	default:
		return "", fmt.Errorf("invalid format %q", format)
	}
}
