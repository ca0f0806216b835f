package extract

import (
	"fmt"

	"github.com/botranges/botranges/internal/registry"
)

// IPVersion selects which prefix families an extractor returns.
type IPVersion int

const (
	// Both returns IPv4 and IPv6 prefixes
	Both IPVersion = iota

	// V4Only returns only IPv4 prefixes
	V4Only

	// V6Only returns only IPv6 prefixes
	V6Only
)

// WantV4 reports whether IPv4 prefixes are requested.
func (v IPVersion) WantV4() bool {
	return v == Both || v == V4Only
}

// WantV6 reports whether IPv6 prefixes are requested.
func (v IPVersion) WantV6() bool {
	return v == Both || v == V6Only
}

// String returns the mode name used in rendered metadata.
func (v IPVersion) String() string {
	switch v {
	case V4Only:
		return "ipv4"
	case V6Only:
		return "ipv6"
	default:
		return "both"
	}
}

// Extractor converts a raw upstream payload into a sequence of CIDR
// strings. An empty sequence with a nil error means the payload was
// readable but contained no prefixes for the requested mode.
type Extractor interface {
	Extract(payload []byte, mode IPVersion) ([]string, error)
}

// ForShape returns the extractor for the given source shape.
func ForShape(shape registry.Shape) (Extractor, error) {
	switch shape {
	case registry.ShapeStructured:
		return NewStructuredExtractor(), nil
	case registry.ShapePattern:
		return NewPatternExtractor(), nil
	default:
		return nil, fmt.Errorf("unsupported source shape: %s", shape)
	}
}
