package extract

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Field names used by providers that publish structured range documents.
// Google, OpenAI, Microsoft and Apple all use this pair, though the
// surrounding document layout differs per provider.
const (
	fieldIPv4Prefix = "ipv4Prefix"
	fieldIPv6Prefix = "ipv6Prefix"
)

// StructuredExtractor pulls prefixes out of JSON documents by recursively
// scanning every object for ipv4Prefix/ipv6Prefix fields, regardless of
// where they sit in the document.
type StructuredExtractor struct{}

var _ Extractor = (*StructuredExtractor)(nil)

// NewStructuredExtractor creates a new StructuredExtractor.
func NewStructuredExtractor() *StructuredExtractor {
	return &StructuredExtractor{}
}

// Extract returns every ipv4Prefix/ipv6Prefix value in the document, in
// document order, filtered by the requested IP version mode.
func (*StructuredExtractor) Extract(payload []byte, mode IPVersion) ([]string, error) {
	if !gjson.ValidBytes(payload) {
		return nil, fmt.Errorf("payload is not valid JSON")
	}

	prefixes := []string{}
	collect(gjson.ParseBytes(payload), mode, &prefixes)
	return prefixes, nil
}

// collect walks the parsed document depth-first, gathering prefix fields
// from every object it encounters.
func collect(value gjson.Result, mode IPVersion, out *[]string) {
	if !value.IsObject() && !value.IsArray() {
		return
	}

	value.ForEach(func(key, child gjson.Result) bool {
		if value.IsObject() && child.Type == gjson.String {
			switch key.Str {
			case fieldIPv4Prefix:
				if mode.WantV4() {
					*out = append(*out, child.Str)
				}
			case fieldIPv6Prefix:
				if mode.WantV6() {
					*out = append(*out, child.Str)
				}
			}
		}
		collect(child, mode, out)
		return true
	})
}
