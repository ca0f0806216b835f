// Package extract converts raw upstream payloads into CIDR prefix strings.
//
// Two strategies exist, selected per source by its declared shape rather
// than by sniffing the payload:
//
//   - StructuredExtractor scans JSON documents of arbitrary nesting for
//     ipv4Prefix/ipv6Prefix fields. Upstream schemas differ across providers
//     and change without notice, so extraction keys on field names instead
//     of fixed paths.
//   - PatternExtractor scans free text or HTML for CIDR notation with two
//     independent regular expressions, one per IP family.
//
// Prefixes are opaque strings: no semantic CIDR validation or normalization
// happens here. An empty result is not an error; transport failures are
// handled before extraction by the fetch layer.
package extract
