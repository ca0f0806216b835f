// Package aggregate fetches the selected sources and merges their prefixes.
//
// Sources are fetched independently with bounded concurrency. Any per-source
// failure — transport error, non-2xx response, unparseable payload, or an
// empty result — becomes a warning and the run continues with the remaining
// sources. Partial upstream unavailability degrades output completeness,
// never availability.
package aggregate
