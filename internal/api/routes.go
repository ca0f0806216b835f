package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/botranges/botranges/internal/aggregate"
	"github.com/botranges/botranges/internal/extract"
	"github.com/botranges/botranges/internal/filtering"
	"github.com/botranges/botranges/internal/registry"
	"github.com/botranges/botranges/internal/render"
	"github.com/botranges/botranges/internal/versions"
)

// WarningsHeader carries the number of sources skipped while building the
// response.
const WarningsHeader = "X-Botranges-Warnings"

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
}

// sourceResponse is the JSON view of a catalog entry.
type sourceResponse struct {
	ID       string `json:"id"`
	Provider string `json:"provider"`
	Bot      string `json:"bot"`
	Category string `json:"category"`
	URL      string `json:"url"`
}

// routes holds the handler dependencies.
type routes struct {
	catalog    *registry.Catalog
	aggregator *aggregate.Aggregator
}

func newRoutes(catalog *registry.Catalog, aggregator *aggregate.Aggregator) *routes {
	return &routes{catalog: catalog, aggregator: aggregator}
}

func (*routes) getHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

func (*routes) getVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, versions.GetVersionInfo())
}

func (rt *routes) getProviders(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"providers": rt.catalog.Providers()})
}

func (rt *routes) getSources(w http.ResponseWriter, _ *http.Request) {
	sources := make([]sourceResponse, 0, rt.catalog.Len())
	for _, src := range rt.catalog.Sources() {
		sources = append(sources, sourceResponse{
			ID:       src.ID,
			Provider: src.Provider,
			Bot:      src.Bot,
			Category: string(src.Category),
			URL:      src.URL,
		})
	}
	writeJSON(w, http.StatusOK, map[string][]sourceResponse{"sources": sources})
}

// getRanges runs a fresh aggregation per request; nothing is cached
// between requests.
func (rt *routes) getRanges(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	formatName := query.Get("format")
	if formatName == "" {
		formatName = string(render.FormatText)
	}
	format, err := render.ParseFormat(formatName)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	mode, err := parseVersionParam(query.Get("version"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	criteria := filtering.Criteria{
		Providers:     query.Get("providers"),
		Bots:          query.Get("bots"),
		ExcludeSearch: query.Get("exclude-search") == "true",
		ExcludeUser:   query.Get("exclude-user") == "true",
	}

	selection, err := filtering.Select(rt.catalog, criteria)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	agg, warnings := rt.aggregator.Run(r.Context(), selection, mode)

	meta := render.Metadata{
		GeneratedAt:   time.Now(),
		IPVersion:     mode.String(),
		Providers:     orAll(criteria.Providers),
		Bots:          orAll(criteria.Bots),
		ExcludeSearch: criteria.ExcludeSearch,
		ExcludeUser:   criteria.ExcludeUser,
	}

	artifact, err := render.Render(format, agg, meta)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	w.Header().Set(WarningsHeader, strconv.Itoa(len(warnings)))
	if format == render.FormatJSON {
		w.Header().Set("Content-Type", "application/json")
	} else {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(artifact))
}

// parseVersionParam maps the version query parameter onto an extraction mode.
func parseVersionParam(value string) (extract.IPVersion, error) {
	switch value {
	case "", "both":
		return extract.Both, nil
	case "4", "ipv4":
		return extract.V4Only, nil
	case "6", "ipv6":
		return extract.V6Only, nil
	default:
		return extract.Both, &invalidVersionError{value: value}
	}
}

type invalidVersionError struct {
	value string
}

func (e *invalidVersionError) Error() string {
	return "invalid version " + strconv.Quote(e.value) + " (supported: 4, 6, both)"
}

func orAll(field string) string {
	if field == "" {
		return filtering.All
	}
	return field
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
