package aggregate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/botranges/botranges/internal/extract"
	"github.com/botranges/botranges/internal/httpclient"
	"github.com/botranges/botranges/internal/registry"
)

const (
	// DefaultConcurrency bounds the number of sources fetched in parallel
	DefaultConcurrency = 4

	// DefaultFetchTimeout bounds a single source fetch
	DefaultFetchTimeout = 30 * time.Second
)

// Aggregator fetches selected sources and merges their prefixes.
type Aggregator struct {
	client      httpclient.Client
	concurrency int
	timeout     time.Duration
}

// NewAggregator creates an Aggregator. Zero concurrency or timeout values
// fall back to the defaults.
func NewAggregator(client httpclient.Client, concurrency int, timeout time.Duration) *Aggregator {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &Aggregator{
		client:      client,
		concurrency: concurrency,
		timeout:     timeout,
	}
}

// sourceResult holds the outcome of one source fetch. Exactly one of
// prefixes or warning is set.
type sourceResult struct {
	prefixes []string
	warning  *Warning
}

// Run fetches every source in the selection and returns the merged
// aggregate plus the warnings for sources that contributed nothing.
// One source's failure never aborts the run.
//
// Workers write into a per-source slot and results are merged in selection
// order afterwards, so the aggregate and the warning list are deterministic
// regardless of fetch completion order.
func (a *Aggregator) Run(
	ctx context.Context,
	selection []registry.SourceDescriptor,
	mode extract.IPVersion,
) (*Aggregate, []Warning) {
	results := make([]sourceResult, len(selection))

	group := new(errgroup.Group)
	group.SetLimit(a.concurrency)

	for i, src := range selection {
		i, src := i, src
		group.Go(func() error {
			results[i] = a.fetchSource(ctx, src, mode)
			return nil
		})
	}
	// Workers never return errors; failures land in their result slot.
	_ = group.Wait()

	aggregate := New()
	warnings := []Warning{}
	for i, src := range selection {
		result := results[i]
		if result.warning != nil {
			slog.Warn("Skipping source", "source", src.ID, "url", src.URL, "reason", result.warning.Reason)
			warnings = append(warnings, *result.warning)
			continue
		}
		slog.Debug("Fetched source", "source", src.ID, "prefixes", len(result.prefixes))
		aggregate.Insert(src.ID, result.prefixes)
	}

	return aggregate, warnings
}

// fetchSource fetches and extracts a single source, converting every
// failure mode into a warning.
func (a *Aggregator) fetchSource(
	ctx context.Context,
	src registry.SourceDescriptor,
	mode extract.IPVersion,
) sourceResult {
	warn := func(format string, args ...any) sourceResult {
		return sourceResult{warning: &Warning{
			SourceID: src.ID,
			URL:      src.URL,
			Reason:   fmt.Sprintf(format, args...),
		}}
	}

	extractor, err := extract.ForShape(src.Shape)
	if err != nil {
		return warn("%v", err)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	payload, err := a.client.Get(fetchCtx, src.URL)
	if err != nil {
		return warn("fetch failed: %v", err)
	}

	prefixes, err := extractor.Extract(payload, mode)
	if err != nil {
		return warn("extraction failed: %v", err)
	}
	if len(prefixes) == 0 {
		return warn("no prefixes found for mode %s", mode)
	}

	return sourceResult{prefixes: prefixes}
}
