package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/botranges/botranges/internal/aggregate"
	"github.com/botranges/botranges/internal/extract"
	"github.com/botranges/botranges/internal/filtering"
	"github.com/botranges/botranges/internal/httpclient"
	"github.com/botranges/botranges/internal/registry"
	"github.com/botranges/botranges/internal/render"
)

// runRoot executes the fetch/filter/aggregate/render pipeline.
//
// Errors returned here are configuration errors and exit non-zero; failed
// source fetches only produce warnings on stderr and leave the exit code
// untouched.
func runRoot(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	catalog := registry.NewDefaultCatalog()

	if listProviders, _ := flags.GetBool("list-providers"); listProviders {
		printProviders(cmd.OutOrStdout(), catalog)
		return nil
	}
	if listBots, _ := flags.GetBool("list-bots"); listBots {
		printSources(cmd.OutOrStdout(), catalog)
		return nil
	}

	formatName, _ := flags.GetString("format")
	format, err := render.ParseFormat(formatName)
	if err != nil {
		return err
	}

	mode := extract.Both
	if v4, _ := flags.GetBool("ipv4"); v4 {
		mode = extract.V4Only
	} else if v6, _ := flags.GetBool("ipv6"); v6 {
		mode = extract.V6Only
	}

	providers, _ := flags.GetString("providers")
	bots, _ := flags.GetString("bots")
	excludeSearch, _ := flags.GetBool("exclude-search")
	excludeUser, _ := flags.GetBool("exclude-user")

	criteria := filtering.Criteria{
		Providers:     providers,
		Bots:          bots,
		ExcludeSearch: excludeSearch,
		ExcludeUser:   excludeUser,
	}

	selection, err := filtering.Select(catalog, criteria)
	if err != nil {
		return err
	}

	timeout, _ := flags.GetDuration("timeout")
	concurrency, _ := flags.GetInt("concurrency")

	client := httpclient.NewDefaultClient(timeout)
	aggregator := aggregate.NewAggregator(client, concurrency, timeout)
	agg, warnings := aggregator.Run(cmd.Context(), selection, mode)

	meta := render.Metadata{
		GeneratedAt:   time.Now(),
		IPVersion:     mode.String(),
		Providers:     providers,
		Bots:          bots,
		ExcludeSearch: excludeSearch,
		ExcludeUser:   excludeUser,
	}

	artifact, err := render.Render(format, agg, meta)
	if err != nil {
		return err
	}

	if outputPath, _ := flags.GetString("output"); outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(artifact), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s artifact to %s (%d prefixes, %d sources skipped)\n",
			format, outputPath, agg.Len(), len(warnings))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), artifact)
	return nil
}

// printProviders writes the provider list as a table.
func printProviders(w io.Writer, catalog *registry.Catalog) {
	counts := make(map[string]int)
	for _, src := range catalog.Sources() {
		counts[src.Provider]++
	}

	table := tablewriter.NewWriter(w)
	table.Header("Provider", "Sources")
	for _, provider := range catalog.Providers() {
		_ = table.Append([]string{provider, fmt.Sprintf("%d", counts[provider])})
	}
	_ = table.Render()
}

// printSources writes the full source catalog as a table.
func printSources(w io.Writer, catalog *registry.Catalog) {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Category", "URL")
	for _, src := range catalog.Sources() {
		_ = table.Append([]string{src.ID, string(src.Category), src.URL})
	}
	_ = table.Render()
}
