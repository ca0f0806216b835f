// Package app provides the botranges command line interface.
package app

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/botranges/botranges/internal/aggregate"
	"github.com/botranges/botranges/internal/versions"
)

var rootCmd = &cobra.Command{
	Use:   "botranges",
	Short: "Aggregate published crawler IP ranges",
	Long: `botranges fetches the IP-prefix allowlists published by web-crawling and
bot operators (OpenAI, Google, Microsoft, Apple, ...) and aggregates them
into a single filterable list, rendered as plain text, JSON, an nginx geo
block, or an Apache access-control block.

Individual upstream failures are reported on stderr and never abort the
run; the artifact reflects whatever could be fetched.`,
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if viper.GetBool("debug") {
			handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
			slog.SetDefault(slog.New(handler))
		}
	},
}

// NewRootCmd creates the root command for botranges.
func NewRootCmd() *cobra.Command {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		slog.Error("Error binding debug flag", "error", err)
	}

	flags := rootCmd.Flags()
	flags.BoolP("ipv4", "4", false, "Collect IPv4 ranges only")
	flags.BoolP("ipv6", "6", false, "Collect IPv6 ranges only")
	flags.String("providers", "all", "Comma-separated provider names, or \"all\"")
	flags.String("bots", "all", "Comma-separated source identifiers (provider:bot), or \"all\"")
	flags.Bool("exclude-search", false, "Exclude search-category sources")
	flags.Bool("exclude-user", false, "Exclude user-category sources")
	flags.String("format", "text", "Output format (text, json, nginx, apache)")
	flags.StringP("output", "o", "", "Write the artifact to a file instead of stdout")
	flags.Bool("list-providers", false, "List known providers and exit")
	flags.Bool("list-bots", false, "List known sources and exit")
	flags.Duration("timeout", aggregate.DefaultFetchTimeout, "Per-source fetch timeout")
	flags.Int("concurrency", aggregate.DefaultConcurrency, "Maximum parallel source fetches")

	rootCmd.MarkFlagsMutuallyExclusive("ipv4", "ipv6")
	rootCmd.MarkFlagsMutuallyExclusive("list-providers", "list-bots")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		info := versions.GetVersionInfo()
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return fmt.Errorf("error retrieving format flag: %w", err)
		}

		if format == "json" {
			output, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("error formatting version info as JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(output))
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "botranges %s (commit %s, built %s, %s, %s)\n",
			info.Version, info.Commit, info.BuildDate, info.GoVersion, info.Platform)
		return nil
	},
}

func init() {
	versionCmd.Flags().String("format", "", "Output format (json)")
}
