// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pharma-papers/internal/export"
	"github.com/pdiddy/pharma-papers/internal/pubmed"
	"github.com/pdiddy/pharma-papers/internal/store"
	"github.com/pdiddy/pharma-papers/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "pharma-papers/0.1"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [query]",
	Short: "Search PubMed and export papers with company-affiliated authors",
	Long: `Fetch searches PubMed for the query (full PubMed query syntax is
supported), downloads the matching paper records, classifies every author's
affiliation, and writes one output row per paper: PMID, title, publication
date, non-academic authors, their companies, and the corresponding author's
email.

Fetched records are cached in a local SQLite database and reused on
subsequent runs; pass --no-cache to bypass it.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().IntP("max-results", "m", 100, "maximum number of papers to fetch")
	fetchCmd.Flags().StringP("file", "f", "", "output file (default: stdout)")
	fetchCmd.Flags().String("format", "csv", "output format: csv, json, or yaml")
	fetchCmd.Flags().StringP("api-key", "k", "", "NCBI API key for higher rate limits")
	fetchCmd.Flags().String("email", "", "contact email sent to NCBI")
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	fetchCmd.Flags().String("cache-dir", "cache", "directory for the paper cache")
	fetchCmd.Flags().Bool("no-cache", false, "bypass the local paper cache")
	fetchCmd.Flags().BoolP("debug", "d", false, "print progress details")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	query := args[0]

	maxResults, _ := cmd.Flags().GetInt("max-results")
	file, _ := cmd.Flags().GetString("file")
	format, _ := cmd.Flags().GetString("format")
	apiKey, _ := cmd.Flags().GetString("api-key")
	email, _ := cmd.Flags().GetString("email")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	cacheDir, _ := cmd.Flags().GetString("cache-dir")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	debug, _ := cmd.Flags().GetBool("debug")

	if timeout == 0 {
		timeout = viper.GetDuration("pubmed.timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}

	cfg := types.PubMedConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		Tool:       viper.GetString("pubmed.tool"),
		Email:      secretDefault("ncbi-email", "pubmed.email", email),
		APIKey:     secretDefault("ncbi-api-key", "pubmed.api_key", apiKey),
		MaxResults: maxResults,
	}

	// Progress goes to stderr so stdout stays clean for the export.
	progress := io.Discard
	if debug {
		progress = os.Stderr
	}

	ctx := context.Background()
	client := pubmed.NewClient(cfg)

	fmt.Fprintf(progress, "searching PubMed: %s\n", query)
	pmids, err := client.Search(ctx, query)
	if err != nil {
		return err
	}
	fmt.Fprintf(progress, "found %d paper(s)\n", len(pmids))

	records, err := fetchRecords(ctx, client, pmids, types.CacheConfig{Dir: cacheDir, Disabled: noCache}, progress)
	if err != nil {
		return err
	}

	// Assembly warnings always reach the user; bad records are worth knowing
	// about even outside debug mode.
	papers := pubmed.AssemblePapers(records, os.Stderr)

	out := os.Stdout
	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := export.Write(out, papers, types.ExportFormat(format)); err != nil {
		return err
	}
	if file != "" {
		fmt.Fprintf(os.Stderr, "Wrote %d paper(s) to %s\n", len(papers), file)
	}
	return nil
}

// fetchRecords pulls records through the cache: cached PMIDs are served
// locally, the rest are fetched from PubMed and written back. Cache failures
// degrade to a direct fetch rather than aborting the run.
func fetchRecords(ctx context.Context, client *pubmed.Client, pmids []string, cacheCfg types.CacheConfig, progress io.Writer) ([]types.Record, error) {
	if cacheCfg.Disabled {
		return client.Fetch(ctx, pmids)
	}

	cache, err := store.Open(cacheCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: cache unavailable (%v), fetching directly\n", err)
		return client.Fetch(ctx, pmids)
	}
	defer cache.Close()

	hits, missing, err := cache.Get(ctx, pmids)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: cache lookup failed (%v), fetching directly\n", err)
		return client.Fetch(ctx, pmids)
	}
	fmt.Fprintf(progress, "cache: %d hit(s), %d to fetch\n", len(hits), len(missing))

	fetched, err := client.Fetch(ctx, missing)
	if err != nil {
		return nil, err
	}
	if len(fetched) > 0 {
		if err := cache.Put(ctx, fetched); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not update cache: %v\n", err)
		}
	}

	return append(hits, fetched...), nil
}
