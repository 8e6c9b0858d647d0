// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pharma-papers/internal/store"
	"github.com/pdiddy/pharma-papers/pkg/types"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the local paper cache",
	Long: `Cache manages the SQLite database of fetched PubMed records. Records
are cached raw and re-classified on every load, so clearing the cache is only
needed to force a re-fetch from PubMed.`,
}

var cacheInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show cache location and size",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := openCache(cmd)
		if err != nil {
			return err
		}
		defer cache.Close()

		n, err := cache.Count(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("path:    %s\n", cache.Path())
		fmt.Printf("records: %d\n", n)
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all cached records",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := openCache(cmd)
		if err != nil {
			return err
		}
		defer cache.Close()

		if err := cache.Clear(context.Background()); err != nil {
			return err
		}
		fmt.Println("Cache cleared.")
		return nil
	},
}

func openCache(cmd *cobra.Command) (*store.Cache, error) {
	dir, _ := cmd.Flags().GetString("cache-dir")
	return store.Open(types.CacheConfig{Dir: dir})
}

func init() {
	cacheCmd.PersistentFlags().String("cache-dir", "cache", "directory for the paper cache")
	cacheCmd.AddCommand(cacheInfoCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
