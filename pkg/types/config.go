// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pharma-papers/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// PubMedConfig holds settings for the PubMed E-utilities client.
type PubMedConfig struct {
	HTTPConfig `yaml:",inline"`

	// Tool is the tool name sent with every E-utilities request, as NCBI asks.
	Tool string `json:"tool" yaml:"tool"`

	// Email is the contact address sent to NCBI so they can reach out if the
	// tool misbehaves. Optional.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// APIKey is an optional NCBI API key. With a key NCBI allows 10 requests
	// per second instead of 3.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxResults caps the number of PMIDs returned by a search (default 100).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ExportFormat selects the tabular output format.
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatJSON ExportFormat = "json"
	FormatYAML ExportFormat = "yaml"
)

// ExportConfig holds settings for result export.
type ExportConfig struct {
	// Format selects the output format: csv, json, or yaml.
	Format ExportFormat `json:"format" yaml:"format"`

	// File is the output path. Empty means stdout.
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// CacheConfig holds settings for the local paper cache.
type CacheConfig struct {
	// Dir is the directory holding the cache database (default "cache").
	Dir string `json:"dir" yaml:"dir"`

	// Disabled bypasses the cache entirely when true.
	Disabled bool `json:"disabled" yaml:"disabled"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	PubMed PubMedConfig `json:"pubmed" yaml:"pubmed"`
	Export ExportConfig `json:"export" yaml:"export"`
	Cache  CacheConfig  `json:"cache" yaml:"cache"`
}
