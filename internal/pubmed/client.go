// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed queries the NCBI E-utilities API and turns PubMed article
// XML into raw paper records.
package pubmed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/pdiddy/pharma-papers/internal/httputil"
	"github.com/pdiddy/pharma-papers/pkg/types"
)

// E-utilities endpoints. Declared as vars so tests can substitute httptest
// servers.
var (
	esearchBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	efetchBase  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
)

const (
	defaultTool       = "pharma-papers"
	defaultTimeout    = 30 * time.Second
	defaultMaxResults = 100

	// NCBI allows 3 requests per second without an API key, 10 with one.
	anonymousRate = 3
	keyedRate     = 10
)

// Client is a rate-limited E-utilities client.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	cfg        types.PubMedConfig
}

// NewClient builds a client from the configuration, filling in defaults for
// tool name, timeout, and max results.
func NewClient(cfg types.PubMedConfig) *Client {
	if cfg.Tool == "" {
		cfg.Tool = defaultTool
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = defaultMaxResults
	}

	rps := rate.Limit(anonymousRate)
	if cfg.APIKey != "" {
		rps = rate.Limit(keyedRate)
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rps, 1),
		cfg:        cfg,
	}
}

// get performs a rate-limited GET against an E-utilities endpoint, adding
// the base parameters NCBI expects on every request. The caller owns the
// response body. Non-200 statuses are returned as errors.
func (c *Client) get(ctx context.Context, base string, params url.Values) (*http.Response, error) {
	params.Set("tool", c.cfg.Tool)
	if c.cfg.Email != "" {
		params.Set("email", c.cfg.Email)
	}
	if c.cfg.APIKey != "" {
		params.Set("api_key", c.cfg.APIKey)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, 0)
	if err != nil {
		return nil, fmt.Errorf("E-utilities request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("E-utilities returned HTTP %d", resp.StatusCode)
	}
	return resp, nil
}
