// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

type esearchResponse struct {
	ESearchResult struct {
		Count  string   `json:"count"`
		IDList []string `json:"idlist"`
	} `json:"esearchresult"`
}

// Search runs an esearch query against the pubmed database and returns the
// matching PMIDs, capped at the configured max results. The query supports
// full PubMed query syntax.
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	if query == "" {
		return nil, fmt.Errorf("query is empty")
	}

	params := url.Values{
		"db":      {"pubmed"},
		"term":    {query},
		"retmode": {"json"},
		"retmax":  {strconv.Itoa(c.cfg.MaxResults)},
	}

	resp, err := c.get(ctx, esearchBase, params)
	if err != nil {
		return nil, fmt.Errorf("searching PubMed: %w", err)
	}
	defer resp.Body.Close()

	var sr esearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing esearch response: %w", err)
	}

	ids := sr.ESearchResult.IDList
	if len(ids) > c.cfg.MaxResults {
		ids = ids[:c.cfg.MaxResults]
	}
	return ids, nil
}
