// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store caches raw PubMed records in a local SQLite database so
// repeated queries skip the efetch round trip. Records are cached raw
// (dates unparsed, affiliations unclassified); classification runs on load,
// so keyword-table changes take effect without re-fetching.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

const dbFile = "papers.db"

// Cache is the SQLite-backed paper cache.
type Cache struct {
	db   *sql.DB
	path string
}

// Open opens or creates the cache database at dir/papers.db, creating the
// schema when missing.
func Open(cfg types.CacheConfig) (*Cache, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "cache"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	path := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	c := &Cache{db: db, path: path}
	if err := c.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}
	return c, nil
}

// Close releases the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Path returns the database file path.
func (c *Cache) Path() string {
	return c.path
}

func (c *Cache) createSchema() error {
	_, err := c.db.Exec(`CREATE TABLE IF NOT EXISTS papers (
		pmid TEXT PRIMARY KEY,
		title TEXT,
		pubdate TEXT,
		abstract TEXT,
		authors TEXT,
		fetched_at TEXT
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Get looks up the given PMIDs and returns the cached records plus the PMIDs
// that were not found, both in input order.
func (c *Cache) Get(ctx context.Context, pmids []string) (hits []types.Record, missing []string, err error) {
	stmt, err := c.db.PrepareContext(ctx,
		`SELECT title, pubdate, abstract, authors FROM papers WHERE pmid = ?`)
	if err != nil {
		return nil, nil, fmt.Errorf("preparing cache lookup: %w", err)
	}
	defer stmt.Close()

	for _, pmid := range pmids {
		var rec types.Record
		var authorsJSON string
		err := stmt.QueryRowContext(ctx, pmid).Scan(&rec.Title, &rec.PubDate, &rec.Abstract, &authorsJSON)
		if err == sql.ErrNoRows {
			missing = append(missing, pmid)
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading cache row for PMID %s: %w", pmid, err)
		}
		rec.ID = pmid
		if authorsJSON != "" {
			if err := json.Unmarshal([]byte(authorsJSON), &rec.Authors); err != nil {
				// A corrupt row counts as a miss so the record is re-fetched.
				missing = append(missing, pmid)
				continue
			}
		}
		hits = append(hits, rec)
	}
	return hits, missing, nil
}

// Put upserts records into the cache. Records without a PMID are ignored.
func (c *Cache) Put(ctx context.Context, recs []types.Record) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning cache transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO papers
		(pmid, title, pubdate, abstract, authors, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(pmid) DO UPDATE SET
			title = excluded.title,
			pubdate = excluded.pubdate,
			abstract = excluded.abstract,
			authors = excluded.authors,
			fetched_at = excluded.fetched_at`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing cache insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, rec := range recs {
		if rec.ID == "" {
			continue
		}
		authorsJSON, err := json.Marshal(rec.Authors)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("marshaling authors for PMID %s: %w", rec.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, rec.ID, rec.Title, rec.PubDate, rec.Abstract, string(authorsJSON), now); err != nil {
			tx.Rollback()
			return fmt.Errorf("writing cache row for PMID %s: %w", rec.ID, err)
		}
	}
	return tx.Commit()
}

// Count returns the number of cached records.
func (c *Cache) Count(ctx context.Context) (int, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT count(*) FROM papers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting cache rows: %w", err)
	}
	return n, nil
}

// Clear deletes all cached records.
func (c *Cache) Clear(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM papers`); err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}
	return nil
}
