// Package store persists provider responses in a local SQLite database so
// repeat lookups are served without touching the network. Bodies are
// xz-compressed and keyed by a BLAKE3 hash of the request URL.
package store

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"
	_ "modernc.org/sqlite" // pure-Go driver
)

const schema = `
CREATE TABLE IF NOT EXISTS responses (
	key        TEXT PRIMARY KEY,
	url        TEXT NOT NULL,
	body       BLOB NOT NULL,
	fetched_at INTEGER NOT NULL
);
`

// Store is an on-disk response cache. Entries older than the TTL are
// treated as absent; a zero TTL disables expiry.
type Store struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// Open opens (and if needed creates) the cache database at path.
func Open(path string, ttl time.Duration) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}
	return &Store{db: db, ttl: ttl, now: time.Now}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Key derives the cache key for a URL.
func Key(url string) string {
	sum := blake3.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached body for url. ok is false for a miss or an
// expired entry.
func (s *Store) Get(ctx context.Context, url string) ([]byte, bool, error) {
	var compressed []byte
	var fetchedAt int64
	err := s.db.QueryRowContext(ctx,
		`SELECT body, fetched_at FROM responses WHERE key = ?`, Key(url)).
		Scan(&compressed, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cache entry: %w", err)
	}

	if s.ttl > 0 && s.now().Sub(time.Unix(fetchedAt, 0)) > s.ttl {
		return nil, false, nil
	}

	body, err := decompress(compressed)
	if err != nil {
		return nil, false, fmt.Errorf("decompressing cache entry: %w", err)
	}
	return body, true, nil
}

// Put stores a body for url, replacing any previous entry.
func (s *Store) Put(ctx context.Context, url string, body []byte) error {
	compressed, err := compress(body)
	if err != nil {
		return fmt.Errorf("compressing cache entry: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO responses (key, url, body, fetched_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET body = excluded.body, fetched_at = excluded.fetched_at`,
		Key(url), url, compressed, s.now().Unix())
	if err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}
	return nil
}

// Prune deletes expired entries. A no-op when expiry is disabled.
func (s *Store) Prune(ctx context.Context) error {
	if s.ttl <= 0 {
		return nil
	}
	cutoff := s.now().Add(-s.ttl).Unix()
	_, err := s.db.ExecContext(ctx, `DELETE FROM responses WHERE fetched_at < ?`, cutoff)
	return err
}

func compress(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(body); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompress(compressed []byte) ([]byte, error) {
	r, err := xz.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}
