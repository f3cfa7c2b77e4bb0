package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Andohkay1/Stock-screener/internal/domain"
)

// ErrCacheMiss is returned when no fresh cache entry exists for a ticker.
var ErrCacheMiss = errors.New("quote cache miss")

// QuoteCacheRepository stores fetched financial fact records so repeated
// screens within the TTL window do not hit the market-data provider again.
type QuoteCacheRepository struct {
	*BaseRepository
	ttl time.Duration
}

// NewQuoteCacheRepository creates a new quote cache repository
func NewQuoteCacheRepository(db *sql.DB, ttl time.Duration, log zerolog.Logger) *QuoteCacheRepository {
	return &QuoteCacheRepository{
		BaseRepository: NewBase(db, log.With().Str("repo", "quote_cache").Logger()),
		ttl:            ttl,
	}
}

// Get returns the cached record for a ticker. ErrCacheMiss is returned when
// the ticker is unknown or the entry is older than the TTL.
func (r *QuoteCacheRepository) Get(ticker string) (*domain.FinancialFactRecord, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))

	query := "SELECT record_json, fetched_at FROM quote_cache WHERE ticker = ?"

	var recordJSON, fetchedAt string
	err := r.db.QueryRow(query, ticker).Scan(&recordJSON, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read quote cache: %w", err)
	}

	ts, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cache timestamp: %w", err)
	}
	if time.Since(ts) > r.ttl {
		return nil, ErrCacheMiss
	}

	var record domain.FinancialFactRecord
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to decode cached record: %w", err)
	}

	return &record, nil
}

// Put stores a fetched record, replacing any previous entry for the ticker.
func (r *QuoteCacheRepository) Put(record *domain.FinancialFactRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	query := `
		INSERT INTO quote_cache (ticker, record_json, fetched_at)
		VALUES (?, ?, ?)
		ON CONFLICT (ticker) DO UPDATE SET
			record_json = excluded.record_json,
			fetched_at = excluded.fetched_at
	`

	fetchedAt := record.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now()
	}

	_, err = r.db.Exec(query,
		strings.ToUpper(strings.TrimSpace(record.Ticker)),
		string(recordJSON),
		fetchedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to write quote cache: %w", err)
	}

	return nil
}

// SweepExpired deletes entries older than the TTL and returns the count.
func (r *QuoteCacheRepository) SweepExpired() (int64, error) {
	cutoff := time.Now().Add(-r.ttl).Format(time.RFC3339)

	result, err := r.db.Exec("DELETE FROM quote_cache WHERE fetched_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep quote cache: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count swept rows: %w", err)
	}

	if deleted > 0 {
		r.log.Debug().Int64("deleted", deleted).Msg("Swept expired cache entries")
	}

	return deleted, nil
}
