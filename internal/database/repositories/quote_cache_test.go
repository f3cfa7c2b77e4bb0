package repositories

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andohkay1/Stock-screener/internal/database"
	"github.com/Andohkay1/Stock-screener/internal/domain"
)

func newTestCache(t *testing.T, ttl time.Duration) *QuoteCacheRepository {
	t.Helper()

	db, err := database.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())

	return NewQuoteCacheRepository(db.Conn(), ttl, zerolog.Nop())
}

func testRecord(ticker string) *domain.FinancialFactRecord {
	price := 42.0
	return &domain.FinancialFactRecord{
		Ticker:             ticker,
		Price:              &price,
		TotalRevenue:       150_000_000,
		NetIncomeSeries:    []float64{100, 200},
		BondYieldReference: 4.4,
		FetchedAt:          time.Now(),
	}
}

func TestQuoteCachePutGet(t *testing.T) {
	cache := newTestCache(t, time.Hour)

	require.NoError(t, cache.Put(testRecord("AAPL")))

	got, err := cache.Get("AAPL")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", got.Ticker)
	require.NotNil(t, got.Price)
	assert.Equal(t, 42.0, *got.Price)
	assert.Equal(t, []float64{100, 200}, got.NetIncomeSeries)
}

func TestQuoteCacheGetNormalizesTicker(t *testing.T) {
	cache := newTestCache(t, time.Hour)

	require.NoError(t, cache.Put(testRecord("AAPL")))

	_, err := cache.Get("  aapl ")
	require.NoError(t, err)
}

func TestQuoteCacheMiss(t *testing.T) {
	cache := newTestCache(t, time.Hour)

	_, err := cache.Get("MSFT")
	require.ErrorIs(t, err, ErrCacheMiss)
}

func TestQuoteCacheExpiry(t *testing.T) {
	cache := newTestCache(t, time.Hour)

	stale := testRecord("OLD")
	stale.FetchedAt = time.Now().Add(-2 * time.Hour)
	require.NoError(t, cache.Put(stale))

	_, err := cache.Get("OLD")
	require.ErrorIs(t, err, ErrCacheMiss, "entries past the TTL behave like misses")
}

func TestQuoteCachePutReplaces(t *testing.T) {
	cache := newTestCache(t, time.Hour)

	first := testRecord("KO")
	first.TotalRevenue = 1
	require.NoError(t, cache.Put(first))

	second := testRecord("KO")
	second.TotalRevenue = 2
	require.NoError(t, cache.Put(second))

	got, err := cache.Get("KO")
	require.NoError(t, err)
	assert.Equal(t, 2.0, got.TotalRevenue)
}

func TestQuoteCacheSweepExpired(t *testing.T) {
	cache := newTestCache(t, time.Hour)

	fresh := testRecord("FRESH")
	require.NoError(t, cache.Put(fresh))

	stale := testRecord("STALE")
	stale.FetchedAt = time.Now().Add(-3 * time.Hour)
	require.NoError(t, cache.Put(stale))

	deleted, err := cache.SweepExpired()
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = cache.Get("FRESH")
	assert.NoError(t, err)
	_, err = cache.Get("STALE")
	assert.ErrorIs(t, err, ErrCacheMiss)
}
