package screener

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/Andohkay1/Stock-screener/internal/database/repositories"
	"github.com/Andohkay1/Stock-screener/internal/domain"
)

// CachedProvider decorates a Provider with the sqlite-backed quote cache.
// Fresh cache entries short-circuit the provider call; anything else falls
// through, and a cache write failure never fails the fetch.
type CachedProvider struct {
	provider Provider
	cache    *repositories.QuoteCacheRepository
	log      zerolog.Logger
}

// NewCachedProvider creates a new caching provider decorator
func NewCachedProvider(provider Provider, cache *repositories.QuoteCacheRepository, log zerolog.Logger) *CachedProvider {
	return &CachedProvider{
		provider: provider,
		cache:    cache,
		log:      log.With().Str("component", "quote_cache").Logger(),
	}
}

// Fetch implements Provider.
func (p *CachedProvider) Fetch(ctx context.Context, ticker string) (*domain.FinancialFactRecord, error) {
	record, err := p.cache.Get(ticker)
	if err == nil {
		p.log.Debug().Str("ticker", ticker).Msg("Cache hit")
		return record, nil
	}
	if !errors.Is(err, repositories.ErrCacheMiss) {
		p.log.Warn().Err(err).Str("ticker", ticker).Msg("Cache read failed")
	}

	record, err = p.provider.Fetch(ctx, ticker)
	if err != nil {
		return nil, err
	}

	if err := p.cache.Put(record); err != nil {
		p.log.Warn().Err(err).Str("ticker", ticker).Msg("Cache write failed")
	}

	return record, nil
}
