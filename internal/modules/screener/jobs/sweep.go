package jobs

import (
	"github.com/rs/zerolog"

	"github.com/Andohkay1/Stock-screener/internal/database/repositories"
)

// CacheSweepJob deletes expired quote cache rows in the background so stale
// fundamentals never outlive their TTL on disk.
type CacheSweepJob struct {
	cache *repositories.QuoteCacheRepository
	log   zerolog.Logger
}

// NewCacheSweepJob creates a new cache sweep job
func NewCacheSweepJob(cache *repositories.QuoteCacheRepository, log zerolog.Logger) *CacheSweepJob {
	return &CacheSweepJob{
		cache: cache,
		log:   log.With().Str("job", "cache_sweep").Logger(),
	}
}

// Name implements scheduler.Job
func (j *CacheSweepJob) Name() string {
	return "quote_cache_sweep"
}

// Run implements scheduler.Job
func (j *CacheSweepJob) Run() error {
	deleted, err := j.cache.SweepExpired()
	if err != nil {
		return err
	}

	if deleted > 0 {
		j.log.Info().Int64("deleted", deleted).Msg("Expired quote cache entries removed")
	}
	return nil
}
