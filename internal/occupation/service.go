// Package occupation provides wage and growth figures for occupations and
// the career classes offered to applicants.
package occupation

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

const (
	SourceVerified = "BLS (Verified 2023)"
	SourceLive     = "BLS Live API"
	SourceDefault  = "National Average"

	DefaultWage   = 60000.0
	DefaultGrowth = 3.0
	// live answers carry a wage only
	liveGrowth = 4.0
)

// Stats are the headline figures of one occupation.
type Stats struct {
	Code   string  `json:"soc"`
	Title  string  `json:"title,omitempty"`
	Wage   float64 `json:"annual_mean_wage"`
	Growth float64 `json:"projected_growth"`
	Source string  `json:"source"`
}

// WageFetcher fetches a live wage for an occupation code.
type WageFetcher interface {
	Wage(ctx context.Context, code string) (float64, error)
}

// Service resolves stats from the verified table, then the cache, then the
// live API, and finally a national average.
type Service struct {
	live   WageFetcher
	cache  *Cache
	logger *zap.Logger
}

// NewService creates a service. A nil live fetcher or cache disables that layer.
func NewService(live WageFetcher, cache *Cache, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{live: live, cache: cache, logger: log}
}

// Lookup never fails; every problem with a layer is logged and the next one is tried.
func (s *Service) Lookup(ctx context.Context, code string) Stats {
	code = strings.TrimSpace(code)
	log := s.logger.With(zap.String("occupation_code", code))

	if career, ok := Verified(code); ok {
		return Stats{
			Code:   code,
			Title:  career.Title,
			Wage:   career.Wage,
			Growth: career.Growth,
			Source: SourceVerified,
		}
	}

	if s.cache != nil {
		stats, ok, err := s.cache.Get(code)
		if err != nil {
			log.Warn("reading stats cache failed", zap.Error(err))
		}
		if ok {
			log.Debug("stats served from cache")
			return stats
		}
	}

	if s.live != nil {
		wage, err := s.live.Wage(ctx, code)
		switch {
		case errors.Is(err, ErrNoData):
			log.Info("statistics api has no data for occupation", zap.Error(err))
		case err != nil:
			log.Warn("statistics api request failed", zap.Error(err))
		default:
			stats := Stats{Code: code, Wage: wage, Growth: liveGrowth, Source: SourceLive}
			if s.cache != nil {
				if err := s.cache.Put(stats); err != nil {
					log.Warn("writing stats cache failed", zap.Error(err))
				}
			}
			return stats
		}
	}

	return Stats{Code: code, Wage: DefaultWage, Growth: DefaultGrowth, Source: SourceDefault}
}
