package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cast-match/internal/domain/matching"
	"cast-match/internal/repository"

	"go.uber.org/zap"
)

type TalentSearchUsecase interface {
	SearchTalent(ctx context.Context, raw matching.RawSearchInput) (matching.PagedResult, error)
}

type TalentSearch struct {
	talents repository.TalentRepository
	engine  *matching.Engine
	cache   SearchCache
	logger  *zap.Logger
}

func NewTalentSearchUsecase(talents repository.TalentRepository, engine *matching.Engine, cache SearchCache, logger *zap.Logger) *TalentSearch {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TalentSearch{talents: talents, engine: engine, cache: cache, logger: logger}
}

func (u *TalentSearch) SearchTalent(ctx context.Context, raw matching.RawSearchInput) (matching.PagedResult, error) {
	q, err := u.engine.Normalize(raw)
	if err != nil {
		if errors.Is(err, matching.ErrValidation) {
			return matching.PagedResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return matching.PagedResult{}, ErrInternal
	}

	cacheKey := TalentSearchCacheKey(q)
	lockKey := TalentSearchLockKey(cacheKey)

	if u.cache != nil {
		var cached matching.PagedResult
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			u.logger.Debug("talent search cache hit", zap.String("key", cacheKey))
			return cached, nil
		}
		u.logger.Debug("talent search cache miss", zap.String("key", cacheKey))
	}

	// One loser of the lock race waits briefly and re-reads the cache; this
	// keeps a burst of identical searches from stampeding the database.
	lockAcquired := false
	if u.cache != nil {
		ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", 30*time.Second)
		if err == nil && ok {
			lockAcquired = true
		} else if err == nil && !ok {
			jitter := time.Duration(time.Now().UnixNano()%201) * time.Millisecond
			time.Sleep(300*time.Millisecond + jitter)

			var cached matching.PagedResult
			hit, err2 := u.cache.GetJSON(ctx, cacheKey, &cached)
			if err2 == nil && hit {
				u.logger.Debug("talent search cache hit after lock wait", zap.String("key", cacheKey))
				return cached, nil
			}
		}
	}

	pool, err := u.talents.FindCandidatePool(ctx, hintsFromQuery(q))
	if err != nil {
		u.logger.Error("candidate pool fetch failed", zap.Error(err))
		return matching.PagedResult{}, ErrInternal
	}

	candidates := make([]matching.Candidate, 0, len(pool))
	for _, p := range pool {
		candidates = append(candidates, matching.NewCandidate(p))
	}

	result := u.engine.Run(candidates, q)

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, result, 0)
		if lockAcquired {
			_ = u.cache.Delete(ctx, lockKey)
		}
	}

	return result, nil
}

// hintsFromQuery mirrors the engine's hard filters so the database pre-filter
// can only shrink the pool, never change the outcome.
func hintsFromQuery(q matching.SearchQuery) repository.TalentFilterHints {
	return repository.TalentFilterHints{
		City:      q.City,
		Gender:    q.Gender,
		AgeMin:    q.AgeMin,
		AgeMax:    q.AgeMax,
		MinRating: q.MinRating,
		Verified:  q.Verified,
		Skills:    q.Skills,
		Languages: q.Languages,
	}
}
