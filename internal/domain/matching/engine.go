package matching

import (
	"math"
	"time"

	"go.uber.org/zap"
)

// Engine runs the full search pipeline: normalize, filter, score, rank,
// paginate. It holds no mutable state, so one Engine is safe for any number
// of concurrent searches. Dependencies (logger, clock) are injected; there
// are no package-level singletons.
type Engine struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewEngine validates the scoring-weight invariant once up front so a
// miswired weight table can never silently skew every search.
func NewEngine(logger *zap.Logger) (*Engine, error) {
	if math.Abs(weightSum()-1.0) > 1e-9 {
		return nil, &InternalComputationError{Reason: "factor weights do not sum to 1.0"}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger, now: time.Now}, nil
}

// WithClock derives an engine with a replacement reference clock for
// expanding availability enums. The receiver is left untouched, so pinning a
// clock never affects searches already running on the original. Intended for
// tests.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	derived := *e
	derived.now = now
	return &derived
}

// Normalize validates raw input against the engine's clock.
func (e *Engine) Normalize(raw RawSearchInput) (SearchQuery, error) {
	return Normalize(raw, e.now())
}

// Search normalizes raw input and runs the pipeline over the pool.
func (e *Engine) Search(pool []Candidate, raw RawSearchInput) (PagedResult, error) {
	q, err := e.Normalize(raw)
	if err != nil {
		return PagedResult{}, err
	}
	return e.Run(pool, q), nil
}

// Run executes filter, score, rank and paginate over an already-normalized
// query. Malformed candidate records are excluded individually with a logged
// warning; a bad row never aborts the search.
func (e *Engine) Run(pool []Candidate, q SearchQuery) PagedResult {
	valid := make([]Candidate, 0, len(pool))
	for _, c := range pool {
		if err := c.Validate(); err != nil {
			e.logger.Warn("excluding malformed talent profile from search",
				zap.String("talent_id", c.ID.String()),
				zap.Error(err),
			)
			continue
		}
		valid = append(valid, c)
	}

	filtered := Filter(valid, q)

	results := make([]MatchResult, 0, len(filtered))
	for _, c := range filtered {
		results = append(results, Score(c, q))
	}

	paged := Paginate(Rank(results), q.Page, q.Limit)
	if len(paged.Data) == 0 && paged.Pagination.Total > 0 {
		e.logger.Debug("requested page beyond available results",
			zap.Int("page", q.Page),
			zap.Int("total", paged.Pagination.Total),
		)
	}
	return paged
}
