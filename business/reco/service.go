package reco

import (
	"context"
	"errors"
	"fmt"

	"msaRecommender/domain"
	"msaRecommender/pkg/logger"
)

// RatedItemsSource yields the external course ids a mapped user key has
// already reviewed. The key is the normalized form from the user
// mapping, compared as a string against the review log.
type RatedItemsSource interface {
	RatedBy(userKey string) map[string]struct{}
}

// Service resolves recommendations: identifier mapping, candidate
// selection, batched scoring, ranking and metadata assembly, behind the
// shared response cache. Everything it holds except the cache is
// read-only after construction, so concurrent requests need no further
// synchronization.
type Service struct {
	users        *IDMapping
	items        *IDMapping
	model        Predictor
	itemFeatures [][]float64
	selector     *Selector
	rated        RatedItemsSource
	catalog      Catalog
	cache        *Cache
}

func NewService(
	users *IDMapping,
	items *IDMapping,
	model Predictor,
	itemFeatures [][]float64,
	mine []int,
	rated RatedItemsSource,
	catalog Catalog,
	cache *Cache,
) *Service {
	return &Service{
		users:        users,
		items:        items,
		model:        model,
		itemFeatures: itemFeatures,
		selector:     NewSelector(items, mine),
		rated:        rated,
		catalog:      catalog,
		cache:        cache,
	}
}

// Recommend returns up to n courses for the external user id. Identical
// requests inside the cache TTL short-circuit the pipeline and return
// the cached payload verbatim. An unknown user is not a fault: the
// payload carries count 0 and an explanatory error string. Prediction
// failures propagate as errors for the transport layer to map.
func (s *Service) Recommend(ctx context.Context, userID string, n int, mineOnly bool) (domain.RecommendationPayload, error) {
	if err := ctx.Err(); err != nil {
		return domain.RecommendationPayload{}, fmt.Errorf("context error: %w", err)
	}

	key := CacheKey{UserID: userID, Count: n, MineOnly: mineOnly}
	if payload, ok := s.cache.Get(key); ok {
		return payload, nil
	}

	payload, err := s.resolve(ctx, userID, n, mineOnly)
	if err != nil {
		return domain.RecommendationPayload{}, err
	}

	s.cache.Put(key, payload)

	return payload, nil
}

func (s *Service) resolve(ctx context.Context, userID string, n int, mineOnly bool) (domain.RecommendationPayload, error) {
	tid := TraceIDFromContext(ctx)

	userIdx, userKey, err := s.users.ToInternal(userID)
	if err != nil {
		if !errors.Is(err, ErrUnknownIdentifier) {
			return domain.RecommendationPayload{}, err
		}

		logger.Warn("user not in model",
			"trace_id", tid,
			"user_id", userID,
		)
		PipelineOutcomesTotal.WithLabelValues("unknown_user").Inc()

		return domain.RecommendationPayload{
			UserID:          userID,
			Count:           0,
			MineOnly:        mineOnly,
			Error:           fmt.Sprintf("user %s is not in the model", userID),
			Recommendations: []domain.Recommendation{},
		}, nil
	}

	var rated map[string]struct{}
	if s.rated != nil {
		rated = s.rated.RatedBy(userKey)
	}

	candidates := s.selector.Select(userID, rated, mineOnly)

	scored, err := scoreCandidates(s.model, userIdx, candidates, s.itemFeatures)
	if err != nil {
		PipelineOutcomesTotal.WithLabelValues("error").Inc()
		return domain.RecommendationPayload{}, err
	}

	recs := assemble(rankTop(scored, n), s.items, s.catalog)

	logger.Debug("recommendations resolved",
		"trace_id", tid,
		"user_id", userID,
		"mine_only", mineOnly,
		"candidates", len(candidates),
		"returned", len(recs),
	)
	PipelineOutcomesTotal.WithLabelValues("ok").Inc()

	return domain.RecommendationPayload{
		UserID:          userID,
		Count:           len(recs),
		MineOnly:        mineOnly,
		Recommendations: recs,
	}, nil
}
