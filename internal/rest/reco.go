package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"msaRecommender/business/reco"
	"msaRecommender/domain"
	"msaRecommender/pkg/logger"
	"msaRecommender/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecoHandler struct {
		validate     *validator.Validate
		recoService  RecoService
		store        ModelStore
		defaultCount int
		maxCount     int
		timeout      time.Duration
	}

	RecoService interface {
		Recommend(ctx context.Context, userID string, n int, mineOnly bool) (domain.RecommendationPayload, error)
	}

	// ModelStore is the read-only model surface the handlers consume.
	ModelStore interface {
		IsLoaded() bool
		StartupTime() time.Time
		Info() domain.ModelInfo
		Users() []any
		Courses(source string) []domain.Course
	}

	RecommendQuery struct {
		UserID   string `query:"user_id" validate:"required"`
		Count    int    `query:"count"`
		MineOnly string `query:"mine_only"`
	}

	// CacheStatser exposes the response cache counters; the cache
	// exists even when no model could be loaded.
	CacheStatser interface {
		Stats() reco.CacheStats
	}
)

// ResponseError is the error envelope for every non-200 answer.
type ResponseError struct {
	Error string `json:"error"`
}

func NewRecoHandler(svc RecoService, store ModelStore, defaultCount, maxCount int) *RecoHandler {
	return &RecoHandler{
		validate:     validator.New(),
		recoService:  svc,
		store:        store,
		defaultCount: defaultCount,
		maxCount:     maxCount,
		timeout:      10 * time.Second,
	}
}

// GET /api/recommendations?user_id=101&count=10&mine_only=true
func (h *RecoHandler) Recommend(c echo.Context) error {
	if !h.store.IsLoaded() {
		return c.JSON(http.StatusServiceUnavailable, ResponseError{Error: "model is not loaded, recommendations are unavailable"})
	}

	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "missing user_id parameter"})
	}

	count := q.Count
	if count <= 0 {
		count = h.defaultCount
	}
	if count > h.maxCount {
		count = h.maxCount
	}
	mineOnly := parseBoolParam(q.MineOnly, true)

	start := time.Now()
	metrics.RecommendRequests.Inc()

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	payload, err := h.recoService.Recommend(ctx, q.UserID, count, mineOnly)
	if err != nil {
		logger.Error("failed to build recommendations",
			"user_id", q.UserID,
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, ResponseError{Error: "failed to build recommendations: " + err.Error()})
	}

	metrics.RecommendLatency.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, payload)
}

// parseBoolParam accepts the historical truthy spellings used by API
// clients ("true", "1", "yes").
func parseBoolParam(raw string, defaultVal bool) bool {
	if raw == "" {
		return defaultVal
	}
	switch strings.ToLower(raw) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
