package reco

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

type mapRatedSource map[string]map[string]struct{}

func (r mapRatedSource) RatedBy(userKey string) map[string]struct{} {
	return r[userKey]
}

func newTestService(t *testing.T, predictor Predictor, rated RatedItemsSource, mine []int) *Service {
	t.Helper()

	users, err := NewIDMapping(map[string]int{"101": 0, "102": 1})
	if err != nil {
		t.Fatalf("user mapping: %v", err)
	}
	items, err := NewIDMapping(map[string]int{"CR1": 0, "CR2": 1, "CR3": 2})
	if err != nil {
		t.Fatalf("item mapping: %v", err)
	}
	catalog := mapCatalog{
		"CR1": {CourseID: "CR1", Title: "Go Basics"},
		"CR2": {CourseID: "CR2", Title: "Advanced Go"},
		"CR3": {CourseID: "CR3", Title: "Web APIs"},
	}

	return NewService(users, items, predictor, nil, mine, rated, catalog, NewCache(time.Hour, 100))
}

func TestServiceRecommendHappyPath(t *testing.T) {
	// stub scores equal the item index, so CR3 > CR2 > CR1
	svc := newTestService(t, &stubPredictor{}, nil, nil)

	payload, err := svc.Recommend(context.Background(), "101", 2, false)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	if payload.UserID != "101" || payload.Count != 2 || payload.Error != "" {
		t.Fatalf("payload = %+v", payload)
	}
	if len(payload.Recommendations) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(payload.Recommendations))
	}
	if payload.Recommendations[0].CourseID != "CR3" || payload.Recommendations[1].CourseID != "CR2" {
		t.Errorf("ranking wrong: %+v", payload.Recommendations)
	}
	if payload.Recommendations[0].Title != "Web APIs" {
		t.Errorf("metadata not joined: %+v", payload.Recommendations[0])
	}
}

func TestServiceRecommendUnknownUser(t *testing.T) {
	svc := newTestService(t, &stubPredictor{}, nil, nil)

	payload, err := svc.Recommend(context.Background(), "9999", 10, true)
	if err != nil {
		t.Fatalf("unknown user must not fault, got %v", err)
	}

	if payload.UserID != "9999" || payload.Count != 0 {
		t.Fatalf("payload = %+v", payload)
	}
	if payload.Error == "" {
		t.Error("unknown user payload carries no error message")
	}
	if payload.Recommendations == nil || len(payload.Recommendations) != 0 {
		t.Errorf("recommendations = %#v, want empty non-nil slice", payload.Recommendations)
	}
}

func TestServiceRecommendExcludesRated(t *testing.T) {
	rated := mapRatedSource{"101": {"CR3": {}}}
	svc := newTestService(t, &stubPredictor{}, rated, nil)

	payload, err := svc.Recommend(context.Background(), "101", 3, false)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	for _, rec := range payload.Recommendations {
		if rec.CourseID == "CR3" {
			t.Fatalf("rated course recommended: %+v", payload.Recommendations)
		}
	}
	if len(payload.Recommendations) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(payload.Recommendations))
	}
}

func TestServiceRecommendMineOnlySubset(t *testing.T) {
	svc := newTestService(t, &stubPredictor{}, nil, []int{0, 1})

	payload, err := svc.Recommend(context.Background(), "101", 10, true)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	if len(payload.Recommendations) != 2 {
		t.Fatalf("got %d recommendations, want the 2 restricted courses", len(payload.Recommendations))
	}
	for _, rec := range payload.Recommendations {
		if rec.CourseID == "CR3" {
			t.Errorf("course outside the restricted subset: %+v", rec)
		}
	}
}

func TestServiceRecommendCachesPayload(t *testing.T) {
	predictor := &stubPredictor{}
	svc := newTestService(t, predictor, nil, nil)

	first, err := svc.Recommend(context.Background(), "101", 2, false)
	if err != nil {
		t.Fatalf("first Recommend: %v", err)
	}
	second, err := svc.Recommend(context.Background(), "101", 2, false)
	if err != nil {
		t.Fatalf("second Recommend: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("cached payload differs:\n%+v\n%+v", first, second)
	}
	if predictor.calls != 1 {
		t.Fatalf("model called %d times, want 1 (second request served from cache)", predictor.calls)
	}

	stats := svc.cache.Stats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Fatalf("stats = %+v, want exactly one hit and one miss", stats)
	}
}

func TestServiceRecommendPropagatesPredictionFault(t *testing.T) {
	wantErr := errors.New("prediction exploded")
	svc := newTestService(t, &stubPredictor{err: wantErr}, nil, nil)

	if _, err := svc.Recommend(context.Background(), "101", 2, false); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want wrapped %v", err, wantErr)
	}
}

func TestServiceRecommendCancelledContext(t *testing.T) {
	svc := newTestService(t, &stubPredictor{}, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Recommend(ctx, "101", 2, false); err == nil {
		t.Fatal("cancelled context accepted")
	}
}
