package reco

import (
	"errors"
	"testing"
)

// stubPredictor returns canned scores and records invocations.
type stubPredictor struct {
	scores []float64
	err    error
	calls  int
}

func (p *stubPredictor) Predict(userIdx int, candidateIdxs []int, itemFeatures [][]float64) ([]float64, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	if p.scores != nil {
		return p.scores, nil
	}
	out := make([]float64, len(candidateIdxs))
	for i, idx := range candidateIdxs {
		out[i] = float64(idx)
	}
	return out, nil
}

func TestScoreCandidatesEmptySetSkipsModel(t *testing.T) {
	p := &stubPredictor{}

	scored, err := scoreCandidates(p, 0, nil, nil)
	if err != nil {
		t.Fatalf("scoreCandidates: %v", err)
	}
	if len(scored) != 0 {
		t.Fatalf("got %d scored candidates, want 0", len(scored))
	}
	if p.calls != 0 {
		t.Fatalf("model called %d times for an empty candidate set", p.calls)
	}
}

func TestScoreCandidatesOnePerCandidateInOrder(t *testing.T) {
	p := &stubPredictor{scores: []float64{0.3, -1.2, 4.5}}
	candidates := []int{5, 2, 9}

	scored, err := scoreCandidates(p, 0, candidates, nil)
	if err != nil {
		t.Fatalf("scoreCandidates: %v", err)
	}
	if len(scored) != len(candidates) {
		t.Fatalf("got %d scored, want %d", len(scored), len(candidates))
	}
	for i, sc := range scored {
		if sc.ItemIdx != candidates[i] {
			t.Errorf("position %d holds item %d, want %d", i, sc.ItemIdx, candidates[i])
		}
		if sc.Raw != p.scores[i] {
			t.Errorf("position %d raw = %v, want %v", i, sc.Raw, p.scores[i])
		}
		if sc.Display < 1 || sc.Display > 5 {
			t.Errorf("display score %v outside [1,5]", sc.Display)
		}
	}
	if p.calls != 1 {
		t.Fatalf("model called %d times, want exactly one batch", p.calls)
	}
}

func TestScoreCandidatesDegenerateRange(t *testing.T) {
	p := &stubPredictor{scores: []float64{2.0, 2.0, 2.0}}

	scored, err := scoreCandidates(p, 0, []int{0, 1, 2}, nil)
	if err != nil {
		t.Fatalf("scoreCandidates: %v", err)
	}
	for _, sc := range scored {
		if sc.Display != 1.0 {
			t.Errorf("display = %v for equal raw scores, want exactly 1.0", sc.Display)
		}
	}
}

func TestScoreCandidatesSpansDisplayRange(t *testing.T) {
	p := &stubPredictor{scores: []float64{-3.0, 0.0, 7.0}}

	scored, err := scoreCandidates(p, 0, []int{0, 1, 2}, nil)
	if err != nil {
		t.Fatalf("scoreCandidates: %v", err)
	}

	if scored[0].Display != 1.0 {
		t.Errorf("minimum raw maps to %v, want 1.0", scored[0].Display)
	}
	if scored[2].Display <= scored[1].Display || scored[1].Display <= scored[0].Display {
		t.Errorf("display scores not monotone with raw: %v", scored)
	}
	if scored[2].Display > 5.0 {
		t.Errorf("maximum display %v above 5", scored[2].Display)
	}
}

func TestScoreCandidatesPredictionFault(t *testing.T) {
	wantErr := errors.New("matrix corrupted")
	p := &stubPredictor{err: wantErr}

	if _, err := scoreCandidates(p, 0, []int{0}, nil); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want wrapped %v", err, wantErr)
	}
}

func TestScoreCandidatesLengthMismatchIsFault(t *testing.T) {
	p := &stubPredictor{scores: []float64{1.0}}

	if _, err := scoreCandidates(p, 0, []int{0, 1}, nil); err == nil {
		t.Fatal("short score vector accepted")
	}
}
