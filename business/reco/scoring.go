package reco

import "fmt"

// Predictor is the narrow slice of the trained model the pipeline
// depends on. Predict returns one raw score per candidate, in candidate
// order, in a single batched call.
type Predictor interface {
	Predict(userIdx int, candidateIdxs []int, itemFeatures [][]float64) ([]float64, error)
}

// displayEpsilon guards the rescale against a zero score range when all
// raw scores in a batch are equal.
const displayEpsilon = 1e-9

// ScoredCandidate pairs an internal item index with its raw model score
// and the 1-5 display score derived from it.
type ScoredCandidate struct {
	ItemIdx int
	Raw     float64
	Display float64
}

// scoreCandidates runs one batched predict call and rescales the raw
// scores onto the 1-5 display range. The rescale is relative to this
// batch only; display scores are not comparable across requests. Output
// order matches candidate order, one entry per candidate.
func scoreCandidates(model Predictor, userIdx int, candidates []int, itemFeatures [][]float64) ([]ScoredCandidate, error) {
	if len(candidates) == 0 {
		return []ScoredCandidate{}, nil
	}

	raw, err := model.Predict(userIdx, candidates, itemFeatures)
	if err != nil {
		return nil, fmt.Errorf("model prediction: %w", err)
	}
	if len(raw) != len(candidates) {
		return nil, fmt.Errorf("model prediction: got %d scores for %d candidates", len(raw), len(candidates))
	}

	minRaw, maxRaw := raw[0], raw[0]
	for _, v := range raw[1:] {
		if v < minRaw {
			minRaw = v
		}
		if v > maxRaw {
			maxRaw = v
		}
	}
	span := maxRaw - minRaw

	scored := make([]ScoredCandidate, len(candidates))
	for i, idx := range candidates {
		scored[i] = ScoredCandidate{
			ItemIdx: idx,
			Raw:     raw[i],
			Display: 1 + 4*(raw[i]-minRaw)/(span+displayEpsilon),
		}
	}

	return scored, nil
}
