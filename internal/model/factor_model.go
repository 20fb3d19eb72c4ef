package model

import "fmt"

// FactorModel scores (user, item) pairs from trained latent factors:
// user bias + item bias + user·item dot, plus a linear term over the
// item-feature row when feature weights were trained.
type FactorModel struct {
	UserFactors    [][]float64
	ItemFactors    [][]float64
	UserBiases     []float64
	ItemBiases     []float64
	FeatureWeights []float64
}

// Predict returns one raw score per candidate, in candidate order, in a
// single batch. Index or dimension violations are errors; the serving
// layer treats them as faults.
func (m *FactorModel) Predict(userIdx int, candidateIdxs []int, itemFeatures [][]float64) ([]float64, error) {
	if userIdx < 0 || userIdx >= len(m.UserFactors) {
		return nil, fmt.Errorf("user index %d outside [0,%d)", userIdx, len(m.UserFactors))
	}

	userVec := m.UserFactors[userIdx]
	scores := make([]float64, len(candidateIdxs))

	for i, idx := range candidateIdxs {
		if idx < 0 || idx >= len(m.ItemFactors) {
			return nil, fmt.Errorf("item index %d outside [0,%d)", idx, len(m.ItemFactors))
		}

		itemVec := m.ItemFactors[idx]
		if len(itemVec) != len(userVec) {
			return nil, fmt.Errorf("latent dimension mismatch: user %d vs item %d", len(userVec), len(itemVec))
		}

		score := dot(userVec, itemVec)
		if userIdx < len(m.UserBiases) {
			score += m.UserBiases[userIdx]
		}
		if idx < len(m.ItemBiases) {
			score += m.ItemBiases[idx]
		}
		if len(m.FeatureWeights) > 0 && idx < len(itemFeatures) {
			score += dotTrunc(m.FeatureWeights, itemFeatures[idx])
		}

		scores[i] = score
	}

	return scores, nil
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// dotTrunc dots over the shorter of the two vectors; feature rows may
// carry fewer columns than trained weights in older artifacts.
func dotTrunc(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
