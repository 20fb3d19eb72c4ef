package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"msaRecommender/domain"
)

// Artifact mirrors the on-disk training output. The maps and matrices
// are required model components; the review log, mine subset and course
// catalog are optional enrichments.
type Artifact struct {
	UserMap        map[string]int  `json:"user_map"`
	ItemMap        map[string]int  `json:"item_map"`
	UserFactors    [][]float64     `json:"user_factors"`
	ItemFactors    [][]float64     `json:"item_factors"`
	UserBiases     []float64       `json:"user_biases"`
	ItemBiases     []float64       `json:"item_biases"`
	ItemFeatures   [][]float64     `json:"course_features_matrix"`
	FeatureWeights []float64       `json:"feature_weights"`
	MineIndices    []int           `json:"mine_course_indices"`
	Reviews        []domain.Review `json:"sampled_reviews"`
	Courses        []domain.Course `json:"courses"`
	Metadata       map[string]any  `json:"metadata"`
}

// ReadArtifact loads and structurally validates a model artifact file.
func ReadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}

	if err := a.validate(); err != nil {
		return nil, fmt.Errorf("model artifact %s: %w", path, err)
	}

	return &a, nil
}

func (a *Artifact) validate() error {
	if len(a.UserMap) == 0 || len(a.ItemMap) == 0 {
		return errors.New("missing identifier mappings")
	}
	if len(a.UserFactors) == 0 || len(a.ItemFactors) == 0 {
		return errors.New("missing latent factors")
	}
	if a.ItemFeatures == nil {
		return errors.New("missing course feature matrix")
	}
	if len(a.UserFactors) < len(a.UserMap) {
		return fmt.Errorf("user factors cover %d of %d users", len(a.UserFactors), len(a.UserMap))
	}
	if len(a.ItemFactors) < len(a.ItemMap) {
		return fmt.Errorf("item factors cover %d of %d items", len(a.ItemFactors), len(a.ItemMap))
	}
	return nil
}
