package domain

// Recommendation is one ranked course in a response. Score is the 1-5
// display score, batch-relative; OriginalScore is the raw model output.
// Metadata fields are omitted when the catalog has no value for them.
type Recommendation struct {
	CourseID      string   `json:"course_id"`
	Score         float64  `json:"score"`
	OriginalScore float64  `json:"original_score"`
	Title         string   `json:"title,omitempty"`
	Category      string   `json:"category,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	Level         string   `json:"level,omitempty"`
	Language      string   `json:"language,omitempty"`
}

// RecommendationPayload is the full result of one recommend call. An
// unknown user produces Count == 0 with a non-empty Error, not a fault.
// Recommendations is always non-nil so it serializes as [].
type RecommendationPayload struct {
	UserID          string           `json:"user_id"`
	Count           int              `json:"count"`
	MineOnly        bool             `json:"mine_only"`
	Error           string           `json:"error,omitempty"`
	Recommendations []Recommendation `json:"recommendations"`
}
