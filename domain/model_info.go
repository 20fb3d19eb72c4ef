package domain

// ModelInfo summarizes a loaded model for the status endpoint.
type ModelInfo struct {
	UserCount int            `json:"user_count"`
	ItemCount int            `json:"item_count"`
	MineCount int            `json:"mine_count"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}
