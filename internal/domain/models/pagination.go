package models

// Paginated is the envelope every list endpoint of the API uses.
type Paginated[T any] struct {
	Data   []T `json:"data"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// BulkStatusUpdate toggles is_active for a batch of resources.
type BulkStatusUpdate struct {
	IDs      []int `json:"ids"`
	IsActive bool  `json:"is_active"`
}

// BulkStatusResult summarizes the outcome of a bulk status change.
type BulkStatusResult struct {
	Message string `json:"message,omitempty"`
	Updated []int  `json:"updated,omitempty"`
	Skipped int    `json:"skipped,omitempty"`
}
