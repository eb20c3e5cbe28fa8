package entity

// Rating is immutable once created; there is no edit or delete flow.
type Rating struct {
	ID        string `json:"_id,omitempty"`
	ProductID string `json:"productId,omitempty"`
	Author    string `json:"name,omitempty"`
	Score     int    `json:"score"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}
