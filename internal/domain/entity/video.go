package entity

// LearningVideo is an entry from the static tutorial catalog bundled with
// the gateway; it does not come from the marketplace API.
type LearningVideo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}
