package domain

// Promotion is a displayable offer. Reads are public; writes are restricted to
// the configured admin identity.
type Promotion struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Price       float64 `json:"price"`
}
