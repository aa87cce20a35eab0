package handler

// promotionRequest carries the full set of writable promotion fields. Both
// create and update take every field; updates are full-row replaces.
type promotionRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description" validate:"required"`
	ImageURL    string  `json:"image_url"   validate:"required"`
	Price       float64 `json:"price"       validate:"gte=0"`
}
