package model

// Category is a product grouping. See Brand for the optional-slot shape of
// Products.
type Category struct {
	ID       int64    `json:"id"`
	Products []*int64 `json:"products"`
	Name     string   `json:"name"`
}
