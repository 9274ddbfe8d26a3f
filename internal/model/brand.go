package model

// Brand groups products under a manufacturer label. Products is a list of
// optional product-id slots: the schema permits a null entry even though the
// service is never expected to emit one.
type Brand struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Products []*int64 `json:"products"`
}
