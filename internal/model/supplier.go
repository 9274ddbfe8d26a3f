package model

// Supplier is a purchasing source. Phone and email are optional; absent
// values arrive as JSON null.
type Supplier struct {
	ID          int64    `json:"id"`
	Products    []*int64 `json:"products"`
	Name        string   `json:"name"`
	PhoneNumber *string  `json:"phone_number"`
	Email       *string  `json:"email"`
}
