package model

// PendingOrder is a purchase order that has not arrived yet.
type PendingOrder struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"product_id"`
	Amount    float64 `json:"amount"`
}

// ReceivedOrder is created server-side by converting a PendingOrder.
// GrossAmount mirrors the originating order's Amount; Received may be null
// when the service never recorded a date.
type ReceivedOrder struct {
	ID               int64      `json:"id"`
	Received         *Timestamp `json:"received"`
	ProductID        int64      `json:"product_id"`
	GrossAmount      float64    `json:"gross_amount"`
	ActuallyReceived float64    `json:"actually_received"`
	Damaged          float64    `json:"damaged"`
}
