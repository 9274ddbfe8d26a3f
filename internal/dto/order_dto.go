package dto

import (
	"time"

	"stocklink/internal/model"
)

// PendingOrder is the display form of a pending purchase order.
type PendingOrder struct {
	ID      int64   `json:"id"`
	Product int64   `json:"product"`
	Amount  float64 `json:"amount"`
}

func PendingOrderFromWire(w model.PendingOrder) PendingOrder {
	return PendingOrder{ID: w.ID, Product: w.ProductID, Amount: w.Amount}
}

func (o PendingOrder) ToWire() model.PendingOrder {
	return model.PendingOrder{ID: o.ID, ProductID: o.Product, Amount: o.Amount}
}

// ReceivedOrder is the display form of a received order. Received holds only
// the date portion as MM/DD/YYYY; a wire order without a recorded date shows
// the epoch date.
type ReceivedOrder struct {
	ID               int64   `json:"id"`
	ProductID        int64   `json:"product_id"`
	GrossAmount      float64 `json:"gross_amount"`
	ActuallyReceived float64 `json:"actually_received"`
	Damaged          float64 `json:"damaged"`
	Received         string  `json:"received"`
}

func ReceivedOrderFromWire(w model.ReceivedOrder) ReceivedOrder {
	received := time.Unix(0, 0).UTC()
	if w.Received != nil {
		received = w.Received.Time
	}
	return ReceivedOrder{
		ID:               w.ID,
		ProductID:        w.ProductID,
		GrossAmount:      w.GrossAmount,
		ActuallyReceived: w.ActuallyReceived,
		Damaged:          w.Damaged,
		Received:         received.Format(dateLayout),
	}
}

// ToWire parses the display date back to a wire datetime at midnight. The
// original time-of-day, if it was ever non-midnight, is not reconstructable.
func (o ReceivedOrder) ToWire() (model.ReceivedOrder, error) {
	t, err := parseDate("adapter.ReceivedOrder", "received", o.Received)
	if err != nil {
		return model.ReceivedOrder{}, err
	}
	ts := model.NewTimestamp(t)
	return model.ReceivedOrder{
		ID:               o.ID,
		ProductID:        o.ProductID,
		GrossAmount:      o.GrossAmount,
		ActuallyReceived: o.ActuallyReceived,
		Damaged:          o.Damaged,
		Received:         &ts,
	}, nil
}

// ReceivedFromPending derives the display form of a received order from the
// pending order it came from: the gross amount mirrors the pending amount,
// the caller supplies everything else.
func ReceivedFromPending(p PendingOrder, received string, actuallyReceived, damaged float64) ReceivedOrder {
	return ReceivedOrder{
		ID:               p.ID,
		ProductID:        p.Product,
		GrossAmount:      p.Amount,
		ActuallyReceived: actuallyReceived,
		Damaged:          damaged,
		Received:         received,
	}
}
