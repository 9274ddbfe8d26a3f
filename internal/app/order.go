package app

import (
	"context"

	"stocklink/internal/dto"
)

// GetPendingOrders returns one page of pending orders in display form.
func (a *App) GetPendingOrders(ctx context.Context, limit, offset int64) ([]dto.PendingOrder, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return nil, err
	}
	wire, err := gw.GetPendingOrders(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	orders := make([]dto.PendingOrder, 0, len(wire))
	for _, w := range wire {
		orders = append(orders, dto.PendingOrderFromWire(w))
	}
	return orders, nil
}

// GetReceivedOrders returns one page of received orders in display form.
func (a *App) GetReceivedOrders(ctx context.Context, limit, offset int64) ([]dto.ReceivedOrder, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return nil, err
	}
	wire, err := gw.GetReceivedOrders(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	orders := make([]dto.ReceivedOrder, 0, len(wire))
	for _, w := range wire {
		orders = append(orders, dto.ReceivedOrderFromWire(w))
	}
	return orders, nil
}

// NewPendingOrder creates a zero-amount pending order for a product and
// returns its display form seeded with the new id.
func (a *App) NewPendingOrder(ctx context.Context, productID int64) (dto.PendingOrder, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return dto.PendingOrder{}, err
	}
	id, err := gw.NewPendingOrder(ctx, 0, productID)
	if err != nil {
		return dto.PendingOrder{}, err
	}
	return dto.PendingOrder{ID: id, Product: productID}, nil
}

func (a *App) SavePendingOrder(ctx context.Context, o dto.PendingOrder) error {
	wire := o.ToWire()
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return err
	}
	return gw.UpdatePendingOrder(ctx, &wire)
}

func (a *App) SaveReceivedOrder(ctx context.Context, o dto.ReceivedOrder) error {
	wire, err := o.ToWire()
	if err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return err
	}
	return gw.UpdateReceivedOrder(ctx, &wire)
}

func (a *App) RemovePendingOrder(ctx context.Context, id int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return err
	}
	return gw.RemovePendingOrder(ctx, id)
}

func (a *App) RemoveReceivedOrder(ctx context.Context, id int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return err
	}
	return gw.RemoveReceivedOrder(ctx, id)
}

// MarkOrderReceived converts a pending order into a received order. The
// gross amount mirrors the pending order's amount; the returned display
// order carries the id the service assigned to the new received order.
func (a *App) MarkOrderReceived(ctx context.Context, order dto.PendingOrder, date string, actuallyReceived, damaged float64) (dto.ReceivedOrder, error) {
	received := dto.ReceivedFromPending(order, date, actuallyReceived, damaged)
	wire, err := received.ToWire()
	if err != nil {
		return dto.ReceivedOrder{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return dto.ReceivedOrder{}, err
	}
	id, err := gw.MarkAsReceived(ctx, order.ID, wire.Received.Time, actuallyReceived, damaged)
	if err != nil {
		return dto.ReceivedOrder{}, err
	}
	received.ID = id
	return received, nil
}
