package client

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"stocklink/internal/model"
)

// NewPendingOrder creates a pending purchase order for a product.
func (g *Gateway) NewPendingOrder(ctx context.Context, amount float64, productID int64) (int64, error) {
	q := url.Values{
		"amount":     {fmt.Sprint(amount)},
		"product_id": {fmt.Sprint(productID)},
	}
	return g.getID(ctx, "gateway.NewPendingOrder", "new_pending_order", q)
}

func (g *Gateway) UpdatePendingOrder(ctx context.Context, o *model.PendingOrder) error {
	return g.updateByQuery(ctx, "gateway.UpdatePendingOrder", "update_pending_order", "order_info", o)
}

func (g *Gateway) UpdateReceivedOrder(ctx context.Context, o *model.ReceivedOrder) error {
	return g.updateByQuery(ctx, "gateway.UpdateReceivedOrder", "update_received_order", "order_info", o)
}

func (g *Gateway) RemovePendingOrder(ctx context.Context, id int64) error {
	return g.get(ctx, "gateway.RemovePendingOrder", fmt.Sprintf("remove_pending_order/%d", id), nil, nil)
}

func (g *Gateway) RemoveReceivedOrder(ctx context.Context, id int64) error {
	return g.get(ctx, "gateway.RemoveReceivedOrder", fmt.Sprintf("remove_received_order/%d", id), nil, nil)
}

func (g *Gateway) GetPendingOrders(ctx context.Context, limit, offset int64) ([]model.PendingOrder, error) {
	var orders []model.PendingOrder
	if err := g.get(ctx, "gateway.GetPendingOrders", "pending_orders", pageQuery(limit, offset), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (g *Gateway) GetReceivedOrders(ctx context.Context, limit, offset int64) ([]model.ReceivedOrder, error) {
	var orders []model.ReceivedOrder
	if err := g.get(ctx, "gateway.GetReceivedOrders", "received_orders", pageQuery(limit, offset), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// MarkAsReceived converts a pending order into a received order server-side
// and returns the new received-order id. The date travels as Unix seconds.
func (g *Gateway) MarkAsReceived(ctx context.Context, orderID int64, date time.Time, actuallyReceived, damaged float64) (int64, error) {
	q := url.Values{
		"order_id":          {fmt.Sprint(orderID)},
		"date":              {fmt.Sprint(date.Unix())},
		"actually_received": {fmt.Sprint(actuallyReceived)},
		"damaged":           {fmt.Sprint(damaged)},
	}
	return g.getID(ctx, "gateway.MarkAsReceived", "mark_order_as_received", q)
}
