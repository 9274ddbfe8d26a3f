package app

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"stocklink/internal/apierror"
	"stocklink/internal/client"
	"stocklink/internal/dto"
	"stocklink/internal/model"
)

func noBrandError(productID int64) error {
	return apierror.New(apierror.Service, "app.ProductBrand", fmt.Sprintf("product %d has no brand", productID))
}

// GetProducts returns one page of products in display form.
func (a *App) GetProducts(ctx context.Context, limit, offset int64) ([]dto.Product, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return nil, err
	}
	wire, err := gw.GetProducts(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	products := make([]dto.Product, 0, len(wire))
	for _, w := range wire {
		products = append(products, dto.ProductFromWire(w))
	}
	return products, nil
}

// GetProduct fetches a single product in display form.
func (a *App) GetProduct(ctx context.Context, id int64) (dto.Product, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return dto.Product{}, err
	}
	wire, err := gw.GetProduct(ctx, id)
	if err != nil {
		return dto.Product{}, err
	}
	return dto.ProductFromWire(*wire), nil
}

// SaveProduct converts the display form back to the wire and upserts it.
func (a *App) SaveProduct(ctx context.Context, p dto.Product) error {
	wire, err := p.ToWire()
	if err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return err
	}
	return gw.UpdateProduct(ctx, &wire)
}

// NewProduct creates a blank product server-side and returns its display
// form seeded with the new id; the user fills in the rest before saving.
func (a *App) NewProduct(ctx context.Context) (dto.Product, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return dto.Product{}, err
	}
	id, err := gw.NewProduct(ctx, client.NewProductParams{
		CostPricePerUnit:    decimal.Zero,
		SellingPricePerUnit: decimal.Zero,
	})
	if err != nil {
		return dto.Product{}, err
	}
	buyLevel := 0.0
	caseSize := int64(0)
	return dto.Product{ID: id, BuyLevel: &buyLevel, CaseSize: &caseSize}, nil
}

// RemoveProduct deletes by id.
func (a *App) RemoveProduct(ctx context.Context, id int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return err
	}
	return gw.RemoveProduct(ctx, id)
}

// ProductNames returns the lightweight name projections for list UIs.
func (a *App) ProductNames(ctx context.Context) ([]model.ProductName, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return nil, err
	}
	return gw.ProductNames(ctx)
}

// ProductBrand resolves the brand of a product. A product without a brand
// is reported as a service error, matching how the UI treats it.
func (a *App) ProductBrand(ctx context.Context, productID int64) (dto.Brand, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return dto.Brand{}, err
	}
	wire, err := gw.ProductBrand(ctx, productID)
	if err != nil {
		return dto.Brand{}, err
	}
	if wire == nil {
		return dto.Brand{}, noBrandError(productID)
	}
	return dto.BrandFromWire(*wire)
}

// ProductSuppliers lists the suppliers attached to a product.
func (a *App) ProductSuppliers(ctx context.Context, productID int64) ([]dto.Supplier, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return nil, err
	}
	wire, err := gw.ProductSuppliers(ctx, productID)
	if err != nil {
		return nil, err
	}
	suppliers := make([]dto.Supplier, 0, len(wire))
	for _, w := range wire {
		s, err := dto.SupplierFromWire(w)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, nil
}

// ProductCategories lists the categories attached to a product.
func (a *App) ProductCategories(ctx context.Context, productID int64) ([]dto.Category, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return nil, err
	}
	wire, err := gw.ProductCategories(ctx, productID)
	if err != nil {
		return nil, err
	}
	categories := make([]dto.Category, 0, len(wire))
	for _, w := range wire {
		c, err := dto.CategoryFromWire(w)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}
