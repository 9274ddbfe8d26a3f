package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"stocklink/internal/apierror"
	"stocklink/internal/model"
)

// NewProductParams carries the fields of a product create. Brand is optional;
// when nil the brand parameter is omitted from the request entirely.
type NewProductParams struct {
	UPC                 string
	Name                string
	Description         string
	MeasureByWeight     bool
	CostPricePerUnit    decimal.Decimal
	SellingPricePerUnit decimal.Decimal
	BuyLevel            float64
	Categories          []int64
	Suppliers           []int64
	Brand               *int64
}

// NewProduct creates a product and returns the server-assigned id.
func (g *Gateway) NewProduct(ctx context.Context, p NewProductParams) (int64, error) {
	const op = "gateway.NewProduct"

	categories, err := json.Marshal(p.Categories)
	if err != nil {
		return 0, apierror.Wrap(apierror.Decode, op, err)
	}
	suppliers, err := json.Marshal(p.Suppliers)
	if err != nil {
		return 0, apierror.Wrap(apierror.Decode, op, err)
	}

	q := url.Values{
		"upc":                    {p.UPC},
		"name":                   {p.Name},
		"description":            {p.Description},
		"measure_by_weight":      {fmt.Sprint(p.MeasureByWeight)},
		"cost_price_per_unit":    {p.CostPricePerUnit.String()},
		"selling_price_per_unit": {p.SellingPricePerUnit.String()},
		"categories":             {string(categories)},
		"suppliers":              {string(suppliers)},
		"buy_level":              {fmt.Sprint(p.BuyLevel)},
	}
	if p.Brand != nil {
		q.Set("brand", fmt.Sprint(*p.Brand))
	}
	return g.getID(ctx, op, "new_product", q)
}

// UpdateProduct upserts a product. The serialized entity rides as a path
// segment on this endpoint.
func (g *Gateway) UpdateProduct(ctx context.Context, p *model.Product) error {
	return g.updateByPath(ctx, "gateway.UpdateProduct", "update_product", p)
}

// RemoveProduct deletes by id. The service surfaces no distinct "not found"
// outcome, so removal is idempotent from the caller's perspective.
func (g *Gateway) RemoveProduct(ctx context.Context, id int64) error {
	return g.get(ctx, "gateway.RemoveProduct", fmt.Sprintf("remove_product/%d", id), nil, nil)
}

// GetProducts returns one page of products.
func (g *Gateway) GetProducts(ctx context.Context, limit, offset int64) ([]model.Product, error) {
	var products []model.Product
	if err := g.get(ctx, "gateway.GetProducts", "products", pageQuery(limit, offset), &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches a single product; a missing id surfaces as a decode
// failure since the service answers with a null body instead of a product.
func (g *Gateway) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	const op = "gateway.GetProduct"
	var product *model.Product
	if err := g.get(ctx, op, fmt.Sprintf("product/%d", id), nil, &product); err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apierror.New(apierror.Decode, op, fmt.Sprintf("no product with id %d", id))
	}
	return product, nil
}

// ProductNames returns the (name, upc, id) projection of every product.
func (g *Gateway) ProductNames(ctx context.Context) ([]model.ProductName, error) {
	var names []model.ProductName
	if err := g.get(ctx, "gateway.ProductNames", "products/names", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// ProductBrand is the reverse relation lookup: the brand of a product, or
// nil when the product has none.
func (g *Gateway) ProductBrand(ctx context.Context, productID int64) (*model.Brand, error) {
	var brand *model.Brand
	if err := g.get(ctx, "gateway.ProductBrand", fmt.Sprintf("product_brand/%d", productID), nil, &brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// ProductSuppliers lists the suppliers attached to a product.
func (g *Gateway) ProductSuppliers(ctx context.Context, productID int64) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	if err := g.get(ctx, "gateway.ProductSuppliers", fmt.Sprintf("product_suppliers/%d", productID), nil, &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

// ProductCategories lists the categories attached to a product.
func (g *Gateway) ProductCategories(ctx context.Context, productID int64) ([]model.Category, error) {
	var categories []model.Category
	if err := g.get(ctx, "gateway.ProductCategories", fmt.Sprintf("product_categories/%d", productID), nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
