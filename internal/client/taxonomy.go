package client

import (
	"context"
	"fmt"
	"net/url"

	"stocklink/internal/apierror"
	"stocklink/internal/model"
)

// Brand, category and supplier operations. The three entity types share one
// wire shape (id, name, product-id slots) and one endpoint layout.

func (g *Gateway) NewBrand(ctx context.Context, name string) (int64, error) {
	return g.getID(ctx, "gateway.NewBrand", "new_brand", url.Values{"name": {name}})
}

func (g *Gateway) NewCategory(ctx context.Context, name string) (int64, error) {
	return g.getID(ctx, "gateway.NewCategory", "new_category", url.Values{"name": {name}})
}

func (g *Gateway) NewSupplier(ctx context.Context, name, phoneNumber, email string) (int64, error) {
	q := url.Values{
		"name":         {name},
		"phone_number": {phoneNumber},
		"email":        {email},
	}
	return g.getID(ctx, "gateway.NewSupplier", "new_supplier", q)
}

func (g *Gateway) UpdateBrand(ctx context.Context, b *model.Brand) error {
	return g.updateByQuery(ctx, "gateway.UpdateBrand", "update_brand", "brand_info", b)
}

func (g *Gateway) UpdateCategory(ctx context.Context, c *model.Category) error {
	return g.updateByQuery(ctx, "gateway.UpdateCategory", "update_category", "category_info", c)
}

func (g *Gateway) UpdateSupplier(ctx context.Context, s *model.Supplier) error {
	return g.updateByQuery(ctx, "gateway.UpdateSupplier", "update_supplier", "supplier_info", s)
}

func (g *Gateway) RemoveBrand(ctx context.Context, id int64) error {
	return g.get(ctx, "gateway.RemoveBrand", fmt.Sprintf("remove_brand/%d", id), nil, nil)
}

func (g *Gateway) RemoveCategory(ctx context.Context, id int64) error {
	return g.get(ctx, "gateway.RemoveCategory", fmt.Sprintf("remove_category/%d", id), nil, nil)
}

func (g *Gateway) RemoveSupplier(ctx context.Context, id int64) error {
	return g.get(ctx, "gateway.RemoveSupplier", fmt.Sprintf("remove_supplier/%d", id), nil, nil)
}

func (g *Gateway) GetBrands(ctx context.Context, limit, offset int64) ([]model.Brand, error) {
	var brands []model.Brand
	if err := g.get(ctx, "gateway.GetBrands", "brands", pageQuery(limit, offset), &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

func (g *Gateway) GetCategories(ctx context.Context, limit, offset int64) ([]model.Category, error) {
	var categories []model.Category
	if err := g.get(ctx, "gateway.GetCategories", "categories", pageQuery(limit, offset), &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (g *Gateway) GetSuppliers(ctx context.Context, limit, offset int64) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	if err := g.get(ctx, "gateway.GetSuppliers", "suppliers", pageQuery(limit, offset), &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

// The single fetches decode into a pointer so that a null body (the
// service's "no such row" answer) surfaces as a decode failure instead of a
// zero-valued entity.

func (g *Gateway) GetBrand(ctx context.Context, id int64) (*model.Brand, error) {
	const op = "gateway.GetBrand"
	var brand *model.Brand
	if err := g.get(ctx, op, fmt.Sprintf("brand/%d", id), nil, &brand); err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, apierror.New(apierror.Decode, op, fmt.Sprintf("no brand with id %d", id))
	}
	return brand, nil
}

func (g *Gateway) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	const op = "gateway.GetCategory"
	var category *model.Category
	if err := g.get(ctx, op, fmt.Sprintf("category/%d", id), nil, &category); err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apierror.New(apierror.Decode, op, fmt.Sprintf("no category with id %d", id))
	}
	return category, nil
}

func (g *Gateway) GetSupplier(ctx context.Context, id int64) (*model.Supplier, error) {
	const op = "gateway.GetSupplier"
	var supplier *model.Supplier
	if err := g.get(ctx, op, fmt.Sprintf("supplier/%d", id), nil, &supplier); err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apierror.New(apierror.Decode, op, fmt.Sprintf("no supplier with id %d", id))
	}
	return supplier, nil
}

func (g *Gateway) BrandNames(ctx context.Context) ([]model.BrandName, error) {
	var names []model.BrandName
	if err := g.get(ctx, "gateway.BrandNames", "brands/names", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

func (g *Gateway) CategoryNames(ctx context.Context) ([]model.CategoryName, error) {
	var names []model.CategoryName
	if err := g.get(ctx, "gateway.CategoryNames", "categories/names", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

func (g *Gateway) SupplierNames(ctx context.Context) ([]model.SupplierName, error) {
	var names []model.SupplierName
	if err := g.get(ctx, "gateway.SupplierNames", "suppliers/names", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}
