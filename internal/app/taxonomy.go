package app

import (
	"context"

	"stocklink/internal/apierror"
	"stocklink/internal/dto"
	"stocklink/internal/model"
	"stocklink/internal/validate"
)

// Brand entry points.

func (a *App) GetBrands(ctx context.Context, limit, offset int64) ([]dto.Brand, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return nil, err
	}
	wire, err := gw.GetBrands(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	brands := make([]dto.Brand, 0, len(wire))
	for _, w := range wire {
		b, err := dto.BrandFromWire(w)
		if err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, nil
}

func (a *App) GetBrand(ctx context.Context, id int64) (dto.Brand, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return dto.Brand{}, err
	}
	wire, err := gw.GetBrand(ctx, id)
	if err != nil {
		return dto.Brand{}, err
	}
	return dto.BrandFromWire(*wire)
}

func (a *App) SaveBrand(ctx context.Context, b dto.Brand) error {
	wire := b.ToWire()
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return err
	}
	return gw.UpdateBrand(ctx, &wire)
}

// NewBrand creates a blank brand server-side and returns its display form
// seeded with the new id.
func (a *App) NewBrand(ctx context.Context) (dto.Brand, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return dto.Brand{}, err
	}
	id, err := gw.NewBrand(ctx, "")
	if err != nil {
		return dto.Brand{}, err
	}
	return dto.Brand{ID: id}, nil
}

func (a *App) RemoveBrand(ctx context.Context, id int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return err
	}
	return gw.RemoveBrand(ctx, id)
}

func (a *App) BrandNames(ctx context.Context) ([]model.BrandName, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return nil, err
	}
	return gw.BrandNames(ctx)
}

// Category entry points.

func (a *App) GetCategories(ctx context.Context, limit, offset int64) ([]dto.Category, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return nil, err
	}
	wire, err := gw.GetCategories(ctx, limit, offset)
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

func (a *App) GetCategory(ctx context.Context, id int64) (dto.Category, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return dto.Category{}, err
	}
	wire, err := gw.GetCategory(ctx, id)
	if err != nil {
		return dto.Category{}, err
	}
	return dto.CategoryFromWire(*wire)
}

func (a *App) SaveCategory(ctx context.Context, c dto.Category) error {
	wire := c.ToWire()
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return err
	}
	return gw.UpdateCategory(ctx, &wire)
}

func (a *App) NewCategory(ctx context.Context) (dto.Category, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return dto.Category{}, err
	}
	id, err := gw.NewCategory(ctx, "")
	if err != nil {
		return dto.Category{}, err
	}
	return dto.Category{ID: id}, nil
}

func (a *App) RemoveCategory(ctx context.Context, id int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return err
	}
	return gw.RemoveCategory(ctx, id)
}

func (a *App) CategoryNames(ctx context.Context) ([]model.CategoryName, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return nil, err
	}
	return gw.CategoryNames(ctx)
}

// Supplier entry points.

func (a *App) GetSuppliers(ctx context.Context, limit, offset int64) ([]dto.Supplier, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return nil, err
	}
	wire, err := gw.GetSuppliers(ctx, limit, offset)
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

func (a *App) GetSupplier(ctx context.Context, id int64) (dto.Supplier, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return dto.Supplier{}, err
	}
	wire, err := gw.GetSupplier(ctx, id)
	if err != nil {
		return dto.Supplier{}, err
	}
	return dto.SupplierFromWire(*wire)
}

// SaveSupplier gates the save on the contact syntax rules: a present phone
// or email must match its pattern, and at least one of the two must be
// given. The rejection is uniform; the UI does not learn which field failed.
func (a *App) SaveSupplier(ctx context.Context, s dto.Supplier) error {
	const op = "app.SaveSupplier"

	if s.PhoneNumber == "" && s.Email == "" {
		return apierror.New(apierror.Validation, op, "not a valid input")
	}
	if !validate.IsValidPhone(s.PhoneNumber) || !validate.IsValidEmail(s.Email) {
		return apierror.New(apierror.Validation, op, "not a valid input")
	}

	wire := s.ToWire()
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return err
	}
	return gw.UpdateSupplier(ctx, &wire)
}

func (a *App) NewSupplier(ctx context.Context) (dto.Supplier, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return dto.Supplier{}, err
	}
	id, err := gw.NewSupplier(ctx, "", "", "")
	if err != nil {
		return dto.Supplier{}, err
	}
	return dto.Supplier{ID: id}, nil
}

func (a *App) RemoveSupplier(ctx context.Context, id int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return err
	}
	return gw.RemoveSupplier(ctx, id)
}

func (a *App) SupplierNames(ctx context.Context) ([]model.SupplierName, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return nil, err
	}
	return gw.SupplierNames(ctx)
}
