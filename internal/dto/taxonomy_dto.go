package dto

import (
	"stocklink/internal/model"
)

// Brand is the flattened form of a wire brand: relation slots unwrapped to
// plain product ids.
type Brand struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Products []int64 `json:"products"`
}

func BrandFromWire(w model.Brand) (Brand, error) {
	products, err := unwrapIDs("adapter.Brand", w.Products)
	if err != nil {
		return Brand{}, err
	}
	return Brand{ID: w.ID, Name: w.Name, Products: products}, nil
}

func (b Brand) ToWire() model.Brand {
	return model.Brand{ID: b.ID, Name: b.Name, Products: wrapIDs(b.Products)}
}

// Category mirrors Brand.
type Category struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Products []int64 `json:"products"`
}

func CategoryFromWire(w model.Category) (Category, error) {
	products, err := unwrapIDs("adapter.Category", w.Products)
	if err != nil {
		return Category{}, err
	}
	return Category{ID: w.ID, Name: w.Name, Products: products}, nil
}

func (c Category) ToWire() model.Category {
	return model.Category{ID: c.ID, Name: c.Name, Products: wrapIDs(c.Products)}
}

// Supplier flattens optional phone/email into strings; empty means absent.
type Supplier struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phoneNumber"`
	Products    []int64 `json:"products"`
}

func SupplierFromWire(w model.Supplier) (Supplier, error) {
	products, err := unwrapIDs("adapter.Supplier", w.Products)
	if err != nil {
		return Supplier{}, err
	}
	return Supplier{
		ID:          w.ID,
		Name:        w.Name,
		Email:       stringOrEmpty(w.Email),
		PhoneNumber: stringOrEmpty(w.PhoneNumber),
		Products:    products,
	}, nil
}

func (s Supplier) ToWire() model.Supplier {
	return model.Supplier{
		ID:          s.ID,
		Name:        s.Name,
		Products:    wrapIDs(s.Products),
		PhoneNumber: emptyAsAbsent(s.PhoneNumber),
		Email:       emptyAsAbsent(s.Email),
	}
}
