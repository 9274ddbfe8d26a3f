package app

import (
	"stocklink/internal/model"
	"stocklink/internal/rank"
)

// The sort entry points reorder name projections by relevance to a search
// string. They are pure and take no session lock.

// SortProducts ranks product projections; a numeric query is treated as a
// barcode and scored against the UPC instead of the name.
func (a *App) SortProducts(names []model.ProductName, search string) ([]model.ProductName, error) {
	items := make([]rank.Item, 0, len(names))
	for _, n := range names {
		items = append(items, rank.Item{Name: n.Name, UPC: n.UPC, ID: n.ID})
	}
	ranked, err := rank.RankProducts(items, search)
	if err != nil {
		return nil, err
	}
	out := make([]model.ProductName, 0, len(ranked))
	for _, it := range ranked {
		out = append(out, model.ProductName{Name: it.Name, UPC: it.UPC, ID: it.ID})
	}
	return out, nil
}

func (a *App) SortBrands(names []model.BrandName, search string) ([]model.BrandName, error) {
	items := make([]rank.Item, 0, len(names))
	for _, n := range names {
		items = append(items, rank.Item{Name: n.Name, ID: n.ID})
	}
	ranked, err := rank.Rank(items, search)
	if err != nil {
		return nil, err
	}
	out := make([]model.BrandName, 0, len(ranked))
	for _, it := range ranked {
		out = append(out, model.BrandName{Name: it.Name, ID: it.ID})
	}
	return out, nil
}

func (a *App) SortCategories(names []model.CategoryName, search string) ([]model.CategoryName, error) {
	items := make([]rank.Item, 0, len(names))
	for _, n := range names {
		items = append(items, rank.Item{Name: n.Name, ID: n.ID})
	}
	ranked, err := rank.Rank(items, search)
	if err != nil {
		return nil, err
	}
	out := make([]model.CategoryName, 0, len(ranked))
	for _, it := range ranked {
		out = append(out, model.CategoryName{Name: it.Name, ID: it.ID})
	}
	return out, nil
}

func (a *App) SortSuppliers(names []model.SupplierName, search string) ([]model.SupplierName, error) {
	items := make([]rank.Item, 0, len(names))
	for _, n := range names {
		items = append(items, rank.Item{Name: n.Name, ID: n.ID})
	}
	ranked, err := rank.Rank(items, search)
	if err != nil {
		return nil, err
	}
	out := make([]model.SupplierName, 0, len(ranked))
	for _, it := range ranked {
		out = append(out, model.SupplierName{Name: it.Name, ID: it.ID})
	}
	return out, nil
}
