package model

import (
	"encoding/json"
	"fmt"
)

// Name projections are the lightweight records behind the /*/names endpoints.
// The service emits each record as a heterogeneous JSON tuple
// ([name, id] or [name, upc, id] for products), so decoding is custom.
// Locally they marshal as plain objects for the presentation layer.

// ProductName is the (name, upc, id) projection of a product.
type ProductName struct {
	Name string `json:"name"`
	UPC  string `json:"upc"`
	ID   int64  `json:"id"`
}

func (n *ProductName) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("product name: %w", err)
	}
	if len(tuple) != 3 {
		return fmt.Errorf("product name: expected 3 elements, got %d", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &n.Name); err != nil {
		return fmt.Errorf("product name: %w", err)
	}
	if err := json.Unmarshal(tuple[1], &n.UPC); err != nil {
		return fmt.Errorf("product name: %w", err)
	}
	if err := json.Unmarshal(tuple[2], &n.ID); err != nil {
		return fmt.Errorf("product name: %w", err)
	}
	return nil
}

// BrandName is the (name, id) projection of a brand.
type BrandName struct {
	Name string `json:"name"`
	ID   int64  `json:"id"`
}

func (n *BrandName) UnmarshalJSON(data []byte) error {
	name, id, err := decodeNameIDTuple(data, "brand name")
	if err != nil {
		return err
	}
	n.Name, n.ID = name, id
	return nil
}

// CategoryName is the (name, id) projection of a category.
type CategoryName struct {
	Name string `json:"name"`
	ID   int64  `json:"id"`
}

func (n *CategoryName) UnmarshalJSON(data []byte) error {
	name, id, err := decodeNameIDTuple(data, "category name")
	if err != nil {
		return err
	}
	n.Name, n.ID = name, id
	return nil
}

// SupplierName is the (name, id) projection of a supplier.
type SupplierName struct {
	Name string `json:"name"`
	ID   int64  `json:"id"`
}

func (n *SupplierName) UnmarshalJSON(data []byte) error {
	name, id, err := decodeNameIDTuple(data, "supplier name")
	if err != nil {
		return err
	}
	n.Name, n.ID = name, id
	return nil
}

func decodeNameIDTuple(data []byte, what string) (string, int64, error) {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return "", 0, fmt.Errorf("%s: %w", what, err)
	}
	if len(tuple) != 2 {
		return "", 0, fmt.Errorf("%s: expected 2 elements, got %d", what, len(tuple))
	}
	var name string
	var id int64
	if err := json.Unmarshal(tuple[0], &name); err != nil {
		return "", 0, fmt.Errorf("%s: %w", what, err)
	}
	if err := json.Unmarshal(tuple[1], &id); err != nil {
		return "", 0, fmt.Errorf("%s: %w", what, err)
	}
	return name, id, nil
}
