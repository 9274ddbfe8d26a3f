// Package model holds the wire-format records exchanged with the remote
// catalog service. These are pure data contracts: identity is server-owned,
// local copies are transient and never cached across calls.
package model

import (
	"github.com/shopspring/decimal"
)

// Product is the full wire representation of a catalog product. Money fields
// are arbitrary-precision decimals; optional columns come through as JSON
// null and map to nil pointers.
type Product struct {
	ID                  int64            `json:"id"`
	UPC                 string           `json:"upc"`
	Name                string           `json:"name"`
	Description         string           `json:"description"`
	Amount              float64          `json:"amount"`
	CaseSize            *int64           `json:"case_size"`
	MeasureByWeight     bool             `json:"measure_by_weight"`
	CostPricePerUnit    decimal.Decimal  `json:"cost_price_per_unit"`
	SellingPricePerUnit decimal.Decimal  `json:"selling_price_per_unit"`
	SaleEnd             *Timestamp       `json:"sale_end"`
	BuyLevel            *float64         `json:"buy_level"`
	SalePrice           *decimal.Decimal `json:"sale_price"`
}
