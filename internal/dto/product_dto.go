package dto

import (
	"github.com/shopspring/decimal"

	"stocklink/internal/model"
)

// Product is the flattened, display-ready form of a catalog product. Prices
// are canonical decimal strings; SalePrice and SaleEnd are empty when the
// product has no active sale.
type Product struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	UPC             string   `json:"upc"`
	Description     string   `json:"description"`
	BuyLevel        *float64 `json:"buyLevel"`
	CostPrice       string   `json:"costPrice"`
	SellingPrice    string   `json:"sellingPrice"`
	Amount          float64  `json:"amount"`
	CaseSize        *int64   `json:"case_size"`
	MeasureByWeight bool     `json:"measureByWeight"`
	SalePrice       string   `json:"salePrice"`
	SaleEnd         string   `json:"saleEnd"`
}

// ProductFromWire flattens a wire product for display.
func ProductFromWire(w model.Product) Product {
	p := Product{
		ID:              w.ID,
		Name:            w.Name,
		UPC:             w.UPC,
		Description:     w.Description,
		BuyLevel:        w.BuyLevel,
		CostPrice:       formatDecimal(w.CostPricePerUnit),
		SellingPrice:    formatDecimal(w.SellingPricePerUnit),
		Amount:          w.Amount,
		CaseSize:        w.CaseSize,
		MeasureByWeight: w.MeasureByWeight,
	}
	if w.SalePrice != nil {
		p.SalePrice = formatDecimal(*w.SalePrice)
	}
	if w.SaleEnd != nil {
		p.SaleEnd = w.SaleEnd.Format(dateLayout)
	}
	return p
}

// ToWire parses the display strings back into exact wire values. A malformed
// decimal or date stops the conversion with a Parse error.
func (p Product) ToWire() (model.Product, error) {
	const op = "adapter.Product"

	cost, err := parseDecimal(op, "cost price", p.CostPrice)
	if err != nil {
		return model.Product{}, err
	}
	selling, err := parseDecimal(op, "selling price", p.SellingPrice)
	if err != nil {
		return model.Product{}, err
	}

	var salePrice *decimal.Decimal
	if p.SalePrice != "" {
		d, err := parseDecimal(op, "sale price", p.SalePrice)
		if err != nil {
			return model.Product{}, err
		}
		salePrice = &d
	}
	var saleEnd *model.Timestamp
	if p.SaleEnd != "" {
		t, err := parseDate(op, "sale end", p.SaleEnd)
		if err != nil {
			return model.Product{}, err
		}
		ts := model.NewTimestamp(t)
		saleEnd = &ts
	}

	return model.Product{
		ID:                  p.ID,
		UPC:                 p.UPC,
		Name:                p.Name,
		Description:         p.Description,
		Amount:              p.Amount,
		CaseSize:            p.CaseSize,
		MeasureByWeight:     p.MeasureByWeight,
		CostPricePerUnit:    cost,
		SellingPricePerUnit: selling,
		SaleEnd:             saleEnd,
		BuyLevel:            p.BuyLevel,
		SalePrice:           salePrice,
	}, nil
}
