package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocklink/internal/apierror"
	"stocklink/internal/model"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func sampleWireProduct(t *testing.T) model.Product {
	t.Helper()
	caseSize := int64(12)
	buyLevel := 4.0
	salePrice := mustDecimal(t, "2.49")
	saleEnd := model.NewTimestamp(mustDate(t, "06/30/2024"))
	return model.Product{
		ID:                  42,
		UPC:                 "012345678905",
		Name:                "Widget",
		Description:         "A widget",
		Amount:              10,
		CaseSize:            &caseSize,
		MeasureByWeight:     false,
		CostPricePerUnit:    mustDecimal(t, "1.50"),
		SellingPricePerUnit: mustDecimal(t, "2.99"),
		SaleEnd:             &saleEnd,
		BuyLevel:            &buyLevel,
		SalePrice:           &salePrice,
	}
}

func TestProductToUI(t *testing.T) {
	p := ProductFromWire(sampleWireProduct(t))

	assert.Equal(t, "1.50", p.CostPrice, "wire scale must survive formatting")
	assert.Equal(t, "2.99", p.SellingPrice)
	assert.Equal(t, "2.49", p.SalePrice)
	assert.Equal(t, "06/30/2024", p.SaleEnd)
	assert.Equal(t, "Widget", p.Name)
	require.NotNil(t, p.CaseSize)
	assert.Equal(t, int64(12), *p.CaseSize)
}

func TestProductRoundTrip(t *testing.T) {
	wire := sampleWireProduct(t)

	back, err := ProductFromWire(wire).ToWire()
	require.NoError(t, err)

	assert.Equal(t, wire.ID, back.ID)
	assert.Equal(t, wire.UPC, back.UPC)
	assert.True(t, wire.CostPricePerUnit.Equal(back.CostPricePerUnit))
	assert.True(t, wire.SellingPricePerUnit.Equal(back.SellingPricePerUnit))
	require.NotNil(t, back.SalePrice)
	assert.True(t, wire.SalePrice.Equal(*back.SalePrice))
	require.NotNil(t, back.SaleEnd)
	assert.True(t, wire.SaleEnd.Equal(back.SaleEnd.Time), "sale end was already midnight, so nothing is lost")
	assert.Equal(t, wire.BuyLevel, back.BuyLevel)
	assert.Equal(t, wire.CaseSize, back.CaseSize)
}

func TestProductAbsentOptionals(t *testing.T) {
	wire := sampleWireProduct(t)
	wire.SaleEnd = nil
	wire.SalePrice = nil
	wire.CaseSize = nil
	wire.BuyLevel = nil

	p := ProductFromWire(wire)
	assert.Empty(t, p.SalePrice)
	assert.Empty(t, p.SaleEnd)

	back, err := p.ToWire()
	require.NoError(t, err)
	assert.Nil(t, back.SalePrice)
	assert.Nil(t, back.SaleEnd)
	assert.Nil(t, back.CaseSize)
	assert.Nil(t, back.BuyLevel)
}

func TestProductRejectsMalformedDecimal(t *testing.T) {
	p := ProductFromWire(sampleWireProduct(t))
	p.CostPrice = "$1.50"

	_, err := p.ToWire()
	require.Error(t, err)
	assert.Equal(t, apierror.Parse, apierror.KindOf(err), "currency symbols are not decimal literals")

	p = ProductFromWire(sampleWireProduct(t))
	p.SaleEnd = "June 30"
	_, err = p.ToWire()
	require.Error(t, err)
	assert.Equal(t, apierror.Parse, apierror.KindOf(err))
}

func TestDecimalFormattingPreservesExactness(t *testing.T) {
	// "1.50" and "2.99" must come back digit for digit: no float detour,
	// no rounding.
	p := Product{CostPrice: "1.50", SellingPrice: "2.99"}
	wire, err := p.ToWire()
	require.NoError(t, err)

	assert.Equal(t, "1.50", formatDecimal(wire.CostPricePerUnit))
	assert.Equal(t, "2.99", formatDecimal(wire.SellingPricePerUnit))
}
