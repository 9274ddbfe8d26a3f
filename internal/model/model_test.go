package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampRoundTrip(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 3, 14, 9, 30, 15, 0, time.UTC))

	raw, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-14T09:30:15"`, string(raw))

	var back Timestamp
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, ts.Equal(back.Time))
}

func TestTimestampRejectsGarbage(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"03/14/2024"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`12345`), &ts))
}

func TestProductNameTupleDecoding(t *testing.T) {
	raw := `[["Widget","012345678905",1],["Gadget","8901",2]]`

	var names []ProductName
	require.NoError(t, json.Unmarshal([]byte(raw), &names))
	require.Len(t, names, 2)
	assert.Equal(t, ProductName{Name: "Widget", UPC: "012345678905", ID: 1}, names[0])
	assert.Equal(t, ProductName{Name: "Gadget", UPC: "8901", ID: 2}, names[1])
}

func TestProductNameTupleArity(t *testing.T) {
	var name ProductName
	assert.Error(t, json.Unmarshal([]byte(`["Widget",1]`), &name), "products carry three elements")
	assert.Error(t, json.Unmarshal([]byte(`{"name":"Widget"}`), &name))
}

func TestNameIDTupleDecoding(t *testing.T) {
	var brands []BrandName
	require.NoError(t, json.Unmarshal([]byte(`[["Acme",3],["Globex",9]]`), &brands))
	assert.Equal(t, []BrandName{{Name: "Acme", ID: 3}, {Name: "Globex", ID: 9}}, brands)

	var categories []CategoryName
	require.NoError(t, json.Unmarshal([]byte(`[["Dairy",1]]`), &categories))
	assert.Equal(t, []CategoryName{{Name: "Dairy", ID: 1}}, categories)

	var suppliers []SupplierName
	require.NoError(t, json.Unmarshal([]byte(`[["Acme Corp",7]]`), &suppliers))
	assert.Equal(t, []SupplierName{{Name: "Acme Corp", ID: 7}}, suppliers)
}

func TestNameProjectionsMarshalAsObjects(t *testing.T) {
	// The tuple form exists only on the wire; locally these serialize as
	// plain objects for the presentation layer.
	raw, err := json.Marshal(BrandName{Name: "Acme", ID: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Acme","id":3}`, string(raw))
}

func TestOptionalRelationSlots(t *testing.T) {
	var brand Brand
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"Acme","products":[4,null,6]}`), &brand))
	require.Len(t, brand.Products, 3)
	assert.Equal(t, int64(4), *brand.Products[0])
	assert.Nil(t, brand.Products[1])
	assert.Equal(t, int64(6), *brand.Products[2])
}
