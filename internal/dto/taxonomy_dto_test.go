package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocklink/internal/apierror"
	"stocklink/internal/model"
)

func wireSlots(ids ...int64) []*int64 {
	slots := make([]*int64, 0, len(ids))
	for i := range ids {
		id := ids[i]
		slots = append(slots, &id)
	}
	return slots
}

func TestBrandRoundTrip(t *testing.T) {
	wire := model.Brand{ID: 3, Name: "Acme", Products: wireSlots(1, 2, 5)}

	b, err := BrandFromWire(wire)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 5}, b.Products)

	assert.Equal(t, wire, b.ToWire())
}

func TestBrandEmptySlot(t *testing.T) {
	wire := model.Brand{ID: 3, Name: "Acme", Products: []*int64{nil}}

	_, err := BrandFromWire(wire)
	require.Error(t, err)
	assert.Equal(t, apierror.Decode, apierror.KindOf(err))
}

func TestCategoryRoundTrip(t *testing.T) {
	wire := model.Category{ID: 8, Name: "Dairy", Products: wireSlots(4)}

	c, err := CategoryFromWire(wire)
	require.NoError(t, err)
	assert.Equal(t, wire, c.ToWire())
}

func TestSupplierRoundTrip(t *testing.T) {
	phone := "(212) 555-0117"
	email := "orders@acme.example"
	wire := model.Supplier{
		ID:          7,
		Name:        "Acme Corp",
		Products:    wireSlots(1, 9),
		PhoneNumber: &phone,
		Email:       &email,
	}

	s, err := SupplierFromWire(wire)
	require.NoError(t, err)
	assert.Equal(t, "(212) 555-0117", s.PhoneNumber)
	assert.Equal(t, "orders@acme.example", s.Email)

	assert.Equal(t, wire, s.ToWire())
}

func TestSupplierAbsentContacts(t *testing.T) {
	wire := model.Supplier{ID: 7, Name: "Acme Corp", Products: wireSlots()}

	s, err := SupplierFromWire(wire)
	require.NoError(t, err)
	assert.Empty(t, s.PhoneNumber, "absent flattens to empty string")
	assert.Empty(t, s.Email)

	back := s.ToWire()
	assert.Nil(t, back.PhoneNumber, "empty string means absent on the way back")
	assert.Nil(t, back.Email)
}
