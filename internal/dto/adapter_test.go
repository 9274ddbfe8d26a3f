package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocklink/internal/apierror"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(dateLayout, s)
	require.NoError(t, err)
	return d
}

func TestUnwrapIDs(t *testing.T) {
	a, b := int64(1), int64(2)

	ids, err := unwrapIDs("adapter.Brand", []*int64{&a, &b})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)

	_, err = unwrapIDs("adapter.Brand", []*int64{&a, nil})
	require.Error(t, err)
	assert.Equal(t, apierror.Decode, apierror.KindOf(err), "an empty slot is a schema violation, not a crash")
}

func TestWrapIDsAliasing(t *testing.T) {
	slots := wrapIDs([]int64{1, 2, 3})
	require.Len(t, slots, 3)
	// Each slot must point at its own value, not the loop variable.
	assert.Equal(t, int64(1), *slots[0])
	assert.Equal(t, int64(2), *slots[1])
	assert.Equal(t, int64(3), *slots[2])
}

func TestParseDateMidnight(t *testing.T) {
	d, err := parseDate("adapter.ReceivedOrder", "received", "03/14/2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), d)
}
