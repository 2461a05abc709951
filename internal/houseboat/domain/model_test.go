package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newSpec(bedrooms int, adultPrice, childPrice int64) *HouseBoatSpecification {
	return &HouseBoatSpecification{
		Bedrooms:             bedrooms,
		ExtraGuestPriceAdult: decimal.NewFromInt(adultPrice),
		ExtraGuestPriceChild: decimal.NewFromInt(childPrice),
	}
}

func TestCapacityTwoPerBedroom(t *testing.T) {
	require.Equal(t, 4, newSpec(2, 0, 0).Capacity())
	require.Equal(t, 6, newSpec(3, 0, 0).Capacity())
}

func TestExtraGuestChargeWithinCapacity(t *testing.T) {
	spec := newSpec(2, 500, 300)

	require.True(t, spec.ExtraGuestCharge(4, 0).IsZero())
	require.True(t, spec.ExtraGuestCharge(2, 2).IsZero())
}

func TestExtraGuestChargeExtraAdult(t *testing.T) {
	spec := newSpec(2, 500, 300)

	// 5 adults, capacity 4: one extra adult.
	require.True(t, spec.ExtraGuestCharge(5, 0).Equal(decimal.NewFromInt(500)))
}

func TestExtraGuestChargeAdultsFillCapacityFirst(t *testing.T) {
	spec := newSpec(2, 500, 300)

	// 3 adults take 3 slots; 2 children share the last slot, one is extra.
	require.True(t, spec.ExtraGuestCharge(3, 2).Equal(decimal.NewFromInt(300)))

	// 5 adults, 1 child: one extra adult plus the child.
	require.True(t, spec.ExtraGuestCharge(5, 1).Equal(decimal.NewFromInt(800)))
}

func TestExtraGuestChargeNilSpec(t *testing.T) {
	var spec *HouseBoatSpecification

	require.Equal(t, 0, spec.Capacity())
	require.True(t, spec.ExtraGuestCharge(6, 2).IsZero())
}
