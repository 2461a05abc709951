package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestAmountOffPercentage(t *testing.T) {
	d := &Discount{Type: DiscountTypePercentage, Value: decimal.NewFromInt(20), IsActive: true}

	off := d.AmountOff(decimal.NewFromInt(10000))
	require.True(t, off.Equal(decimal.NewFromInt(2000)), "expected 2000, got %s", off)
}

func TestAmountOffFlat(t *testing.T) {
	d := &Discount{Type: DiscountTypeFlat, Value: decimal.NewFromInt(350), IsActive: true}

	off := d.AmountOff(decimal.NewFromInt(1000))
	require.True(t, off.Equal(decimal.NewFromInt(350)))
}

func TestAmountOffInactive(t *testing.T) {
	d := &Discount{Type: DiscountTypePercentage, Value: decimal.NewFromInt(50), IsActive: false}

	require.True(t, d.AmountOff(decimal.NewFromInt(1000)).IsZero())
	require.True(t, d.DiscountedPrice(decimal.NewFromInt(1000)).Equal(decimal.NewFromInt(1000)))
}

func TestAmountOffNilDiscount(t *testing.T) {
	var d *Discount

	require.True(t, d.AmountOff(decimal.NewFromInt(1000)).IsZero())
	require.True(t, d.DiscountedPrice(decimal.NewFromInt(1000)).Equal(decimal.NewFromInt(1000)))
}

func TestDiscountedPriceFlooredAtZero(t *testing.T) {
	d := &Discount{Type: DiscountTypeFlat, Value: decimal.NewFromInt(5000), IsActive: true}

	got := d.DiscountedPrice(decimal.NewFromInt(1200))
	require.True(t, got.IsZero(), "expected 0, got %s", got)
}

func TestDiscountedPriceUnknownType(t *testing.T) {
	d := &Discount{Type: DiscountType("bogus"), Value: decimal.NewFromInt(50), IsActive: true}

	require.True(t, d.DiscountedPrice(decimal.NewFromInt(900)).Equal(decimal.NewFromInt(900)))
}
