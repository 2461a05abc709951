package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPaymentOptionsDefaultPartPayment(t *testing.T) {
	c := &Cab{}

	options := c.PaymentOptions(decimal.NewFromInt(4130), decimal.NewFromInt(10))
	require.Len(t, options, 2)

	require.Equal(t, PayNow, options[0].OptionType)
	require.True(t, options[0].Amount.Equal(decimal.NewFromInt(4130)))

	require.Equal(t, PayLater, options[1].OptionType)
	require.True(t, options[1].Amount.Equal(decimal.NewFromInt(413)))
}

func TestPaymentOptionsPartPaymentRounding(t *testing.T) {
	c := &Cab{}

	gross, _ := decimal.NewFromString("999.99")
	options := c.PaymentOptions(gross, decimal.NewFromInt(10))

	want, _ := decimal.NewFromString("100.00")
	require.True(t, options[1].Amount.Equal(want), "expected %s, got %s", want, options[1].Amount)
}

func TestPaymentOptionsExplicitPayLater(t *testing.T) {
	c := &Cab{
		PricingOptions: []CabPricingOption{
			{OptionType: PayNow, Amount: decimal.NewFromInt(4130)},
			{OptionType: PayLater, Amount: decimal.NewFromInt(500)},
		},
	}

	options := c.PaymentOptions(decimal.NewFromInt(4130), decimal.NewFromInt(10))
	require.True(t, options[1].Amount.Equal(decimal.NewFromInt(500)))
}
