package exchange_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JunhyunKang/mock-sol/internal/exchange"
)

func TestRate_Lookup(t *testing.T) {
	rates := exchange.DefaultRates()

	usd, ok := exchange.Rate(rates, "USD")
	require.True(t, ok)
	assert.True(t, usd.Rate.Equal(decimal.RequireFromString("1350.5")))

	_, ok = exchange.Rate(rates, "CHF")
	assert.False(t, ok)
}

func TestCrossRate_Identity(t *testing.T) {
	rates := exchange.DefaultRates()
	rate, err := exchange.CrossRate(rates, "USD", "USD")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(1)))
}

func TestCrossRate_ForeignToKRW(t *testing.T) {
	rates := exchange.DefaultRates()
	rate, err := exchange.CrossRate(rates, "USD", "KRW")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("1350.5")))
}

func TestCrossRate_KRWToForeign(t *testing.T) {
	rates := exchange.DefaultRates()
	rate, err := exchange.CrossRate(rates, "KRW", "USD")
	require.NoError(t, err)

	// 1 / 1350.5, rounded for comparison.
	want := decimal.NewFromInt(1).Div(decimal.RequireFromString("1350.5"))
	assert.True(t, rate.Sub(want).Abs().LessThan(decimal.RequireFromString("0.0000001")))
}

func TestCrossRate_ForeignToForeign(t *testing.T) {
	rates := exchange.DefaultRates()
	rate, err := exchange.CrossRate(rates, "USD", "JPY")
	require.NoError(t, err)

	// 1350.5 / 9.15 ≈ 147.6
	want := decimal.RequireFromString("1350.5").Div(decimal.RequireFromString("9.15"))
	assert.True(t, rate.Sub(want).Abs().LessThan(decimal.RequireFromString("0.0000001")))
}

func TestCrossRate_UnknownCurrency(t *testing.T) {
	rates := exchange.DefaultRates()

	_, err := exchange.CrossRate(rates, "XXX", "KRW")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "XXX")

	_, err = exchange.CrossRate(rates, "USD", "XXX")
	require.Error(t, err)
}

func TestConvert(t *testing.T) {
	rates := exchange.DefaultRates()

	got, err := exchange.Convert(rates, "USD", "KRW", decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("135050")), "got %s", got)
}
