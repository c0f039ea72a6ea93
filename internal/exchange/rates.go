// Package exchange covers the currency screens: the rate table, the
// conversion calculator, and rate alerts. Rates are compiled-in mock
// values quoted in KRW.
package exchange

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/JunhyunKang/mock-sol/internal/model"
)

const baseCurrency = "KRW"

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DefaultRates returns the compiled-in rate table.
func DefaultRates() []model.ExchangeRate {
	return []model.ExchangeRate{
		{Code: "USD", Name: "미국 달러", Rate: dec("1350.5"), Change: dec("2.3")},
		{Code: "EUR", Name: "유로", Rate: dec("1480.2"), Change: dec("-1.5")},
		{Code: "JPY", Name: "일본 엔", Rate: dec("9.15"), Change: dec("0.25")},
		{Code: "GBP", Name: "영국 파운드", Rate: dec("1720.8"), Change: dec("-3.2")},
		{Code: "CNY", Name: "중국 위안", Rate: dec("185.4"), Change: dec("1.8")},
		{Code: "KRW", Name: "한국 원", Rate: dec("1"), Change: dec("0")},
	}
}

// DefaultHistory returns the mock past exchange orders.
func DefaultHistory() []model.ExchangeRecord {
	return []model.ExchangeRecord{
		{ID: "1", From: "KRW", To: "USD", Amount: dec("1000000"), Rate: dec("1350.5"), Date: "2024-01-15", Status: "completed"},
		{ID: "2", From: "USD", To: "KRW", Amount: dec("500"), Rate: dec("1352.3"), Date: "2024-01-10", Status: "completed"},
		{ID: "3", From: "KRW", To: "EUR", Amount: dec("500000"), Rate: dec("1480.2"), Date: "2024-01-05", Status: "completed"},
	}
}

// Rate looks up a currency in the table.
func Rate(rates []model.ExchangeRate, code string) (model.ExchangeRate, bool) {
	for _, r := range rates {
		if r.Code == code {
			return r, true
		}
	}
	return model.ExchangeRate{}, false
}

// Convert exchanges amount from one currency to another. Foreign-to-
// foreign goes through KRW.
func Convert(rates []model.ExchangeRate, from, to string, amount decimal.Decimal) (decimal.Decimal, error) {
	rate, err := CrossRate(rates, from, to)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate), nil
}

// CrossRate returns how many units of to one unit of from buys.
func CrossRate(rates []model.ExchangeRate, from, to string) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	fromRate, ok := Rate(rates, from)
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown currency %q", from)
	}
	toRate, ok := Rate(rates, to)
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown currency %q", to)
	}

	switch {
	case from == baseCurrency:
		return decimal.NewFromInt(1).Div(toRate.Rate), nil
	case to == baseCurrency:
		return fromRate.Rate, nil
	default:
		return fromRate.Rate.Div(toRate.Rate), nil
	}
}
