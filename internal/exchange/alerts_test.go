package exchange_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JunhyunKang/mock-sol/internal/exchange"
	"github.com/JunhyunKang/mock-sol/internal/model"
)

func newBook() *exchange.AlertBook {
	now := func() time.Time {
		return time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	}
	return exchange.NewAlertBook(exchange.DefaultRates(), now)
}

func TestAlertBook_SeededDemoAlerts(t *testing.T) {
	book := newBook()
	assert.Len(t, book.All(), 2)
}

func TestAlertBook_Add(t *testing.T) {
	book := newBook()

	alert, err := book.Add("JPY", decimal.RequireFromString("9.5"), model.AlertAbove)
	require.NoError(t, err)
	assert.NotEmpty(t, alert.ID)
	assert.True(t, alert.Active)
	assert.Equal(t, "2025-02-01", alert.CreatedDate)
	assert.True(t, alert.CurrentRate.Equal(decimal.RequireFromString("9.15")))
	assert.Len(t, book.All(), 3)
}

func TestAlertBook_AddValidation(t *testing.T) {
	book := newBook()

	_, err := book.Add("XXX", decimal.NewFromInt(100), model.AlertAbove)
	assert.Error(t, err, "unknown currency")

	_, err = book.Add("KRW", decimal.NewFromInt(1), model.AlertAbove)
	assert.Error(t, err, "base currency cannot be watched")

	_, err = book.Add("USD", decimal.Zero, model.AlertAbove)
	assert.Error(t, err, "target must be positive")

	_, err = book.Add("USD", decimal.NewFromInt(1300), model.AlertCondition("sideways"))
	assert.Error(t, err, "condition outside the closed set")
}

func TestAlertBook_Toggle(t *testing.T) {
	book := newBook()
	first := book.All()[0]
	require.True(t, first.Active)

	book.Toggle(first.ID)
	assert.False(t, book.All()[0].Active)

	book.Toggle(first.ID)
	assert.True(t, book.All()[0].Active)

	book.Toggle("no-such-id")
	assert.Len(t, book.All(), 2)
}

func TestAlertBook_Delete(t *testing.T) {
	book := newBook()
	first := book.All()[0]

	book.Delete(first.ID)
	require.Len(t, book.All(), 1)
	assert.NotEqual(t, first.ID, book.All()[0].ID)

	book.Delete("no-such-id")
	assert.Len(t, book.All(), 1)
}

func TestAlertBook_Triggered(t *testing.T) {
	book := newBook()

	// USD table rate is 1350.5.
	below, err := book.Add("USD", decimal.NewFromInt(1400), model.AlertBelow)
	require.NoError(t, err)
	assert.True(t, book.Triggered(below))

	above, err := book.Add("USD", decimal.NewFromInt(1400), model.AlertAbove)
	require.NoError(t, err)
	assert.False(t, book.Triggered(above))

	reached, err := book.Add("USD", decimal.RequireFromString("1350.5"), model.AlertAbove)
	require.NoError(t, err)
	assert.True(t, book.Triggered(reached), "equality satisfies the condition")
}

func TestAlertBook_InactiveNeverTriggers(t *testing.T) {
	book := newBook()

	alert, err := book.Add("USD", decimal.NewFromInt(1400), model.AlertBelow)
	require.NoError(t, err)
	require.True(t, book.Triggered(alert))

	book.Toggle(alert.ID)
	alert.Active = false
	assert.False(t, book.Triggered(alert))
}
