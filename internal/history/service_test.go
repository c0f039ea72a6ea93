package history_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JunhyunKang/mock-sol/internal/history"
	"github.com/JunhyunKang/mock-sol/internal/model"
	"github.com/JunhyunKang/mock-sol/internal/router"
)

// fixedNow keeps the built-in 2024 records inside the default window.
func fixedNow() time.Time {
	return time.Date(2024, 8, 15, 10, 0, 0, 0, time.UTC)
}

func newService() *history.Service {
	return history.NewService(history.DefaultTransactions(), fixedNow)
}

func TestService_DefaultsVisible(t *testing.T) {
	svc := newService()
	assert.Len(t, svc.Transactions(), 10)
	assert.False(t, svc.SearchApplied())
}

func TestService_JulyWithdrawals(t *testing.T) {
	svc := newService()
	svc.SetDateRange("2024-07-01", "2024-07-31")
	svc.SetType(model.TypeWithdrawal)

	got := svc.Transactions()
	require.Len(t, got, 5)
	// Latest first.
	assert.Equal(t, []string{"3", "5", "6", "8", "10"}, ids(got))
	for _, tx := range got {
		assert.Equal(t, model.DirectionWithdrawal, tx.Direction)
	}
}

func TestService_Stats(t *testing.T) {
	svc := newService()
	svc.SetDateRange("2024-07-01", "2024-07-31")

	stats := svc.Stats()
	assert.True(t, stats.Deposits.Equal(decimal.NewFromInt(800000)), "deposits: %s", stats.Deposits)
	assert.True(t, stats.Withdrawals.Equal(decimal.NewFromInt(275000)), "withdrawals: %s", stats.Withdrawals)
	assert.True(t, stats.Net.Equal(decimal.NewFromInt(525000)), "net: %s", stats.Net)
}

func TestService_ApplySearchSubstitutesBaseSet(t *testing.T) {
	svc := newService()
	replacement := []model.Transaction{
		tx("s1", "2024-08-05", "11:00", model.DirectionWithdrawal, 15000),
	}
	svc.ApplySearch(router.HistorySearch{
		Merchant:     "스타벅스",
		Transactions: replacement,
	})

	got := svc.Transactions()
	require.Len(t, got, 1)
	assert.Equal(t, "s1", got[0].ID)
	assert.True(t, svc.SearchApplied())
	assert.Contains(t, svc.Summary(), "가맹점: 스타벅스")
}

func TestService_ApplySearchTypeOnly(t *testing.T) {
	svc := newService()
	svc.ApplySearch(router.HistorySearch{
		Recipient: "홍길동",
		Type:      model.TypeWithdrawal,
	})

	// No replacement set: the default records stay, narrowed by direction.
	got := svc.Transactions()
	require.NotEmpty(t, got)
	for _, tx := range got {
		assert.Equal(t, model.DirectionWithdrawal, tx.Direction)
	}
	assert.Contains(t, svc.Summary(), "받는분: 홍길동")
	assert.Contains(t, svc.Summary(), "출금만")
}

func TestService_RecipientDoesNotConstrainRecords(t *testing.T) {
	svc := newService()
	before := len(svc.Transactions())

	svc.ApplySearch(router.HistorySearch{Recipient: "홍길동"})
	assert.Len(t, svc.Transactions(), before, "recipient is display metadata only")
}

func TestService_Reset(t *testing.T) {
	svc := newService()
	svc.SetDateRange("2024-07-01", "2024-07-31")
	svc.SetType(model.TypeDeposit)
	svc.SetSortOrder(model.SortOldest)
	svc.ApplySearch(router.HistorySearch{
		Merchant:     "스타벅스",
		Transactions: []model.Transaction{tx("s1", "2024-08-05", "11:00", model.DirectionWithdrawal, 15000)},
	})

	svc.Reset()

	f := svc.Filter()
	assert.Equal(t, "2023-08-15", f.StartDate)
	assert.Equal(t, "2024-08-15", f.EndDate)
	assert.Equal(t, model.SortLatest, f.SortOrder)
	assert.Equal(t, model.TypeAll, f.Type)
	assert.False(t, svc.SearchApplied())
	assert.Empty(t, svc.Summary())
	assert.Len(t, svc.Transactions(), 10)
}

func TestService_SummaryEmptyByDefault(t *testing.T) {
	assert.Empty(t, newService().Summary())
}
