package history

import (
	"github.com/shopspring/decimal"

	"github.com/JunhyunKang/mock-sol/internal/model"
)

// DefaultTransactions returns the built-in ten-record working set. The
// prototype has no transaction backend; this set stands in for it.
func DefaultTransactions() []model.Transaction {
	return []model.Transaction{
		{
			ID:            "1",
			Direction:     model.DirectionWithdrawal,
			Amount:        decimal.NewFromInt(50000),
			Balance:       decimal.NewFromInt(1450000),
			Description:   "홍길동",
			Bank:          "카카오뱅크",
			AccountNumber: "3333-01-1234567",
			Date:          "2024-08-03",
			Time:          "14:30",
		},
		{
			ID:          "2",
			Direction:   model.DirectionDeposit,
			Amount:      decimal.NewFromInt(300000),
			Balance:     decimal.NewFromInt(1500000),
			Description: "월급",
			Date:        "2024-08-01",
			Time:        "09:00",
		},
		{
			ID:            "3",
			Direction:     model.DirectionWithdrawal,
			Amount:        decimal.NewFromInt(25000),
			Balance:       decimal.NewFromInt(1200000),
			Description:   "김철수",
			Bank:          "신한은행",
			AccountNumber: "110-123-456789",
			Date:          "2024-07-30",
			Time:          "16:45",
		},
		{
			ID:          "4",
			Direction:   model.DirectionDeposit,
			Amount:      decimal.NewFromInt(100000),
			Balance:     decimal.NewFromInt(1225000),
			Description: "용돈",
			Date:        "2024-07-28",
			Time:        "12:00",
		},
		{
			ID:          "5",
			Direction:   model.DirectionWithdrawal,
			Amount:      decimal.NewFromInt(15000),
			Balance:     decimal.NewFromInt(1125000),
			Description: "스타벅스",
			Date:        "2024-07-25",
			Time:        "10:30",
		},
		{
			ID:            "6",
			Direction:     model.DirectionWithdrawal,
			Amount:        decimal.NewFromInt(80000),
			Balance:       decimal.NewFromInt(1140000),
			Description:   "이영희",
			Bank:          "우리은행",
			AccountNumber: "1002-123-456789",
			Date:          "2024-07-23",
			Time:          "19:20",
		},
		{
			ID:          "7",
			Direction:   model.DirectionDeposit,
			Amount:      decimal.NewFromInt(200000),
			Balance:     decimal.NewFromInt(1220000),
			Description: "부모님용돈",
			Date:        "2024-07-20",
			Time:        "08:15",
		},
		{
			ID:          "8",
			Direction:   model.DirectionWithdrawal,
			Amount:      decimal.NewFromInt(35000),
			Balance:     decimal.NewFromInt(1020000),
			Description: "마트결제",
			Date:        "2024-07-18",
			Time:        "17:50",
		},
		{
			ID:          "9",
			Direction:   model.DirectionDeposit,
			Amount:      decimal.NewFromInt(500000),
			Balance:     decimal.NewFromInt(1055000),
			Description: "보너스",
			Date:        "2024-07-15",
			Time:        "11:30",
		},
		{
			ID:            "10",
			Direction:     model.DirectionWithdrawal,
			Amount:        decimal.NewFromInt(120000),
			Balance:       decimal.NewFromInt(555000),
			Description:   "박민수",
			Bank:          "하나은행",
			AccountNumber: "123-456789-001",
			Date:          "2024-07-10",
			Time:          "13:45",
		},
	}
}

// RecentTransactions returns the three compiled-in rows shown on the home
// screen.
func RecentTransactions() []model.Transaction {
	return []model.Transaction{
		{
			ID:          "1",
			Direction:   model.DirectionWithdrawal,
			Amount:      decimal.NewFromInt(50000),
			Description: "홍길동",
			Date:        "2025-08-03",
		},
		{
			ID:          "2",
			Direction:   model.DirectionDeposit,
			Amount:      decimal.NewFromInt(300000),
			Description: "월급",
			Date:        "2025-08-01",
		},
		{
			ID:          "3",
			Direction:   model.DirectionWithdrawal,
			Amount:      decimal.NewFromInt(25000),
			Description: "김철수",
			Date:        "2025-07-30",
		},
	}
}
