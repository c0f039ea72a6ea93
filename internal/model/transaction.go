package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction classifies a transaction as money in or money out.
type Direction string

const (
	DirectionDeposit    Direction = "deposit"
	DirectionWithdrawal Direction = "withdrawal"
)

// SortOrder controls how transaction history is ordered.
type SortOrder string

const (
	SortLatest SortOrder = "latest"
	SortOldest SortOrder = "oldest"
)

// TypeFilter restricts transaction history to one direction.
type TypeFilter string

const (
	TypeAll        TypeFilter = "all"
	TypeDeposit    TypeFilter = "deposit"
	TypeWithdrawal TypeFilter = "withdrawal"
)

// Transaction is one row of account history. Records are immutable once
// created; the working set is only ever replaced wholesale.
type Transaction struct {
	ID            string
	Direction     Direction
	Amount        decimal.Decimal // whole KRW, always positive
	Balance       decimal.Decimal // balance snapshot after the transaction
	Description   string
	Bank          string // counterparty bank, transfers only
	AccountNumber string // counterparty account, transfers only
	Date          string // "2006-01-02"
	Time          string // "15:04"
}

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// Day parses the transaction date. ok is false for malformed dates, which
// are excluded from any date-bounded view.
func (t Transaction) Day() (time.Time, bool) {
	d, err := time.Parse(dateLayout, t.Date)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// When parses the combined date+time used for ordering. A missing or
// malformed time falls back to midnight of the transaction date.
func (t Transaction) When() (time.Time, bool) {
	if ts, err := time.Parse(dateTimeLayout, t.Date+" "+t.Time); err == nil {
		return ts, true
	}
	return t.Day()
}
