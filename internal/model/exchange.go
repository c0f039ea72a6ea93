package model

import "github.com/shopspring/decimal"

// ExchangeRate is one row of the KRW-quoted rate table.
type ExchangeRate struct {
	Code   string // ISO currency code
	Name   string
	Rate   decimal.Decimal // KRW per one unit of Code
	Change decimal.Decimal // daily change, KRW
}

// ExchangeRecord is one past exchange order.
type ExchangeRecord struct {
	ID     string
	From   string
	To     string
	Amount decimal.Decimal // in From currency
	Rate   decimal.Decimal
	Date   string
	Status string
}

// AlertCondition says which side of the target rate triggers an alert.
type AlertCondition string

const (
	AlertAbove AlertCondition = "above"
	AlertBelow AlertCondition = "below"
)

// RateAlert is a user-defined rate watch.
type RateAlert struct {
	ID          string
	Currency    string
	TargetRate  decimal.Decimal
	CurrentRate decimal.Decimal // rate at creation time
	Condition   AlertCondition
	Active      bool
	CreatedDate string
}
