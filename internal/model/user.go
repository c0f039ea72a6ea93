package model

import "github.com/shopspring/decimal"

// UserInfo is the account holder summary shown on the home screen.
type UserInfo struct {
	Name          string
	AccountNumber string
	BankName      string
	Balance       decimal.Decimal
}
