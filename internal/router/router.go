// Package router holds the single active screen of the application plus the
// payload handed to it at navigation time. There is no history stack: back
// always returns to the home screen.
package router

import (
	"github.com/shopspring/decimal"

	"github.com/JunhyunKang/mock-sol/internal/model"
)

// Screen identifies one full-page view. The set is closed.
type Screen string

const (
	ScreenHome               Screen = "home"
	ScreenTransfer           Screen = "transfer"
	ScreenHistory            Screen = "history"
	ScreenExchange           Screen = "exchange"
	ScreenExchangeCalculator Screen = "exchangeCalculator"
	ScreenExchangeAlerts     Screen = "exchangeAlerts"
	ScreenLoan               Screen = "loan"
	ScreenLoanCalculator     Screen = "loanCalculator"
	ScreenLoanDocuments      Screen = "loanDocuments"
	ScreenCardApplication    Screen = "cardApplication"
)

// Known reports whether s is a member of the screen set.
func Known(s Screen) bool {
	switch s {
	case ScreenHome, ScreenTransfer, ScreenHistory, ScreenExchange,
		ScreenExchangeCalculator, ScreenExchangeAlerts, ScreenLoan,
		ScreenLoanCalculator, ScreenLoanDocuments, ScreenCardApplication:
		return true
	}
	return false
}

// Payload is data handed to the destination screen at navigation time.
// It is a closed sum: one variant per destination that accepts prefill.
// The router never inspects it; the receiving screen degrades gracefully
// on missing fields.
type Payload interface {
	payload()
}

// TransferPrefill pre-populates the transfer flow. A complete
// {bank, account, recipient} triple lets the flow skip straight to the
// amount step.
type TransferPrefill struct {
	RecipientName      string
	RecipientAccount   string
	RecipientBank      string
	Amount             decimal.Decimal
	Currency           string
	LastTransferDate   string
	LastTransferAmount decimal.Decimal
}

func (TransferPrefill) payload() {}

// HistorySearch applies a server-chosen view to the history screen.
// Merchant and Recipient feed the displayed summary only; Transactions,
// when non-nil, replaces the base record set wholesale.
type HistorySearch struct {
	Merchant     string
	Recipient    string
	Type         model.TypeFilter
	Transactions []model.Transaction
}

func (HistorySearch) payload() {}

// Router is the screen state container. Lifetime equals the application
// session; state is never persisted.
type Router struct {
	screen  Screen
	payload Payload
}

// New returns a router positioned on the home screen.
func New() *Router {
	return &Router{screen: ScreenHome}
}

// Navigate replaces the active screen and payload atomically. An unknown
// screen value falls back to home with no payload.
func (r *Router) Navigate(s Screen, p Payload) {
	if !Known(s) {
		r.screen, r.payload = ScreenHome, nil
		return
	}
	r.screen, r.payload = s, p
}

// Back returns to the home screen, dropping any payload.
func (r *Router) Back() {
	r.Navigate(ScreenHome, nil)
}

// Current returns the active screen and its payload.
func (r *Router) Current() (Screen, Payload) {
	return r.screen, r.payload
}

// Screen returns just the active screen identifier.
func (r *Router) Screen() Screen {
	return r.screen
}
