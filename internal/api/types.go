package api

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/JunhyunKang/mock-sol/internal/model"
)

// ActionType tags a search response with the branch the client should take.
type ActionType string

const (
	ActionTransfer ActionType = "transfer"
	ActionSearch   ActionType = "search"
	ActionMenu     ActionType = "menu"
	ActionUnknown  ActionType = "unknown"
)

// SearchRequest is the body of POST /api/search.
type SearchRequest struct {
	Query  string `json:"query"`
	UserID string `json:"user_id,omitempty"`
}

// SearchResponse is the tagged routing decision returned by the backend.
// ScreenData is kept raw here; the dispatcher decodes it per tag so that
// each branch only sees the fields meaningful to it.
type SearchResponse struct {
	Success     bool            `json:"success"`
	ActionType  ActionType      `json:"action_type"`
	RedirectURL string          `json:"redirect_url"`
	ScreenData  json.RawMessage `json:"screen_data"`
	Confidence  float64         `json:"confidence,omitempty"`
	Message     string          `json:"message,omitempty"`
	Suggestions []string        `json:"suggestions,omitempty"`
}

// TransferScreenData is screen_data under action_type "transfer".
type TransferScreenData struct {
	RecipientName      string          `json:"recipient_name"`
	RecipientAccount   string          `json:"recipient_account"`
	RecipientBank      string          `json:"recipient_bank"`
	Amount             decimal.Decimal `json:"amount"`
	Currency           string          `json:"currency"`
	LastTransferDate   string          `json:"last_transfer_date"`
	LastTransferAmount decimal.Decimal `json:"last_transfer_amount"`
}

// SearchScreenData is screen_data under action_type "search". A non-empty
// Transactions list replaces the client's base record set.
type SearchScreenData struct {
	Merchant     string              `json:"merchant"`
	Recipient    string              `json:"recipient"`
	Type         string              `json:"type"`
	Transactions []TransactionRecord `json:"transactions"`
	TotalCount   int                 `json:"total_count"`
}

// TransactionRecord is a transaction as it appears on the wire.
type TransactionRecord struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Balance       decimal.Decimal `json:"balance"`
	Description   string          `json:"description"`
	Bank          string          `json:"bank,omitempty"`
	AccountNumber string          `json:"account_number,omitempty"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
}

// Domain converts a wire record to the domain type.
func (r TransactionRecord) Domain() model.Transaction {
	return model.Transaction{
		ID:            r.ID,
		Direction:     model.Direction(r.Type),
		Amount:        r.Amount,
		Balance:       r.Balance,
		Description:   r.Description,
		Bank:          r.Bank,
		AccountNumber: r.AccountNumber,
		Date:          r.Date,
		Time:          r.Time,
	}
}

type userInfoResponse struct {
	Name          string          `json:"name"`
	AccountNumber string          `json:"account_number"`
	BankName      string          `json:"bank_name"`
	Balance       decimal.Decimal `json:"balance"`
}
