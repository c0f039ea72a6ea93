// Package history holds the working transaction set and derives the
// filtered view the history screen renders.
package history

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JunhyunKang/mock-sol/internal/model"
	"github.com/JunhyunKang/mock-sol/internal/router"
)

// Service owns the base transaction set and the active filter. The base
// set is either the compiled-in default or a set substituted by a search
// dispatch; records themselves are immutable.
type Service struct {
	defaults []model.Transaction
	base     []model.Transaction
	filter   Filter

	searchApplied bool
	merchant      string
	recipient     string

	now func() time.Time
}

// NewService creates a Service over the given default set. A nil now
// function uses the wall clock.
func NewService(defaults []model.Transaction, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		defaults: defaults,
		base:     defaults,
		filter:   DefaultFilter(now()),
		now:      now,
	}
}

// Transactions returns the filtered, sorted view over the base set.
func (s *Service) Transactions() []model.Transaction {
	return Apply(s.base, s.filter)
}

// Filter returns the active filter.
func (s *Service) Filter() Filter {
	return s.filter
}

// SetSortOrder updates the sort facet.
func (s *Service) SetSortOrder(order model.SortOrder) {
	s.filter.SortOrder = order
}

// SetType updates the direction facet.
func (s *Service) SetType(t model.TypeFilter) {
	s.filter.Type = t
}

// SetDateRange updates both date bounds. Out-of-order bounds are kept
// as-is and yield an empty view.
func (s *Service) SetDateRange(start, end string) {
	s.filter.StartDate = start
	s.filter.EndDate = end
}

// ApplySearch installs a search-dispatched view: optional base-set
// substitution plus display metadata. Merchant and recipient never
// constrain the record set; they only feed Summary.
func (s *Service) ApplySearch(p router.HistorySearch) {
	s.searchApplied = true
	s.merchant = p.Merchant
	s.recipient = p.Recipient
	if p.Type != "" {
		s.filter.Type = p.Type
	}
	if p.Transactions != nil {
		s.base = p.Transactions
	}
}

// SearchApplied reports whether the current view came from a search
// dispatch.
func (s *Service) SearchApplied() bool {
	return s.searchApplied
}

// Reset restores the default base set, the default twelve-month window,
// and clears all search metadata.
func (s *Service) Reset() {
	s.base = s.defaults
	s.filter = DefaultFilter(s.now())
	s.searchApplied = false
	s.merchant = ""
	s.recipient = ""
}

// Stats aggregates the filtered view.
type Stats struct {
	Deposits    decimal.Decimal
	Withdrawals decimal.Decimal
	Net         decimal.Decimal
}

// Stats sums the filtered view by direction.
func (s *Service) Stats() Stats {
	deposits := decimal.Zero
	withdrawals := decimal.Zero
	for _, tx := range s.Transactions() {
		switch tx.Direction {
		case model.DirectionDeposit:
			deposits = deposits.Add(tx.Amount)
		case model.DirectionWithdrawal:
			withdrawals = withdrawals.Add(tx.Amount)
		}
	}
	return Stats{
		Deposits:    deposits,
		Withdrawals: withdrawals,
		Net:         deposits.Sub(withdrawals),
	}
}

// Summary renders the non-default facets as a one-line label for display.
// It has no effect on filtering.
func (s *Service) Summary() string {
	var parts []string
	if s.merchant != "" {
		parts = append(parts, "가맹점: "+s.merchant)
	}
	if s.recipient != "" {
		parts = append(parts, "받는분: "+s.recipient)
	}
	switch s.filter.Type {
	case model.TypeDeposit:
		parts = append(parts, "입금만")
	case model.TypeWithdrawal:
		parts = append(parts, "출금만")
	}
	return strings.Join(parts, " · ")
}
