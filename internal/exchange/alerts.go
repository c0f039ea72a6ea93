package exchange

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JunhyunKang/mock-sol/internal/model"
)

// AlertBook holds the user's rate alerts in memory. State is session-
// scoped and lost on exit, like everything else in the prototype.
type AlertBook struct {
	alerts []model.RateAlert
	rates  []model.ExchangeRate
	now    func() time.Time
}

// NewAlertBook creates an AlertBook seeded with the demo alerts. A nil
// now function uses the wall clock.
func NewAlertBook(rates []model.ExchangeRate, now func() time.Time) *AlertBook {
	if now == nil {
		now = time.Now
	}
	return &AlertBook{
		alerts: []model.RateAlert{
			{
				ID:          "1",
				Currency:    "USD",
				TargetRate:  dec("1300"),
				CurrentRate: dec("1350.5"),
				Condition:   model.AlertBelow,
				Active:      true,
				CreatedDate: "2025-01-15",
			},
			{
				ID:          "2",
				Currency:    "EUR",
				TargetRate:  dec("1500"),
				CurrentRate: dec("1480.2"),
				Condition:   model.AlertAbove,
				Active:      false,
				CreatedDate: "2025-01-10",
			},
		},
		rates: rates,
		now:   now,
	}
}

// All returns the alerts in creation order.
func (b *AlertBook) All() []model.RateAlert {
	return b.alerts
}

// Add creates an active alert for the given currency and target rate.
func (b *AlertBook) Add(currency string, target decimal.Decimal, cond model.AlertCondition) (model.RateAlert, error) {
	rate, ok := Rate(b.rates, currency)
	if !ok || currency == baseCurrency {
		return model.RateAlert{}, fmt.Errorf("unknown currency %q", currency)
	}
	if !target.IsPositive() {
		return model.RateAlert{}, fmt.Errorf("target rate must be positive, got %s", target)
	}
	if cond != model.AlertAbove && cond != model.AlertBelow {
		return model.RateAlert{}, fmt.Errorf("invalid alert condition %q", cond)
	}

	alert := model.RateAlert{
		ID:          uuid.NewString(),
		Currency:    currency,
		TargetRate:  target,
		CurrentRate: rate.Rate,
		Condition:   cond,
		Active:      true,
		CreatedDate: b.now().Format("2006-01-02"),
	}
	b.alerts = append(b.alerts, alert)
	return alert, nil
}

// Toggle flips an alert's active flag. Unknown ids are ignored.
func (b *AlertBook) Toggle(id string) {
	for i := range b.alerts {
		if b.alerts[i].ID == id {
			b.alerts[i].Active = !b.alerts[i].Active
			return
		}
	}
}

// Delete removes an alert. Unknown ids are ignored.
func (b *AlertBook) Delete(id string) {
	for i := range b.alerts {
		if b.alerts[i].ID == id {
			b.alerts = append(b.alerts[:i], b.alerts[i+1:]...)
			return
		}
	}
}

// Triggered reports whether the current table rate satisfies the alert's
// condition. Inactive alerts never trigger.
func (b *AlertBook) Triggered(a model.RateAlert) bool {
	if !a.Active {
		return false
	}
	rate, ok := Rate(b.rates, a.Currency)
	if !ok {
		return false
	}
	if a.Condition == model.AlertAbove {
		return rate.Rate.GreaterThanOrEqual(a.TargetRate)
	}
	return rate.Rate.LessThanOrEqual(a.TargetRate)
}
