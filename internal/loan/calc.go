// Package loan covers the loan screens: active contracts, the repayment
// calculators, and the document archive.
package loan

import (
	"errors"

	"github.com/shopspring/decimal"
)

// RepaymentType selects the amortization scheme.
type RepaymentType string

const (
	RepayEqualPayment   RepaymentType = "equal"     // level total payment
	RepayEqualPrincipal RepaymentType = "principal" // level principal
)

// CalcInput are the calculator form fields.
type CalcInput struct {
	Principal  decimal.Decimal
	AnnualRate decimal.Decimal // percent, e.g. 3.2
	Years      int
}

var (
	errPrincipal = errors.New("principal must be positive")
	errRate      = errors.New("interest rate must not be negative")
	errYears     = errors.New("loan period must be positive")
)

func (in CalcInput) validate() error {
	if !in.Principal.IsPositive() {
		return errPrincipal
	}
	if in.AnnualRate.IsNegative() {
		return errRate
	}
	if in.Years <= 0 {
		return errYears
	}
	return nil
}

// monthlyRate converts the annual percent rate to a monthly fraction.
func (in CalcInput) monthlyRate() decimal.Decimal {
	return in.AnnualRate.Div(decimal.NewFromInt(100)).Div(decimal.NewFromInt(12))
}

// EqualPaymentResult summarizes a level-payment (annuity) schedule.
type EqualPaymentResult struct {
	MonthlyPayment decimal.Decimal
	TotalPayment   decimal.Decimal
	TotalInterest  decimal.Decimal
}

// EqualPayment computes the annuity schedule:
// payment = P * r(1+r)^n / ((1+r)^n - 1).
func EqualPayment(in CalcInput) (EqualPaymentResult, error) {
	if err := in.validate(); err != nil {
		return EqualPaymentResult{}, err
	}

	months := int64(in.Years * 12)
	n := decimal.NewFromInt(months)
	r := in.monthlyRate()

	if r.IsZero() {
		return EqualPaymentResult{
			MonthlyPayment: in.Principal.Div(n),
			TotalPayment:   in.Principal,
			TotalInterest:  decimal.Zero,
		}, nil
	}

	growth := decimal.NewFromInt(1).Add(r).Pow(n)
	payment := in.Principal.Mul(r.Mul(growth)).Div(growth.Sub(decimal.NewFromInt(1)))
	total := payment.Mul(n)

	return EqualPaymentResult{
		MonthlyPayment: payment,
		TotalPayment:   total,
		TotalInterest:  total.Sub(in.Principal),
	}, nil
}

// EqualPrincipalResult summarizes a level-principal schedule, where the
// payment shrinks every month.
type EqualPrincipalResult struct {
	MonthlyPrincipal decimal.Decimal
	FirstPayment     decimal.Decimal
	LastPayment      decimal.Decimal
	TotalPayment     decimal.Decimal
	TotalInterest    decimal.Decimal
}

// EqualPrincipal computes the level-principal schedule.
func EqualPrincipal(in CalcInput) (EqualPrincipalResult, error) {
	if err := in.validate(); err != nil {
		return EqualPrincipalResult{}, err
	}

	months := int64(in.Years * 12)
	n := decimal.NewFromInt(months)
	r := in.monthlyRate()
	two := decimal.NewFromInt(2)

	monthlyPrincipal := in.Principal.Div(n)
	first := monthlyPrincipal.Add(in.Principal.Mul(r))
	last := monthlyPrincipal.Add(monthlyPrincipal.Mul(r))
	// Interest decreases linearly, so the total is the average of the
	// first and last interest charges times the number of months.
	totalInterest := monthlyPrincipal.Mul(r).Mul(n.Add(decimal.NewFromInt(1))).Div(two).Mul(n)

	return EqualPrincipalResult{
		MonthlyPrincipal: monthlyPrincipal,
		FirstPayment:     first,
		LastPayment:      last,
		TotalPayment:     in.Principal.Add(totalInterest),
		TotalInterest:    totalInterest,
	}, nil
}
