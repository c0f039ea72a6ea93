// Package transfer implements the three-step transfer flow state machine:
// recipient, amount, memo/review, then a confirm dialog and a completion
// state that resets after a fixed delay.
package transfer

import (
	"strconv"
	"strings"
	"time"

	"github.com/JunhyunKang/mock-sol/internal/model"
	"github.com/JunhyunKang/mock-sol/internal/router"
)

// Step is the active stage of the flow.
type Step int

const (
	StepRecipient Step = 1
	StepAmount    Step = 2
	StepMemo      Step = 3
)

// ResetDelay is how long the completion screen stays up before the flow
// resets. The screen stays mounted for the duration, so there is no
// cancellation path.
const ResetDelay = 3 * time.Second

// Flow is the transfer screen's state. No money moves; Execute only flips
// local state.
type Flow struct {
	step        Step
	details     model.TransferDetails
	showConfirm bool
	complete    bool
}

// NewFlow starts at the recipient step with empty details.
func NewFlow() *Flow {
	return &Flow{step: StepRecipient}
}

// Step returns the active step.
func (f *Flow) Step() Step {
	return f.step
}

// Details returns the current form state.
func (f *Flow) Details() model.TransferDetails {
	return f.details
}

// ShowingConfirm reports whether the confirm dialog is open.
func (f *Flow) ShowingConfirm() bool {
	return f.showConfirm
}

// Completed reports whether the transfer finished.
func (f *Flow) Completed() bool {
	return f.complete
}

// SetBank sets the recipient bank.
func (f *Flow) SetBank(bank string) {
	f.details.BankName = bank
}

// SetAccountNumber sets the recipient account.
func (f *Flow) SetAccountNumber(account string) {
	f.details.AccountNumber = account
}

// SetRecipientName sets the recipient name.
func (f *Flow) SetRecipientName(name string) {
	f.details.RecipientName = name
}

// SetAmount sets the amount field.
func (f *Flow) SetAmount(amount string) {
	f.details.Amount = amount
}

// SetMemo sets the memo field.
func (f *Flow) SetMemo(memo string) {
	f.details.Memo = memo
}

// CanProceed reports whether the active step's gate is satisfied.
func (f *Flow) CanProceed() bool {
	switch f.step {
	case StepRecipient:
		return f.details.BankName != "" &&
			strings.TrimSpace(f.details.AccountNumber) != "" &&
			strings.TrimSpace(f.details.RecipientName) != ""
	case StepAmount:
		n, err := strconv.ParseInt(f.details.Amount, 10, 64)
		return err == nil && n > 0
	default:
		return true
	}
}

// Next advances past the active step; at the last step it opens the
// confirm dialog instead. It does nothing when the step gate fails.
func (f *Flow) Next() {
	if !f.CanProceed() {
		return
	}
	if f.step < StepMemo {
		f.step++
		return
	}
	f.showConfirm = true
}

// Previous steps back without touching entered data.
func (f *Flow) Previous() {
	if f.step > StepRecipient {
		f.step--
	}
}

// CancelConfirm closes the confirm dialog.
func (f *Flow) CancelConfirm() {
	f.showConfirm = false
}

// Execute completes the simulated transfer. The caller schedules Reset
// after ResetDelay.
func (f *Flow) Execute() {
	f.showConfirm = false
	f.complete = true
}

// Reset returns the flow to its initial state.
func (f *Flow) Reset() {
	*f = Flow{step: StepRecipient}
}

// Prefill merges non-empty prefill fields into the form. A complete
// {bank, account, recipient} triple, or a prefilled amount, skips the
// recipient step and starts the flow at the amount step.
func (f *Flow) Prefill(p router.TransferPrefill) {
	if p.RecipientBank != "" {
		f.details.BankName = p.RecipientBank
	}
	if p.RecipientAccount != "" {
		f.details.AccountNumber = p.RecipientAccount
	}
	if p.RecipientName != "" {
		f.details.RecipientName = p.RecipientName
	}
	if p.Amount.IsPositive() {
		f.details.Amount = p.Amount.String()
	}

	tripleComplete := f.details.BankName != "" &&
		f.details.AccountNumber != "" &&
		f.details.RecipientName != ""
	if tripleComplete || p.Amount.IsPositive() {
		f.step = StepAmount
	}
}
