package transfer_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JunhyunKang/mock-sol/internal/router"
	"github.com/JunhyunKang/mock-sol/internal/transfer"
)

func fillRecipient(f *transfer.Flow) {
	f.SetBank("카카오뱅크")
	f.SetAccountNumber("3333-01-1234567")
	f.SetRecipientName("홍길동")
}

func TestFlow_RecipientGate(t *testing.T) {
	f := transfer.NewFlow()
	assert.Equal(t, transfer.StepRecipient, f.Step())
	assert.False(t, f.CanProceed())

	f.SetBank("카카오뱅크")
	assert.False(t, f.CanProceed())

	f.SetAccountNumber("3333-01-1234567")
	assert.False(t, f.CanProceed())

	f.SetRecipientName("홍길동")
	assert.True(t, f.CanProceed())

	// Whitespace does not satisfy the gate.
	f.SetRecipientName("   ")
	assert.False(t, f.CanProceed())
}

func TestFlow_AmountGate(t *testing.T) {
	f := transfer.NewFlow()
	fillRecipient(f)
	f.Next()
	require.Equal(t, transfer.StepAmount, f.Step())

	assert.False(t, f.CanProceed())

	f.SetAmount("0")
	assert.False(t, f.CanProceed())

	f.SetAmount("-100")
	assert.False(t, f.CanProceed())

	f.SetAmount("abc")
	assert.False(t, f.CanProceed())

	f.SetAmount("50000")
	assert.True(t, f.CanProceed())
}

func TestFlow_NextBlockedByGate(t *testing.T) {
	f := transfer.NewFlow()
	f.Next()
	assert.Equal(t, transfer.StepRecipient, f.Step(), "gate failure must not advance")
}

func TestFlow_ConfirmAndExecute(t *testing.T) {
	f := transfer.NewFlow()
	fillRecipient(f)
	f.Next()
	f.SetAmount("50000")
	f.Next()
	require.Equal(t, transfer.StepMemo, f.Step())

	f.SetMemo("생일 축하")
	f.Next()
	assert.True(t, f.ShowingConfirm())
	assert.False(t, f.Completed())

	f.CancelConfirm()
	assert.False(t, f.ShowingConfirm())
	assert.Equal(t, transfer.StepMemo, f.Step(), "cancel keeps the review step")

	f.Next()
	f.Execute()
	assert.True(t, f.Completed())
	assert.False(t, f.ShowingConfirm())
}

func TestFlow_PreviousKeepsData(t *testing.T) {
	f := transfer.NewFlow()
	fillRecipient(f)
	f.Next()
	f.SetAmount("50000")

	f.Previous()
	assert.Equal(t, transfer.StepRecipient, f.Step())
	assert.Equal(t, "50000", f.Details().Amount, "stepping back must not clear fields")

	f.Previous()
	assert.Equal(t, transfer.StepRecipient, f.Step())
}

func TestFlow_Reset(t *testing.T) {
	f := transfer.NewFlow()
	fillRecipient(f)
	f.Next()
	f.SetAmount("50000")
	f.Next()
	f.Next()
	f.Execute()

	f.Reset()
	assert.Equal(t, transfer.StepRecipient, f.Step())
	assert.False(t, f.Completed())
	assert.Equal(t, "", f.Details().RecipientName)
}

func TestFlow_PrefillCompleteTriple(t *testing.T) {
	f := transfer.NewFlow()
	f.Prefill(router.TransferPrefill{
		RecipientName:    "홍길동",
		RecipientAccount: "3333-01-1234567",
		RecipientBank:    "카카오뱅크",
	})

	assert.Equal(t, transfer.StepAmount, f.Step(), "complete triple skips the recipient step")
	assert.Equal(t, "홍길동", f.Details().RecipientName)
	assert.Equal(t, "", f.Details().Amount)
}

func TestFlow_PrefillWithAmount(t *testing.T) {
	f := transfer.NewFlow()
	f.Prefill(router.TransferPrefill{
		RecipientName: "홍길동",
		Amount:        decimal.NewFromInt(50000),
	})

	assert.Equal(t, transfer.StepAmount, f.Step())
	assert.Equal(t, "50000", f.Details().Amount)
	assert.True(t, f.CanProceed())
}

func TestFlow_PrefillPartialStaysOnRecipient(t *testing.T) {
	f := transfer.NewFlow()
	f.Prefill(router.TransferPrefill{RecipientName: "홍길동"})

	assert.Equal(t, transfer.StepRecipient, f.Step(), "partial prefill still needs the recipient form")
	assert.Equal(t, "홍길동", f.Details().RecipientName)
}

func TestFlow_PrefillMergesOverExisting(t *testing.T) {
	f := transfer.NewFlow()
	f.SetBank("신한은행")
	f.SetAccountNumber("110-123-456789")

	f.Prefill(router.TransferPrefill{RecipientName: "홍길동"})

	d := f.Details()
	assert.Equal(t, "신한은행", d.BankName, "empty prefill fields leave entered data alone")
	assert.Equal(t, "홍길동", d.RecipientName)
	assert.Equal(t, transfer.StepAmount, f.Step(), "merge completed the triple")
}
