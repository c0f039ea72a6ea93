package model

// TransferDetails holds the form fields of the transfer flow. Amount stays
// a string because it mirrors a text field; validation happens at the step
// gate, not here.
type TransferDetails struct {
	BankName      string
	AccountNumber string
	RecipientName string
	Amount        string
	Memo          string
}

// Banks is the fixed pick list for the recipient bank field.
var Banks = []string{
	"국민은행",
	"신한은행",
	"우리은행",
	"하나은행",
	"카카오뱅크",
	"토스뱅크",
}

// QuickAmounts are the one-tap amount shortcuts on the amount step.
var QuickAmounts = []string{
	"10000",
	"50000",
	"100000",
	"300000",
	"500000",
	"1000000",
}
