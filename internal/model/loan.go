package model

import "github.com/shopspring/decimal"

// LoanStatus is the lifecycle state of a loan.
type LoanStatus string

const (
	LoanActive    LoanStatus = "active"
	LoanCompleted LoanStatus = "completed"
	LoanOverdue   LoanStatus = "overdue"
)

// Loan is one loan contract of the account holder.
type Loan struct {
	ID              string
	Type            string
	Amount          decimal.Decimal // original principal
	Balance         decimal.Decimal // outstanding
	InterestRate    decimal.Decimal // annual, percent
	StartDate       string
	EndDate         string
	MonthlyPayment  decimal.Decimal
	NextPaymentDate string
	Status          LoanStatus
}

// DocumentType classifies loan documents.
type DocumentType string

const (
	DocumentContract    DocumentType = "contract"
	DocumentStatement   DocumentType = "statement"
	DocumentCertificate DocumentType = "certificate"
	DocumentNotice      DocumentType = "notice"
)

// LoanDocument is one downloadable document tied to a loan.
type LoanDocument struct {
	ID        string
	Title     string
	Type      DocumentType
	LoanType  string
	IssueDate string
	Status    string // available, processing, expired
	FileSize  string
}
