package loan

import (
	"github.com/shopspring/decimal"

	"github.com/JunhyunKang/mock-sol/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DefaultLoans returns the account holder's mock loan contracts.
func DefaultLoans() []model.Loan {
	return []model.Loan{
		{
			ID:              "1",
			Type:            "주택담보대출",
			Amount:          dec("200000000"),
			Balance:         dec("150000000"),
			InterestRate:    dec("3.2"),
			StartDate:       "2023-03-15",
			EndDate:         "2043-03-15",
			MonthlyPayment:  dec("950000"),
			NextPaymentDate: "2025-02-15",
			Status:          model.LoanActive,
		},
		{
			ID:              "2",
			Type:            "신용대출",
			Amount:          dec("30000000"),
			Balance:         dec("15000000"),
			InterestRate:    dec("4.8"),
			StartDate:       "2024-01-10",
			EndDate:         "2027-01-10",
			MonthlyPayment:  dec("800000"),
			NextPaymentDate: "2025-02-15",
			Status:          model.LoanActive,
		},
	}
}

// DefaultDocuments returns the mock loan document list.
func DefaultDocuments() []model.LoanDocument {
	return []model.LoanDocument{
		{ID: "1", Title: "주택담보대출 계약서", Type: model.DocumentContract, LoanType: "주택담보대출", IssueDate: "2023-03-15", Status: "available", FileSize: "2.4MB"},
		{ID: "2", Title: "대출잔액증명서", Type: model.DocumentCertificate, LoanType: "주택담보대출", IssueDate: "2025-01-15", Status: "available", FileSize: "156KB"},
		{ID: "3", Title: "신용대출 계약서", Type: model.DocumentContract, LoanType: "신용대출", IssueDate: "2024-01-10", Status: "available", FileSize: "1.8MB"},
		{ID: "4", Title: "2024년 12월 대출명세서", Type: model.DocumentStatement, LoanType: "신용대출", IssueDate: "2024-12-31", Status: "available", FileSize: "324KB"},
		{ID: "5", Title: "금리변동 안내서", Type: model.DocumentNotice, LoanType: "주택담보대출", IssueDate: "2024-11-20", Status: "available", FileSize: "512KB"},
		{ID: "6", Title: "대출이용약관 변경사항", Type: model.DocumentNotice, LoanType: "전체", IssueDate: "2024-10-15", Status: "available", FileSize: "892KB"},
	}
}
