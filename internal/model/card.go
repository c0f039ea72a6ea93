package model

import "github.com/shopspring/decimal"

// CardProduct is one check-card product open for application.
type CardProduct struct {
	ID          string
	Name        string
	Description string
	Benefits    []string
	AnnualFee   decimal.Decimal
	CreditLimit string
	Image       string
	Popular     bool
}

// CardApplicantInfo holds the applicant form of the card application flow.
type CardApplicantInfo struct {
	Name    string
	Phone   string
	Email   string
	Address string
	Job     string
	Income  string
	Purpose string
}

// CardApplication is a submitted application.
type CardApplication struct {
	ID        string
	ProductID string
	Applicant CardApplicantInfo
}
