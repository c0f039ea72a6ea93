// Package card covers the check-card catalog and the three-stage
// application flow. Submissions go nowhere; the prototype only assigns a
// local id.
package card

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JunhyunKang/mock-sol/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DefaultProducts returns the mock card catalog.
func DefaultProducts() []model.CardProduct {
	return []model.CardProduct{
		{
			ID:          "shinhan-check",
			Name:        "신한 체크카드",
			Description: "일상생활에서 편리하게 사용하는 기본 체크카드",
			Benefits:    []string{"연회비 없음", "온라인 쇼핑몰 할인", "교통비 할인"},
			AnnualFee:   decimal.Zero,
			CreditLimit: "월 100만원",
			Image:       "💳",
			Popular:     true,
		},
		{
			ID:          "shinhan-premium",
			Name:        "신한 프리미엄 체크카드",
			Description: "고급 혜택과 서비스를 제공하는 프리미엄 카드",
			Benefits:    []string{"공항라운지 이용", "호텔 할인", "골프장 이용"},
			AnnualFee:   dec("50000"),
			CreditLimit: "월 300만원",
			Image:       "💎",
		},
		{
			ID:          "shinhan-youth",
			Name:        "신한 청년 체크카드",
			Description: "20-30대를 위한 특별한 혜택이 있는 카드",
			Benefits:    []string{"영화관 할인", "카페 할인", "교통비 무료"},
			AnnualFee:   decimal.Zero,
			CreditLimit: "월 50만원",
			Image:       "🎓",
		},
	}
}

// Product looks up a product by id.
func Product(products []model.CardProduct, id string) (model.CardProduct, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return model.CardProduct{}, false
}

// Stage is the active stage of the application flow.
type Stage string

const (
	StageSelect  Stage = "select"
	StageInfo    Stage = "info"
	StageConfirm Stage = "confirm"
)

// Application is the card application screen's state.
type Application struct {
	products  []model.CardProduct
	stage     Stage
	productID string
	applicant model.CardApplicantInfo
}

// NewApplication starts at the product selection stage.
func NewApplication(products []model.CardProduct) *Application {
	return &Application{products: products, stage: StageSelect}
}

// Stage returns the active stage.
func (a *Application) Stage() Stage {
	return a.stage
}

// Selected returns the chosen product, if any.
func (a *Application) Selected() (model.CardProduct, bool) {
	return Product(a.products, a.productID)
}

// Applicant returns the form state.
func (a *Application) Applicant() model.CardApplicantInfo {
	return a.applicant
}

// Select picks a product and moves to the applicant form.
func (a *Application) Select(productID string) error {
	if _, ok := Product(a.products, productID); !ok {
		return fmt.Errorf("unknown card product %q", productID)
	}
	a.productID = productID
	a.stage = StageInfo
	return nil
}

// SetApplicant replaces the form state.
func (a *Application) SetApplicant(info model.CardApplicantInfo) {
	a.applicant = info
}

// Submit moves the completed form to the confirm stage.
func (a *Application) Submit() {
	if a.stage == StageInfo {
		a.stage = StageConfirm
	}
}

// BackToSelect abandons the form and returns to the catalog.
func (a *Application) BackToSelect() {
	a.stage = StageSelect
	a.productID = ""
	a.applicant = model.CardApplicantInfo{}
}

// Confirm finalizes the application and resets the flow.
func (a *Application) Confirm() (model.CardApplication, error) {
	if a.stage != StageConfirm {
		return model.CardApplication{}, fmt.Errorf("cannot confirm from stage %q", a.stage)
	}
	app := model.CardApplication{
		ID:        uuid.NewString(),
		ProductID: a.productID,
		Applicant: a.applicant,
	}
	a.BackToSelect()
	return app, nil
}
