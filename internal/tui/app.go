// Package tui renders the banking screens in the terminal. One App holds
// all screen state for the session; nothing is persisted.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/JunhyunKang/mock-sol/internal/api"
	"github.com/JunhyunKang/mock-sol/internal/card"
	"github.com/JunhyunKang/mock-sol/internal/exchange"
	"github.com/JunhyunKang/mock-sol/internal/history"
	"github.com/JunhyunKang/mock-sol/internal/loan"
	"github.com/JunhyunKang/mock-sol/internal/model"
	"github.com/JunhyunKang/mock-sol/internal/router"
	"github.com/JunhyunKang/mock-sol/internal/transfer"
)

// menuItem is one home screen quick menu entry.
type menuItem struct {
	title  string
	desc   string
	screen router.Screen
}

var quickMenu = []menuItem{
	{title: "송금", desc: "계좌이체", screen: router.ScreenTransfer},
	{title: "입출금내역", desc: "거래조회", screen: router.ScreenHistory},
	{title: "환전", desc: "외화환전", screen: router.ScreenExchange},
	{title: "체크카드", desc: "신청하기", screen: router.ScreenCardApplication},
	{title: "대출관리", desc: "대출조회", screen: router.ScreenLoan},
}

// cardFieldLabels name the applicant form fields, in tab order.
var cardFieldLabels = []string{"이름", "연락처", "이메일", "주소", "직업", "연소득", "신청목적"}

// App is the Bubble Tea model for the whole application.
type App struct {
	ctx    context.Context
	client *api.Client
	log    *zap.Logger

	router  *router.Router
	history *history.Service
	flow    *transfer.Flow
	alerts  *exchange.AlertBook
	cardApp *card.Application

	rates     []model.ExchangeRate
	exHistory []model.ExchangeRecord
	loans     []model.Loan
	documents []model.LoanDocument
	products  []model.CardProduct
	recent    []model.Transaction

	// home screen fetch state
	user        *model.UserInfo
	userLoading bool
	userFailed  bool
	userSeq     int

	// search panel
	searchOpen  bool
	searchBusy  bool
	searchInput textinput.Model
	searchSeq   int

	status string

	width  int
	height int

	// home
	menuCursor int

	// transfer
	bankCursor    int
	transferFocus int // step 1: 0 bank list, 1 account, 2 name
	acctInput     textinput.Model
	nameInput     textinput.Model
	amountInput   textinput.Model
	memoInput     textinput.Model

	// history
	txCursor    int
	filterOpen  bool
	filterFocus int // 0 start, 1 end
	startInput  textinput.Model
	endInput    textinput.Model

	// exchange calculator
	exFocus       int // 0 amount, 1 from, 2 to
	exAmountInput textinput.Model
	fromCursor    int
	toCursor      int

	// rate alerts
	alertCursor    int
	alertAdding    bool
	alertCurCursor int
	alertBelow     bool
	alertRateInput textinput.Model

	// loan calculator
	loanCalcFocus  int // 0 amount, 1 rate, 2 years
	loanAmtInput   textinput.Model
	loanRateInput  textinput.Model
	loanYearsInput textinput.Model
	repayType      loan.RepaymentType

	// loan documents
	docTypeIdx int
	docSearch  textinput.Model

	// card application
	cardCursor int
	cardFocus  int
	cardInputs []textinput.Model
}

// New builds the application model. A nil logger means no logging.
func New(ctx context.Context, client *api.Client, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}

	rates := exchange.DefaultRates()

	a := &App{
		ctx:     ctx,
		client:  client,
		log:     log,
		router:  router.New(),
		history: history.NewService(history.DefaultTransactions(), nil),
		flow:    transfer.NewFlow(),
		alerts:  exchange.NewAlertBook(rates, nil),
		cardApp: card.NewApplication(card.DefaultProducts()),

		rates:     rates,
		exHistory: exchange.DefaultHistory(),
		loans:     loan.DefaultLoans(),
		documents: loan.DefaultDocuments(),
		products:  card.DefaultProducts(),
		recent:    history.RecentTransactions(),

		userLoading: true,
		repayType:   loan.RepayEqualPayment,
		alertBelow:  true,
		toCursor:    0,
	}

	a.searchInput = newInput("무엇을 도와드릴까요? (예: 홍길동에게 5만원 보내줘)", 80)
	a.acctInput = newInput("계좌번호를 입력하세요", 30)
	a.nameInput = newInput("받는분 성함을 입력하세요", 20)
	a.amountInput = newInput("보낼 금액(원)", 12)
	a.memoInput = newInput("메모 (선택)", 40)
	a.startInput = newInput("2024-01-01", 10)
	a.endInput = newInput("2024-12-31", 10)
	a.exAmountInput = newInput("금액", 15)
	a.alertRateInput = newInput("목표 환율", 10)
	a.loanAmtInput = newInput("대출금액(원)", 15)
	a.loanRateInput = newInput("연 이자율(%)", 6)
	a.loanYearsInput = newInput("기간(년)", 3)
	a.docSearch = newInput("문서명 검색", 30)

	a.cardInputs = make([]textinput.Model, len(cardFieldLabels))
	for i, label := range cardFieldLabels {
		a.cardInputs[i] = newInput(label, 40)
	}

	return a
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	return ti
}

// Init fires the user-info fetch for the home screen.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.fetchUserInfoCmd(), textinput.Blink)
}

// navigate applies a screen change plus its payload side effects and
// returns any follow-up command.
func (a *App) navigate(s router.Screen, p router.Payload) tea.Cmd {
	a.router.Navigate(s, p)

	switch payload := p.(type) {
	case router.TransferPrefill:
		a.flow.Reset()
		a.flow.Prefill(payload)
		a.syncTransferInputs()
	case router.HistorySearch:
		a.history.ApplySearch(payload)
		a.txCursor = 0
	}

	if s == router.ScreenHome {
		a.userSeq++
		a.userLoading = true
		a.userFailed = false
		return a.fetchUserInfoCmd()
	}
	return nil
}

// goHome is the universal back action.
func (a *App) goHome() tea.Cmd {
	return a.navigate(router.ScreenHome, nil)
}

// syncTransferInputs pushes flow state into the form widgets after a
// prefill or reset.
func (a *App) syncTransferInputs() {
	d := a.flow.Details()
	a.acctInput.SetValue(d.AccountNumber)
	a.nameInput.SetValue(d.RecipientName)
	a.amountInput.SetValue(d.Amount)
	a.memoInput.SetValue(d.Memo)
	for i, bank := range model.Banks {
		if bank == d.BankName {
			a.bankCursor = i
		}
	}
	a.transferFocus = 0
	a.blurTransferInputs()
	if a.flow.Step() == transfer.StepAmount {
		a.amountInput.Focus()
	}
}

func (a *App) blurTransferInputs() {
	a.acctInput.Blur()
	a.nameInput.Blur()
	a.amountInput.Blur()
	a.memoInput.Blur()
}
