package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/JunhyunKang/mock-sol/internal/card"
	"github.com/JunhyunKang/mock-sol/internal/history"
	"github.com/JunhyunKang/mock-sol/internal/loan"
	"github.com/JunhyunKang/mock-sol/internal/model"
	"github.com/JunhyunKang/mock-sol/internal/router"
	"github.com/JunhyunKang/mock-sol/internal/search"
	"github.com/JunhyunKang/mock-sol/internal/transfer"
)

// searchFailureMessage is the generic notice for a failed search call.
const searchFailureMessage = "검색에 실패했습니다. 잠시 후 다시 시도해 주세요."

// docTypeFacets is the cycle order of the document type filter.
var docTypeFacets = []string{
	loan.DocumentTypeAll,
	string(model.DocumentContract),
	string(model.DocumentStatement),
	string(model.DocumentCertificate),
	string(model.DocumentNotice),
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil

	case userInfoMsg:
		// A fetch that resolves after the screen moved on is a no-op.
		if msg.seq != a.userSeq {
			return a, nil
		}
		a.userLoading = false
		if msg.err != nil {
			a.userFailed = true
			return a, nil
		}
		user := msg.user
		a.user = &user
		a.userFailed = false
		return a, nil

	case searchResultMsg:
		if msg.seq != a.searchSeq {
			return a, nil
		}
		a.searchBusy = false
		if msg.err != nil {
			// Keep the panel and query so the user can retry.
			a.status = searchFailureMessage
			return a, nil
		}
		a.searchOpen = false
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		return a, a.applyOutcome(search.Dispatch(msg.resp))

	case transferResetMsg:
		if a.flow.Completed() {
			a.flow.Reset()
			a.syncTransferInputs()
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *App) applyOutcome(out search.Outcome) tea.Cmd {
	switch o := out.(type) {
	case search.Navigation:
		a.status = ""
		return a.navigate(o.Screen, o.Payload)
	case search.Notice:
		a.status = o.Message
	}
	return nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}
	if a.searchOpen {
		return a.updateSearchPanel(msg)
	}

	switch a.router.Screen() {
	case router.ScreenHome:
		return a.updateHome(msg)
	case router.ScreenTransfer:
		return a.updateTransfer(msg)
	case router.ScreenHistory:
		return a.updateHistory(msg)
	case router.ScreenExchange:
		return a.updateExchange(msg)
	case router.ScreenExchangeCalculator:
		return a.updateExchangeCalculator(msg)
	case router.ScreenExchangeAlerts:
		return a.updateAlerts(msg)
	case router.ScreenLoan:
		return a.updateLoan(msg)
	case router.ScreenLoanCalculator:
		return a.updateLoanCalculator(msg)
	case router.ScreenLoanDocuments:
		return a.updateDocuments(msg)
	case router.ScreenCardApplication:
		return a.updateCard(msg)
	}
	return a, nil
}

// updateSearchPanel owns all keys while the panel is open. The busy flag
// blocks both resubmission and edits; the in-flight request itself is not
// aborted.
func (a *App) updateSearchPanel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		if !a.searchBusy {
			a.searchOpen = false
			a.searchInput.Blur()
		}
		return a, nil
	case tea.KeyEnter:
		query := strings.TrimSpace(a.searchInput.Value())
		if a.searchBusy || query == "" {
			return a, nil
		}
		a.searchBusy = true
		a.searchSeq++
		a.status = ""
		return a, a.searchCmd(query)
	}

	if a.searchBusy {
		return a, nil
	}
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	return a, cmd
}

func (a *App) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "/", "s":
		a.searchOpen = true
		a.status = ""
		a.searchInput.Focus()
		return a, textinput.Blink
	case "r":
		a.userSeq++
		a.userLoading = true
		a.userFailed = false
		return a, a.fetchUserInfoCmd()
	case "up", "k":
		if a.menuCursor > 0 {
			a.menuCursor--
		}
	case "down", "j":
		if a.menuCursor < len(quickMenu)-1 {
			a.menuCursor++
		}
	case "enter":
		return a, a.navigate(quickMenu[a.menuCursor].screen, nil)
	}
	return a, nil
}

func (a *App) updateTransfer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.flow.Completed() {
		// The completion screen stays up until the delayed reset fires.
		return a, nil
	}

	if a.flow.ShowingConfirm() {
		switch msg.String() {
		case "y", "enter":
			a.flow.Execute()
			return a, transferResetCmd()
		case "n", "esc":
			a.flow.CancelConfirm()
		}
		return a, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		if a.flow.Step() > transfer.StepRecipient {
			a.flow.Previous()
			a.focusTransferStep()
			return a, nil
		}
		return a, a.goHome()
	case tea.KeyEnter:
		if a.flow.CanProceed() {
			a.flow.Next()
			a.focusTransferStep()
		} else {
			a.status = "입력값을 확인해 주세요."
		}
		return a, nil
	case tea.KeyTab:
		if a.flow.Step() == transfer.StepRecipient {
			a.transferFocus = (a.transferFocus + 1) % 3
			a.focusTransferStep()
		}
		return a, nil
	}

	switch a.flow.Step() {
	case transfer.StepRecipient:
		if a.transferFocus == 0 {
			switch msg.String() {
			case "up", "k":
				if a.bankCursor > 0 {
					a.bankCursor--
				}
				a.flow.SetBank(model.Banks[a.bankCursor])
			case "down", "j":
				if a.bankCursor < len(model.Banks)-1 {
					a.bankCursor++
				}
				a.flow.SetBank(model.Banks[a.bankCursor])
			case " ":
				a.flow.SetBank(model.Banks[a.bankCursor])
			}
			return a, nil
		}
		var cmd tea.Cmd
		if a.transferFocus == 1 {
			a.acctInput, cmd = a.acctInput.Update(msg)
			a.flow.SetAccountNumber(a.acctInput.Value())
		} else {
			a.nameInput, cmd = a.nameInput.Update(msg)
			a.flow.SetRecipientName(a.nameInput.Value())
		}
		return a, cmd

	case transfer.StepAmount:
		switch msg.String() {
		case "up", "down":
			a.cycleQuickAmount(msg.String() == "down")
			return a, nil
		}
		var cmd tea.Cmd
		a.amountInput, cmd = a.amountInput.Update(msg)
		a.flow.SetAmount(a.amountInput.Value())
		return a, cmd

	default:
		var cmd tea.Cmd
		a.memoInput, cmd = a.memoInput.Update(msg)
		a.flow.SetMemo(a.memoInput.Value())
		return a, cmd
	}
}

// focusTransferStep moves widget focus to match the flow's step.
func (a *App) focusTransferStep() {
	a.blurTransferInputs()
	switch a.flow.Step() {
	case transfer.StepRecipient:
		switch a.transferFocus {
		case 1:
			a.acctInput.Focus()
		case 2:
			a.nameInput.Focus()
		}
	case transfer.StepAmount:
		a.amountInput.SetValue(a.flow.Details().Amount)
		a.amountInput.Focus()
	case transfer.StepMemo:
		a.memoInput.Focus()
	}
}

// cycleQuickAmount steps the amount field through the quick amount list.
func (a *App) cycleQuickAmount(forward bool) {
	current := a.amountInput.Value()
	idx := -1
	for i, amt := range model.QuickAmounts {
		if amt == current {
			idx = i
			break
		}
	}
	if forward {
		idx = (idx + 1) % len(model.QuickAmounts)
	} else if idx <= 0 {
		idx = len(model.QuickAmounts) - 1
	} else {
		idx--
	}
	a.amountInput.SetValue(model.QuickAmounts[idx])
	a.flow.SetAmount(model.QuickAmounts[idx])
}

func (a *App) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.filterOpen {
		return a.updateHistoryFilter(msg)
	}

	switch msg.String() {
	case "esc":
		return a, a.goHome()
	case "f":
		f := a.history.Filter()
		a.filterOpen = true
		a.filterFocus = 0
		a.startInput.SetValue(f.StartDate)
		a.endInput.SetValue(f.EndDate)
		a.startInput.Focus()
		a.endInput.Blur()
		return a, textinput.Blink
	case "s":
		if a.history.Filter().SortOrder == model.SortLatest {
			a.history.SetSortOrder(model.SortOldest)
		} else {
			a.history.SetSortOrder(model.SortLatest)
		}
		a.txCursor = 0
	case "t":
		switch a.history.Filter().Type {
		case model.TypeAll:
			a.history.SetType(model.TypeDeposit)
		case model.TypeDeposit:
			a.history.SetType(model.TypeWithdrawal)
		default:
			a.history.SetType(model.TypeAll)
		}
		a.txCursor = 0
	case "r":
		a.history.Reset()
		a.txCursor = 0
		a.status = "기본 조회 조건으로 초기화했습니다."
	case "e":
		return a, a.exportStatement()
	case "up", "k":
		if a.txCursor > 0 {
			a.txCursor--
		}
	case "down", "j":
		if a.txCursor < len(a.history.Transactions())-1 {
			a.txCursor++
		}
	}
	return a, nil
}

func (a *App) updateHistoryFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.filterOpen = false
		a.startInput.Blur()
		a.endInput.Blur()
		return a, nil
	case tea.KeyTab:
		a.filterFocus = (a.filterFocus + 1) % 2
		if a.filterFocus == 0 {
			a.startInput.Focus()
			a.endInput.Blur()
		} else {
			a.startInput.Blur()
			a.endInput.Focus()
		}
		return a, nil
	case tea.KeyEnter:
		a.history.SetDateRange(
			strings.TrimSpace(a.startInput.Value()),
			strings.TrimSpace(a.endInput.Value()),
		)
		a.filterOpen = false
		a.startInput.Blur()
		a.endInput.Blur()
		a.txCursor = 0
		return a, nil
	}

	var cmd tea.Cmd
	if a.filterFocus == 0 {
		a.startInput, cmd = a.startInput.Update(msg)
	} else {
		a.endInput, cmd = a.endInput.Update(msg)
	}
	return a, cmd
}

// exportStatement writes the current filtered view to a CSV in the
// working directory.
func (a *App) exportStatement() tea.Cmd {
	records := a.history.Transactions()
	name := fmt.Sprintf("statement-%s.csv", time.Now().Format("20060102-150405"))

	f, err := os.Create(name)
	if err != nil {
		a.status = "내보내기에 실패했습니다."
		a.log.Warn("statement export failed", zap.Error(err))
		return nil
	}
	defer f.Close()

	if err := history.WriteTransactions(f, records); err != nil {
		a.status = "내보내기에 실패했습니다."
		a.log.Warn("statement export failed", zap.Error(err))
		return nil
	}
	a.status = fmt.Sprintf("%d건을 %s로 내보냈습니다.", len(records), name)
	return nil
}

func (a *App) updateExchange(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return a, a.goHome()
	case "c":
		return a, a.navigate(router.ScreenExchangeCalculator, nil)
	case "a":
		return a, a.navigate(router.ScreenExchangeAlerts, nil)
	}
	return a, nil
}

func (a *App) updateExchangeCalculator(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.exAmountInput.Blur()
		return a, a.navigate(router.ScreenExchange, nil)
	case tea.KeyTab:
		a.exFocus = (a.exFocus + 1) % 3
		if a.exFocus == 0 {
			a.exAmountInput.Focus()
		} else {
			a.exAmountInput.Blur()
		}
		return a, nil
	}

	if a.exFocus == 0 {
		if !a.exAmountInput.Focused() {
			a.exAmountInput.Focus()
		}
		var cmd tea.Cmd
		a.exAmountInput, cmd = a.exAmountInput.Update(msg)
		return a, cmd
	}

	cursor := &a.fromCursor
	if a.exFocus == 2 {
		cursor = &a.toCursor
	}
	switch msg.String() {
	case "up", "k":
		if *cursor > 0 {
			*cursor--
		}
	case "down", "j":
		if *cursor < len(a.rates)-1 {
			*cursor++
		}
	}
	return a, nil
}

func (a *App) updateAlerts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.alertAdding {
		return a.updateAlertForm(msg)
	}

	switch msg.String() {
	case "esc":
		return a, a.navigate(router.ScreenExchange, nil)
	case "n":
		a.alertAdding = true
		a.alertCurCursor = 0
		a.alertBelow = true
		a.alertRateInput.SetValue("")
		a.alertRateInput.Focus()
		return a, textinput.Blink
	case "t":
		if alert, ok := a.alertAt(a.alertCursor); ok {
			a.alerts.Toggle(alert.ID)
		}
	case "d":
		if alert, ok := a.alertAt(a.alertCursor); ok {
			a.alerts.Delete(alert.ID)
			if a.alertCursor > 0 {
				a.alertCursor--
			}
		}
	case "up", "k":
		if a.alertCursor > 0 {
			a.alertCursor--
		}
	case "down", "j":
		if a.alertCursor < len(a.alerts.All())-1 {
			a.alertCursor++
		}
	}
	return a, nil
}

func (a *App) alertAt(i int) (model.RateAlert, bool) {
	all := a.alerts.All()
	if i < 0 || i >= len(all) {
		return model.RateAlert{}, false
	}
	return all[i], true
}

// foreignRates returns the rate table without KRW, for alert currencies.
func (a *App) foreignRates() []model.ExchangeRate {
	var out []model.ExchangeRate
	for _, r := range a.rates {
		if r.Code != "KRW" {
			out = append(out, r)
		}
	}
	return out
}

func (a *App) updateAlertForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	foreign := a.foreignRates()

	switch msg.Type {
	case tea.KeyEsc:
		a.alertAdding = false
		a.alertRateInput.Blur()
		return a, nil
	case tea.KeyEnter:
		target := strings.TrimSpace(a.alertRateInput.Value())
		if target == "" {
			return a, nil
		}
		cond := model.AlertBelow
		if !a.alertBelow {
			cond = model.AlertAbove
		}
		rate, err := parseDecimal(target)
		if err != nil {
			a.status = "목표 환율을 숫자로 입력해 주세요."
			return a, nil
		}
		if _, err := a.alerts.Add(foreign[a.alertCurCursor].Code, rate, cond); err != nil {
			a.status = "알림을 추가하지 못했습니다."
			a.log.Warn("alert add failed", zap.Error(err))
			return a, nil
		}
		a.alertAdding = false
		a.alertRateInput.Blur()
		a.status = "환율 알림을 추가했습니다."
		return a, nil
	}

	switch msg.String() {
	case "up":
		if a.alertCurCursor > 0 {
			a.alertCurCursor--
		}
		return a, nil
	case "down":
		if a.alertCurCursor < len(foreign)-1 {
			a.alertCurCursor++
		}
		return a, nil
	case "left", "right":
		a.alertBelow = !a.alertBelow
		return a, nil
	}

	var cmd tea.Cmd
	a.alertRateInput, cmd = a.alertRateInput.Update(msg)
	return a, cmd
}

func (a *App) updateLoan(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return a, a.goHome()
	case "c":
		return a, a.navigate(router.ScreenLoanCalculator, nil)
	case "d":
		return a, a.navigate(router.ScreenLoanDocuments, nil)
	}
	return a, nil
}

func (a *App) updateLoanCalculator(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.loanAmtInput.Blur()
		a.loanRateInput.Blur()
		a.loanYearsInput.Blur()
		return a, a.navigate(router.ScreenLoan, nil)
	case tea.KeyTab:
		a.loanCalcFocus = (a.loanCalcFocus + 1) % 3
		a.focusLoanInput()
		return a, nil
	}

	switch msg.String() {
	case "left", "right":
		if a.repayType == loan.RepayEqualPayment {
			a.repayType = loan.RepayEqualPrincipal
		} else {
			a.repayType = loan.RepayEqualPayment
		}
		return a, nil
	}

	var cmd tea.Cmd
	switch a.loanCalcFocus {
	case 0:
		if !a.loanAmtInput.Focused() {
			a.loanAmtInput.Focus()
		}
		a.loanAmtInput, cmd = a.loanAmtInput.Update(msg)
	case 1:
		a.loanRateInput, cmd = a.loanRateInput.Update(msg)
	default:
		a.loanYearsInput, cmd = a.loanYearsInput.Update(msg)
	}
	return a, cmd
}

func (a *App) focusLoanInput() {
	a.loanAmtInput.Blur()
	a.loanRateInput.Blur()
	a.loanYearsInput.Blur()
	switch a.loanCalcFocus {
	case 0:
		a.loanAmtInput.Focus()
	case 1:
		a.loanRateInput.Focus()
	default:
		a.loanYearsInput.Focus()
	}
}

func (a *App) updateDocuments(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.docSearch.Blur()
		return a, a.navigate(router.ScreenLoan, nil)
	case tea.KeyTab:
		a.docTypeIdx = (a.docTypeIdx + 1) % len(docTypeFacets)
		return a, nil
	}

	if !a.docSearch.Focused() {
		a.docSearch.Focus()
	}
	var cmd tea.Cmd
	a.docSearch, cmd = a.docSearch.Update(msg)
	return a, cmd
}

func (a *App) updateCard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.cardApp.Stage() {
	case card.StageSelect:
		switch msg.String() {
		case "esc":
			return a, a.goHome()
		case "up", "k":
			if a.cardCursor > 0 {
				a.cardCursor--
			}
		case "down", "j":
			if a.cardCursor < len(a.products)-1 {
				a.cardCursor++
			}
		case "enter":
			if err := a.cardApp.Select(a.products[a.cardCursor].ID); err != nil {
				a.log.Warn("card select failed", zap.Error(err))
				return a, nil
			}
			a.cardFocus = 0
			for i := range a.cardInputs {
				a.cardInputs[i].SetValue("")
				a.cardInputs[i].Blur()
			}
			a.cardInputs[0].Focus()
			return a, textinput.Blink
		}
		return a, nil

	case card.StageInfo:
		switch msg.Type {
		case tea.KeyEsc:
			a.cardApp.BackToSelect()
			return a, nil
		case tea.KeyTab, tea.KeyEnter:
			if msg.Type == tea.KeyEnter && a.cardFocus == len(a.cardInputs)-1 {
				a.collectCardForm()
				a.cardApp.Submit()
				return a, nil
			}
			a.cardInputs[a.cardFocus].Blur()
			a.cardFocus = (a.cardFocus + 1) % len(a.cardInputs)
			a.cardInputs[a.cardFocus].Focus()
			return a, nil
		}
		var cmd tea.Cmd
		a.cardInputs[a.cardFocus], cmd = a.cardInputs[a.cardFocus].Update(msg)
		return a, cmd

	default: // confirm
		switch msg.String() {
		case "y", "enter":
			app, err := a.cardApp.Confirm()
			if err != nil {
				a.log.Warn("card confirm failed", zap.Error(err))
				return a, nil
			}
			a.log.Info("card application submitted",
				zap.String("application_id", app.ID),
				zap.String("product_id", app.ProductID))
			a.status = "카드 신청이 완료되었습니다!"
			return a, a.goHome()
		case "n", "esc":
			a.cardApp.BackToSelect()
		}
		return a, nil
	}
}

func (a *App) collectCardForm() {
	a.cardApp.SetApplicant(model.CardApplicantInfo{
		Name:    a.cardInputs[0].Value(),
		Phone:   a.cardInputs[1].Value(),
		Email:   a.cardInputs[2].Value(),
		Address: a.cardInputs[3].Value(),
		Job:     a.cardInputs[4].Value(),
		Income:  a.cardInputs[5].Value(),
		Purpose: a.cardInputs[6].Value(),
	})
}
