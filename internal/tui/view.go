package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/JunhyunKang/mock-sol/internal/card"
	"github.com/JunhyunKang/mock-sol/internal/exchange"
	"github.com/JunhyunKang/mock-sol/internal/loan"
	"github.com/JunhyunKang/mock-sol/internal/model"
	"github.com/JunhyunKang/mock-sol/internal/router"
	"github.com/JunhyunKang/mock-sol/internal/transfer"
)

func (a *App) View() string {
	var body string
	switch a.router.Screen() {
	case router.ScreenHome:
		body = a.viewHome()
	case router.ScreenTransfer:
		body = a.viewTransfer()
	case router.ScreenHistory:
		body = a.viewHistory()
	case router.ScreenExchange:
		body = a.viewExchange()
	case router.ScreenExchangeCalculator:
		body = a.viewExchangeCalculator()
	case router.ScreenExchangeAlerts:
		body = a.viewAlerts()
	case router.ScreenLoan:
		body = a.viewLoan()
	case router.ScreenLoanCalculator:
		body = a.viewLoanCalculator()
	case router.ScreenLoanDocuments:
		body = a.viewDocuments()
	case router.ScreenCardApplication:
		body = a.viewCard()
	default:
		body = a.viewHome()
	}

	sections := []string{body}
	if a.searchOpen {
		sections = append(sections, a.viewSearchPanel())
	}
	if a.status != "" {
		sections = append(sections, statusStyle.Render(a.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) viewSearchPanel() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("통합검색"))
	b.WriteString("\n")
	b.WriteString(a.searchInput.View())
	b.WriteString("\n")
	if a.searchBusy {
		b.WriteString(mutedStyle.Render("검색 중..."))
	} else {
		b.WriteString(helpStyle.Render("enter 검색 · esc 닫기"))
	}
	return dialogStyle.Render(b.String())
}

func (a *App) viewHome() string {
	var b strings.Builder

	switch {
	case a.userLoading:
		b.WriteString(mutedStyle.Render("로딩 중..."))
		b.WriteString("\n\n")
	case a.userFailed || a.user == nil:
		b.WriteString(errorStyle.Render("데이터를 불러올 수 없습니다."))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("r 다시 시도 · q 종료"))
		return b.String()
	default:
		b.WriteString(headerStyle.Render(a.user.Name))
		b.WriteString("\n")
		account := fmt.Sprintf("%s\n%s\n\n잔액\n%s",
			a.user.BankName,
			mutedStyle.Render(a.user.AccountNumber),
			titleStyle.Render(formatWon(a.user.Balance)))
		b.WriteString(balanceBoxStyle.Render(account))
		b.WriteString("\n\n")
	}

	b.WriteString(titleStyle.Render("빠른 서비스"))
	b.WriteString("\n")
	for i, item := range quickMenu {
		line := fmt.Sprintf("%s  %s", item.title, mutedStyle.Render(item.desc))
		if i == a.menuCursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("최근 거래"))
	b.WriteString("\n")
	for _, tx := range a.recent {
		b.WriteString(a.renderRecentRow(tx))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ 이동 · enter 선택 · / 검색 · q 종료"))
	return b.String()
}

func (a *App) renderRecentRow(tx model.Transaction) string {
	amount := formatWon(tx.Amount)
	if tx.Direction == model.DirectionDeposit {
		amount = depositStyle.Render("+" + amount)
	} else {
		amount = withdrawalStyle.Render("-" + amount)
	}
	return fmt.Sprintf("  %s  %s  %s",
		mutedStyle.Render(formatShortDate(tx.Date)), tx.Description, amount)
}

func (a *App) viewTransfer() string {
	if a.flow.Completed() {
		d := a.flow.Details()
		msg := fmt.Sprintf("%s님께\n%s원이\n성공적으로 송금되었습니다.",
			d.RecipientName, formatAmount(mustDecimal(d.Amount)))
		return dialogStyle.Render(goodStyle.Render("✓ 송금 완료") + "\n\n" + msg)
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("송금"))
	b.WriteString("\n")
	b.WriteString(a.renderTransferSteps())
	b.WriteString("\n\n")

	d := a.flow.Details()
	switch a.flow.Step() {
	case transfer.StepRecipient:
		b.WriteString(titleStyle.Render("받는분 정보 입력"))
		b.WriteString("\n\n은행\n")
		for i, bank := range model.Banks {
			marker := "  "
			if bank == d.BankName {
				marker = goodStyle.Render("● ")
			}
			line := marker + bank
			if a.transferFocus == 0 && i == a.bankCursor {
				line = selectedStyle.Render("> " + marker + bank)
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n계좌번호\n")
		b.WriteString(a.acctInput.View())
		b.WriteString("\n받는분 성함\n")
		b.WriteString(a.nameInput.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("tab 필드 이동 · space 은행 선택 · enter 다음 · esc 홈"))

	case transfer.StepAmount:
		b.WriteString(titleStyle.Render("보낼 금액 입력"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("받는분: %s (%s %s)\n\n", d.RecipientName, d.BankName, d.AccountNumber))
		b.WriteString(a.amountInput.View())
		if d.Amount != "" {
			if amt, err := parseDecimal(d.Amount); err == nil {
				b.WriteString("\n" + mutedStyle.Render(formatWon(amt)))
			}
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("↑/↓ 빠른 금액 · enter 다음 · esc 이전"))

	default:
		b.WriteString(titleStyle.Render("송금 확인"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("받는분   %s\n은행     %s\n계좌     %s\n금액     %s\n\n메모\n",
			d.RecipientName, d.BankName, d.AccountNumber, formatWon(mustDecimal(d.Amount))))
		b.WriteString(a.memoInput.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter 송금하기 · esc 이전"))
	}

	if a.flow.ShowingConfirm() {
		confirm := fmt.Sprintf("%s님께 %s을 보낼까요?\n\n",
			d.RecipientName, formatWon(mustDecimal(d.Amount)))
		b.WriteString("\n\n")
		b.WriteString(dialogStyle.Render(confirm + helpStyle.Render("y 송금 · n 취소")))
	}
	return b.String()
}

func (a *App) renderTransferSteps() string {
	var parts []string
	for step := 1; step <= 3; step++ {
		label := fmt.Sprintf("(%d)", step)
		if transfer.Step(step) == a.flow.Step() {
			label = selectedStyle.Render(label)
		} else if transfer.Step(step) < a.flow.Step() {
			label = goodStyle.Render(label)
		} else {
			label = mutedStyle.Render(label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, mutedStyle.Render("──"))
}

func (a *App) viewHistory() string {
	var b strings.Builder
	title := "입출금 내역"
	if a.history.SearchApplied() {
		title += "  " + selectedStyle.Render("[검색 결과]")
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")

	f := a.history.Filter()
	facets := fmt.Sprintf("%s ~ %s · %s · %s",
		f.StartDate, f.EndDate, typeLabel(f.Type), sortLabel(f.SortOrder))
	b.WriteString(mutedStyle.Render(facets))
	b.WriteString("\n")
	if summary := a.history.Summary(); summary != "" {
		b.WriteString(boxStyle.Render("적용된 조건: " + summary))
		b.WriteString("\n")
	}

	if a.filterOpen {
		form := fmt.Sprintf("조회 기간\n시작일 %s\n종료일 %s\n\n%s",
			a.startInput.View(), a.endInput.View(),
			helpStyle.Render("tab 필드 이동 · enter 적용 · esc 취소"))
		b.WriteString(dialogStyle.Render(form))
		b.WriteString("\n")
	}

	txs := a.history.Transactions()
	if len(txs) == 0 {
		if a.history.SearchApplied() {
			b.WriteString(mutedStyle.Render("\n검색 조건에 맞는 거래 내역이 없습니다.\n"))
		} else {
			b.WriteString(mutedStyle.Render("\n해당 기간에 거래 내역이 없습니다.\n"))
		}
	}
	for i, tx := range txs {
		b.WriteString(a.renderTransactionRow(tx, i == a.txCursor))
		b.WriteString("\n")
	}

	stats := a.history.Stats()
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(fmt.Sprintf("입금 %s · 출금 %s · 합계 %s",
		depositStyle.Render(formatWon(stats.Deposits)),
		withdrawalStyle.Render(formatWon(stats.Withdrawals)),
		formatWon(stats.Net))))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%d건 · f 기간 · t 유형 · s 정렬 · r 초기화 · e 내보내기 · esc 홈", len(txs))))
	return b.String()
}

func (a *App) renderTransactionRow(tx model.Transaction, cursor bool) string {
	amount := formatWon(tx.Amount)
	if tx.Direction == model.DirectionDeposit {
		amount = depositStyle.Render("+" + amount)
	} else {
		amount = withdrawalStyle.Render("-" + amount)
	}
	detail := ""
	if tx.Bank != "" {
		detail = mutedStyle.Render(fmt.Sprintf(" %s %s", tx.Bank, tx.AccountNumber))
	}
	line := fmt.Sprintf("%s %s  %s%s  %s  잔액 %s",
		mutedStyle.Render(tx.Date), mutedStyle.Render(tx.Time),
		tx.Description, detail, amount, formatAmount(tx.Balance))
	if cursor {
		return selectedStyle.Render("> ") + line
	}
	return "  " + line
}

func typeLabel(t model.TypeFilter) string {
	switch t {
	case model.TypeDeposit:
		return "입금"
	case model.TypeWithdrawal:
		return "출금"
	default:
		return "전체"
	}
}

func sortLabel(s model.SortOrder) string {
	if s == model.SortOldest {
		return "과거순"
	}
	return "최신순"
}

func (a *App) viewExchange() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("환전"))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("오늘의 환율"))
	b.WriteString("\n")
	for _, r := range a.rates {
		if r.Code == "KRW" {
			continue
		}
		change := r.Change.String()
		if r.Change.IsPositive() {
			change = depositStyle.Render("▲" + change)
		} else if r.Change.IsNegative() {
			change = withdrawalStyle.Render("▼" + r.Change.Abs().String())
		}
		b.WriteString(fmt.Sprintf("  %s %s  %s  %s\n",
			r.Code, mutedStyle.Render(r.Name), formatAmount(r.Rate), change))
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("환전 내역"))
	b.WriteString("\n")
	for _, h := range a.exHistory {
		b.WriteString(fmt.Sprintf("  %s  %s → %s  %s @ %s\n",
			mutedStyle.Render(h.Date), h.From, h.To, formatAmount(h.Amount), formatAmount(h.Rate)))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("c 환율 계산기 · a 환율 알림 · esc 홈"))
	return b.String()
}

func (a *App) viewExchangeCalculator() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("환율 계산기"))
	b.WriteString("\n금액\n")
	b.WriteString(a.exAmountInput.View())
	b.WriteString("\n\n")

	b.WriteString(a.renderCurrencyColumn("보내는 통화", a.fromCursor, a.exFocus == 1))
	b.WriteString("\n")
	b.WriteString(a.renderCurrencyColumn("받는 통화", a.toCursor, a.exFocus == 2))
	b.WriteString("\n")

	from := a.rates[a.fromCursor]
	to := a.rates[a.toCursor]
	if rate, err := exchange.CrossRate(a.rates, from.Code, to.Code); err == nil {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("1 %s = %s %s", from.Code, rate.Round(4).String(), to.Code)))
		b.WriteString("\n")
	}
	if amt, err := parseDecimal(a.exAmountInput.Value()); err == nil && amt.IsPositive() {
		if result, err := exchange.Convert(a.rates, from.Code, to.Code, amt); err == nil {
			b.WriteString(titleStyle.Render(fmt.Sprintf("%s %s = %s %s",
				formatAmount(amt), from.Code, formatAmount(result.Round(2)), to.Code)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab 필드 이동 · ↑/↓ 통화 선택 · esc 환전"))
	return b.String()
}

func (a *App) renderCurrencyColumn(label string, cursor int, focused bool) string {
	var b strings.Builder
	b.WriteString(label)
	b.WriteString("\n")
	for i, r := range a.rates {
		line := fmt.Sprintf("%s %s", r.Code, mutedStyle.Render(r.Name))
		if i == cursor {
			if focused {
				line = selectedStyle.Render("> " + line)
			} else {
				line = goodStyle.Render("● ") + line
			}
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App) viewAlerts() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("환율 알림"))
	b.WriteString("\n")

	alerts := a.alerts.All()
	if len(alerts) == 0 {
		b.WriteString(mutedStyle.Render("등록된 알림이 없습니다.\n"))
	}
	for i, alert := range alerts {
		state := mutedStyle.Render("꺼짐")
		if alert.Active {
			state = goodStyle.Render("켜짐")
		}
		cond := "이하"
		if alert.Condition == model.AlertAbove {
			cond = "이상"
		}
		line := fmt.Sprintf("%s %s %s %s  (현재 %s)  %s",
			alert.Currency, formatAmount(alert.TargetRate), "원", cond,
			formatAmount(alert.CurrentRate), state)
		if a.alerts.Triggered(alert) {
			line += "  " + errorStyle.Render("도달!")
		}
		if i == a.alertCursor && !a.alertAdding {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if a.alertAdding {
		foreign := a.foreignRates()
		cur := foreign[a.alertCurCursor]
		cond := "이하"
		if !a.alertBelow {
			cond = "이상"
		}
		form := fmt.Sprintf("새 알림\n통화: %s %s (↑/↓)\n조건: %s (←/→)\n목표 환율: %s\n\n%s",
			cur.Code, cur.Name, cond, a.alertRateInput.View(),
			helpStyle.Render("enter 추가 · esc 취소"))
		b.WriteString("\n")
		b.WriteString(dialogStyle.Render(form))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("n 새 알림 · t 켜기/끄기 · d 삭제 · esc 환전"))
	}
	return b.String()
}

func (a *App) viewLoan() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("대출 관리"))
	b.WriteString("\n")

	totalBalance := decimal.Zero
	for _, l := range a.loans {
		totalBalance = totalBalance.Add(l.Balance)
	}
	b.WriteString(balanceBoxStyle.Render("총 대출 잔액\n" + titleStyle.Render(formatWon(totalBalance))))
	b.WriteString("\n\n")

	for _, l := range a.loans {
		status := loanStatusLabel(l.Status)
		block := fmt.Sprintf("%s  %s\n잔액 %s / %s\n금리 연 %s%% · 월 상환 %s\n다음 납입일 %s",
			titleStyle.Render(l.Type), status,
			formatWon(l.Balance), mutedStyle.Render(formatWon(l.Amount)),
			l.InterestRate.String(), formatWon(l.MonthlyPayment),
			formatDotDate(l.NextPaymentDate))
		b.WriteString(boxStyle.Render(block))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("c 대출 계산기 · d 대출 서류 · esc 홈"))
	return b.String()
}

func loanStatusLabel(s model.LoanStatus) string {
	switch s {
	case model.LoanOverdue:
		return errorStyle.Render("연체")
	case model.LoanCompleted:
		return mutedStyle.Render("상환완료")
	default:
		return goodStyle.Render("정상")
	}
}

func (a *App) viewLoanCalculator() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("대출 계산기"))
	b.WriteString("\n")

	repayLabel := "원리금균등상환"
	if a.repayType == loan.RepayEqualPrincipal {
		repayLabel = "원금균등상환"
	}
	b.WriteString(fmt.Sprintf("상환 방식: %s (←/→)\n\n", selectedStyle.Render(repayLabel)))
	b.WriteString("대출금액\n" + a.loanAmtInput.View() + "\n")
	b.WriteString("연 이자율(%)\n" + a.loanRateInput.View() + "\n")
	b.WriteString("기간(년)\n" + a.loanYearsInput.View() + "\n\n")

	if result := a.renderLoanResult(); result != "" {
		b.WriteString(boxStyle.Render(result))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab 필드 이동 · esc 대출 관리"))
	return b.String()
}

func (a *App) renderLoanResult() string {
	principal, err1 := parseDecimal(a.loanAmtInput.Value())
	rate, err2 := parseDecimal(a.loanRateInput.Value())
	years, err3 := parseDecimal(a.loanYearsInput.Value())
	if err1 != nil || err2 != nil || err3 != nil || !years.IsInteger() {
		return ""
	}

	in := loan.CalcInput{Principal: principal, AnnualRate: rate, Years: int(years.IntPart())}
	if a.repayType == loan.RepayEqualPayment {
		r, err := loan.EqualPayment(in)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("월 상환금  %s\n총 상환액  %s\n총 이자    %s",
			formatWon(r.MonthlyPayment.Round(0)),
			formatWon(r.TotalPayment.Round(0)),
			formatWon(r.TotalInterest.Round(0)))
	}

	r, err := loan.EqualPrincipal(in)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("첫 달 상환금  %s\n마지막 달     %s\n총 상환액     %s\n총 이자       %s",
		formatWon(r.FirstPayment.Round(0)),
		formatWon(r.LastPayment.Round(0)),
		formatWon(r.TotalPayment.Round(0)),
		formatWon(r.TotalInterest.Round(0)))
}

func (a *App) viewDocuments() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("대출 서류"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("분류: %s (tab)\n", selectedStyle.Render(docTypeLabel(docTypeFacets[a.docTypeIdx]))))
	b.WriteString(a.docSearch.View())
	b.WriteString("\n\n")

	docs := loan.FilterDocuments(a.documents, docTypeFacets[a.docTypeIdx], a.docSearch.Value())
	if len(docs) == 0 {
		b.WriteString(mutedStyle.Render("조건에 맞는 서류가 없습니다.\n"))
	}
	for _, d := range docs {
		b.WriteString(fmt.Sprintf("  %s  %s  %s · %s\n",
			d.Title, mutedStyle.Render(docTypeLabel(string(d.Type))),
			mutedStyle.Render(formatDotDate(d.IssueDate)), mutedStyle.Render(d.FileSize)))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab 분류 변경 · esc 대출 관리"))
	return b.String()
}

func docTypeLabel(t string) string {
	switch t {
	case string(model.DocumentContract):
		return "계약서"
	case string(model.DocumentStatement):
		return "명세서"
	case string(model.DocumentCertificate):
		return "증명서"
	case string(model.DocumentNotice):
		return "안내문"
	default:
		return "전체"
	}
}

func (a *App) viewCard() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("체크카드 신청"))
	b.WriteString("\n")

	switch a.cardApp.Stage() {
	case card.StageSelect:
		for i, p := range a.products {
			name := p.Image + " " + p.Name
			if p.Popular {
				name += " " + selectedStyle.Render("[인기]")
			}
			fee := "연회비 없음"
			if p.AnnualFee.IsPositive() {
				fee = "연회비 " + formatWon(p.AnnualFee)
			}
			block := fmt.Sprintf("%s\n%s\n%s · 한도 %s\n혜택: %s",
				name, mutedStyle.Render(p.Description), fee, p.CreditLimit,
				strings.Join(p.Benefits, ", "))
			if i == a.cardCursor {
				b.WriteString(boxStyle.BorderForeground(colorAccent).Render(block))
			} else {
				b.WriteString(boxStyle.Render(block))
			}
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("↑/↓ 이동 · enter 신청 · esc 홈"))

	case card.StageInfo:
		product, _ := a.cardApp.Selected()
		b.WriteString(mutedStyle.Render(product.Name))
		b.WriteString("\n\n")
		for i, label := range cardFieldLabels {
			marker := "  "
			if i == a.cardFocus {
				marker = selectedStyle.Render("> ")
			}
			b.WriteString(fmt.Sprintf("%s%s\n%s\n", marker, label, a.cardInputs[i].View()))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab 다음 필드 · 마지막 필드에서 enter 제출 · esc 카드 선택"))

	default:
		product, _ := a.cardApp.Selected()
		info := a.cardApp.Applicant()
		block := fmt.Sprintf("신청 카드  %s\n이름       %s\n연락처     %s\n이메일     %s",
			product.Name, info.Name, info.Phone, info.Email)
		b.WriteString(dialogStyle.Render("신청 내용을 확인해 주세요.\n\n" + block + "\n\n" +
			helpStyle.Render("y 신청 완료 · n 돌아가기")))
	}
	return b.String()
}

// mustDecimal parses a validated form amount; the zero value covers any
// stray unparsed input.
func mustDecimal(s string) decimal.Decimal {
	d, err := parseDecimal(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
