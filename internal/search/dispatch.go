// Package search turns a tagged backend search response into either a
// navigation or a surfaced message. It never performs I/O itself.
package search

import (
	"encoding/json"

	"github.com/JunhyunKang/mock-sol/internal/api"
	"github.com/JunhyunKang/mock-sol/internal/model"
	"github.com/JunhyunKang/mock-sol/internal/router"
)

// FallbackMessage is surfaced when the backend gives no usable answer.
const FallbackMessage = "요청을 이해하지 못했어요. 다른 표현으로 다시 시도해 주세요."

// Outcome is the closed result sum of a dispatch: either navigate with a
// payload, or surface a message without navigating.
type Outcome interface {
	outcome()
}

// Navigation moves the UI to a screen, optionally with prefill.
type Navigation struct {
	Screen  router.Screen
	Payload router.Payload
}

func (Navigation) outcome() {}

// Notice surfaces a message instead of navigating.
type Notice struct {
	Message string
}

func (Notice) outcome() {}

// menuRoutes maps backend redirect paths to screens. Menu navigations
// carry no payload.
var menuRoutes = map[string]router.Screen{
	"/transfer":            router.ScreenTransfer,
	"/history":             router.ScreenHistory,
	"/exchange":            router.ScreenExchange,
	"/exchange/calculator": router.ScreenExchangeCalculator,
	"/exchange/alerts":     router.ScreenExchangeAlerts,
	"/loan":                router.ScreenLoan,
	"/loan/calculator":     router.ScreenLoanCalculator,
	"/loan/documents":      router.ScreenLoanDocuments,
	"/card":                router.ScreenCardApplication,
}

// Dispatch interprets a search response. A nil or unsuccessful response,
// an unrecognized tag, an unknown menu path, or undecodable screen data
// all degrade to a Notice; only well-formed tagged responses navigate.
func Dispatch(resp *api.SearchResponse) Outcome {
	if resp == nil || !resp.Success {
		return Notice{Message: messageOr(resp, FallbackMessage)}
	}

	switch resp.ActionType {
	case api.ActionTransfer:
		var data api.TransferScreenData
		if err := json.Unmarshal(resp.ScreenData, &data); err != nil {
			return Notice{Message: FallbackMessage}
		}
		return Navigation{
			Screen: router.ScreenTransfer,
			Payload: router.TransferPrefill{
				RecipientName:      data.RecipientName,
				RecipientAccount:   data.RecipientAccount,
				RecipientBank:      data.RecipientBank,
				Amount:             data.Amount,
				Currency:           data.Currency,
				LastTransferDate:   data.LastTransferDate,
				LastTransferAmount: data.LastTransferAmount,
			},
		}

	case api.ActionSearch:
		var data api.SearchScreenData
		if err := json.Unmarshal(resp.ScreenData, &data); err != nil {
			return Notice{Message: FallbackMessage}
		}
		payload := router.HistorySearch{
			Merchant:  data.Merchant,
			Recipient: data.Recipient,
			Type:      model.TypeFilter(data.Type),
		}
		for _, r := range data.Transactions {
			payload.Transactions = append(payload.Transactions, r.Domain())
		}
		return Navigation{Screen: router.ScreenHistory, Payload: payload}

	case api.ActionMenu:
		if screen, ok := menuRoutes[resp.RedirectURL]; ok {
			return Navigation{Screen: screen}
		}
		return Notice{Message: messageOr(resp, FallbackMessage)}

	default:
		return Notice{Message: messageOr(resp, FallbackMessage)}
	}
}

func messageOr(resp *api.SearchResponse, fallback string) string {
	if resp != nil && resp.Message != "" {
		return resp.Message
	}
	return fallback
}
