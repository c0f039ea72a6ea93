package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JunhyunKang/mock-sol/internal/router"
)

func TestRouter_StartsAtHome(t *testing.T) {
	r := router.New()
	screen, payload := r.Current()
	assert.Equal(t, router.ScreenHome, screen)
	assert.Nil(t, payload)
}

func TestRouter_NavigateWithPayload(t *testing.T) {
	r := router.New()
	r.Navigate(router.ScreenTransfer, router.TransferPrefill{RecipientName: "홍길동"})

	screen, payload := r.Current()
	assert.Equal(t, router.ScreenTransfer, screen)

	prefill, ok := payload.(router.TransferPrefill)
	require.True(t, ok)
	assert.Equal(t, "홍길동", prefill.RecipientName)
}

func TestRouter_UnknownScreenFallsBackToHome(t *testing.T) {
	r := router.New()
	r.Navigate(router.ScreenLoan, nil)
	r.Navigate(router.Screen("settings"), router.TransferPrefill{})

	screen, payload := r.Current()
	assert.Equal(t, router.ScreenHome, screen)
	assert.Nil(t, payload, "fallback drops the payload too")
}

func TestRouter_BackDropsPayload(t *testing.T) {
	r := router.New()
	r.Navigate(router.ScreenHistory, router.HistorySearch{Merchant: "스타벅스"})

	r.Back()
	screen, payload := r.Current()
	assert.Equal(t, router.ScreenHome, screen)
	assert.Nil(t, payload)
}

func TestKnown(t *testing.T) {
	assert.True(t, router.Known(router.ScreenExchangeCalculator))
	assert.False(t, router.Known(router.Screen("settings")))
}
