package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JunhyunKang/mock-sol/internal/api"
	"github.com/JunhyunKang/mock-sol/internal/config"
)

func newClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.NewClient(config.APIConfig{BaseURL: srv.URL, UserID: "kim"}, nil)
}

func TestUserInfo(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/info", r.URL.Path)
		assert.Equal(t, "kim", r.URL.Query().Get("user_id"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"name":           "김신한",
			"account_number": "110-123-456789",
			"bank_name":      "신한은행",
			"balance":        1500000,
		})
	}))

	user, err := client.UserInfo(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "김신한", user.Name)
	assert.Equal(t, "신한은행", user.BankName)
	assert.True(t, user.Balance.Equal(decimal.NewFromInt(1500000)))
}

func TestUserInfo_ExplicitIDWins(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "other", r.URL.Query().Get("user_id"))
		_ = json.NewEncoder(w).Encode(map[string]any{"name": "x"})
	}))

	_, err := client.UserInfo(context.Background(), "other")
	require.NoError(t, err)
}

func TestUserInfo_ServerError(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.UserInfo(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error: 500")
}

func TestSearch(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/search", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.SearchRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "홍길동에게 5만원 보내줘", req.Query)
		assert.Equal(t, "kim", req.UserID)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":      true,
			"action_type":  "transfer",
			"redirect_url": "/transfer",
			"screen_data": map[string]any{
				"recipient_name": "홍길동",
				"amount":         50000,
			},
			"confidence": 0.95,
		})
	}))

	resp, err := client.Search(context.Background(), "홍길동에게 5만원 보내줘")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, api.ActionTransfer, resp.ActionType)
	assert.Equal(t, "/transfer", resp.RedirectURL)

	var data api.TransferScreenData
	require.NoError(t, json.Unmarshal(resp.ScreenData, &data))
	assert.Equal(t, "홍길동", data.RecipientName)
	assert.True(t, data.Amount.Equal(decimal.NewFromInt(50000)))
}

func TestSearch_MalformedJSON(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))

	_, err := client.Search(context.Background(), "query")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response")
}

func TestNewClient_EmptyUserIDFallsBack(t *testing.T) {
	client := api.NewClient(config.APIConfig{BaseURL: "http://localhost:8000"}, nil)
	assert.Equal(t, config.DefaultUserID, client.UserID())
}
