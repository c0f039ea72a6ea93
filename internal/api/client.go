// Package api is the thin HTTP client to the placeholder backend. Any
// non-2xx status is a hard failure; there is no retry, timeout, or
// cancellation policy on this boundary.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/JunhyunKang/mock-sol/internal/config"
	"github.com/JunhyunKang/mock-sol/internal/model"
)

// Client calls the mock banking backend.
type Client struct {
	baseURL string
	userID  string
	httpc   *http.Client
	log     *zap.Logger
}

// NewClient creates a Client from config. A nil logger means no logging.
func NewClient(cfg config.APIConfig, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	userID := cfg.UserID
	if userID == "" {
		userID = config.DefaultUserID
	}
	return &Client{
		baseURL: cfg.BaseURL,
		userID:  userID,
		httpc:   &http.Client{},
		log:     log,
	}
}

// UserID returns the configured user identifier.
func (c *Client) UserID() string {
	return c.userID
}

// UserInfo fetches the account holder summary. An empty userID falls back
// to the client's configured id.
func (c *Client) UserInfo(ctx context.Context, userID string) (model.UserInfo, error) {
	if userID == "" {
		userID = c.userID
	}

	params := url.Values{}
	params.Add("user_id", userID)

	var resp userInfoResponse
	if err := c.get(ctx, "/api/user/info?"+params.Encode(), &resp); err != nil {
		c.log.Warn("user info fetch failed", zap.String("user_id", userID), zap.Error(err))
		return model.UserInfo{}, err
	}

	return model.UserInfo{
		Name:          resp.Name,
		AccountNumber: resp.AccountNumber,
		BankName:      resp.BankName,
		Balance:       resp.Balance,
	}, nil
}

// Search submits a free-text query and returns the backend's routing
// decision.
func (c *Client) Search(ctx context.Context, query string) (*SearchResponse, error) {
	body, err := json.Marshal(SearchRequest{Query: query, UserID: c.userID})
	if err != nil {
		return nil, fmt.Errorf("encoding search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp SearchResponse
	if err := c.do(req, &resp); err != nil {
		c.log.Warn("search failed", zap.String("query", query), zap.Error(err))
		return nil, err
	}

	c.log.Info("search dispatched",
		zap.String("query", query),
		zap.String("action_type", string(resp.ActionType)))
	return &resp, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
