package miniappsdk

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client is a client for the Kompanion mini-app service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new API client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetLiveness calls GET /health.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness calls GET /readyz.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// UpsertProfile calls POST /api/profile and returns the stored profile.
func (c *Client) UpsertProfile(ctx context.Context, req ProfileRequest) (*Profile, error) {
	resp, err := c.postJSON(ctx, "/api/profile", req)
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := decodeJSON(resp, &profile, http.StatusOK); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListUsers calls GET /api/users.
func (c *Client) ListUsers(ctx context.Context) ([]Profile, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/users", nil)
	if err != nil {
		return nil, err
	}

	var users []Profile
	if err := decodeJSON(resp, &users, http.StatusOK); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateInvite calls POST /api/invite. Re-submitting an already-pending pair
// returns the existing invite unchanged.
func (c *Client) CreateInvite(ctx context.Context, fromTgID, toTgID int64) (*Invite, error) {
	resp, err := c.postJSON(ctx, "/api/invite", InviteRequest{
		FromTgID: fromTgID,
		ToTgID:   toTgID,
	})
	if err != nil {
		return nil, err
	}

	var invite Invite
	if err := decodeJSON(resp, &invite, http.StatusOK); err != nil {
		return nil, err
	}
	return &invite, nil
}

// ListInvites calls GET /api/invites?tg_id= for the given identity.
func (c *Client) ListInvites(ctx context.Context, tgID int64) ([]Invite, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/invites?tg_id=%d", tgID), nil)
	if err != nil {
		return nil, err
	}

	var invites []Invite
	if err := decodeJSON(resp, &invites, http.StatusOK); err != nil {
		return nil, err
	}
	return invites, nil
}

// SendMessage calls POST /api/messages.
func (c *Client) SendMessage(ctx context.Context, fromTgID, toTgID int64, text string) (*Message, error) {
	resp, err := c.postJSON(ctx, "/api/messages", MessageRequest{
		FromTgID: fromTgID,
		ToTgID:   toTgID,
		Text:     text,
	})
	if err != nil {
		return nil, err
	}

	var message Message
	if err := decodeJSON(resp, &message, http.StatusOK); err != nil {
		return nil, err
	}
	return &message, nil
}

// GetChat calls GET /api/chat?user1=&user2= and returns the full transcript
// between the unordered pair, oldest first.
func (c *Client) GetChat(ctx context.Context, user1, user2 int64) ([]Message, error) {
	resp, err := c.doRequest(ctx, http.MethodGet,
		fmt.Sprintf("/api/chat?user1=%d&user2=%d", user1, user2), nil)
	if err != nil {
		return nil, err
	}

	var messages []Message
	if err := decodeJSON(resp, &messages, http.StatusOK); err != nil {
		return nil, err
	}
	return messages, nil
}

// AddBalance calls POST /api/balance/add. Amount may be negative.
func (c *Client) AddBalance(ctx context.Context, tgID int64, amount float64) (*BalanceResponse, error) {
	resp, err := c.postJSON(ctx, "/api/balance/add", BalanceChangeRequest{
		TgID:   tgID,
		Amount: amount,
	})
	if err != nil {
		return nil, err
	}

	var balance BalanceResponse
	if err := decodeJSON(resp, &balance, http.StatusOK); err != nil {
		return nil, err
	}
	return &balance, nil
}

// SetSubscription calls POST /api/subscribe.
func (c *Client) SetSubscription(ctx context.Context, tgID int64, active bool) (*BalanceResponse, error) {
	resp, err := c.postJSON(ctx, "/api/subscribe", SubscriptionRequest{
		TgID:   tgID,
		Active: &active,
	})
	if err != nil {
		return nil, err
	}

	var balance BalanceResponse
	if err := decodeJSON(resp, &balance, http.StatusOK); err != nil {
		return nil, err
	}
	return &balance, nil
}
