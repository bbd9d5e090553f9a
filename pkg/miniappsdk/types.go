package miniappsdk

// ErrorResponse is the standard error body returned by every endpoint.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g., "invalid_request")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ProfileRequest is the body of POST /api/profile. TgID and FirstName are
// mandatory; every other field is optional and stored as null when omitted.
type ProfileRequest struct {
	TgID       int64   `json:"tg_id"`
	FirstName  string  `json:"first_name"`
	LastName   *string `json:"last_name,omitempty"`
	MiddleName *string `json:"middle_name,omitempty"`
	Age        *int64  `json:"age,omitempty"`
	About      *string `json:"about,omitempty"`
	Drinks     *string `json:"drinks,omitempty"`
	Topics     *string `json:"topics,omitempty"`
	Location   *string `json:"location,omitempty"`
}

// Profile is the full stored profile, returned by POST /api/profile and
// GET /api/users. Unset optional fields serialize as JSON null.
type Profile struct {
	ID         int64   `json:"id"`
	TgID       int64   `json:"tg_id"`
	FirstName  string  `json:"first_name"`
	LastName   *string `json:"last_name"`
	MiddleName *string `json:"middle_name"`
	Age        *int64  `json:"age"`
	About      *string `json:"about"`
	Drinks     *string `json:"drinks"`
	Topics     *string `json:"topics"`
	Location   *string `json:"location"`
	Balance    float64 `json:"balance"`
	Subscribed bool    `json:"is_subscribed"`
}

// InviteRequest is the body of POST /api/invite.
type InviteRequest struct {
	FromTgID int64 `json:"from_tg_id"`
	ToTgID   int64 `json:"to_tg_id"`
}

// Invite is a directional invite record. CreatedAt is the store-generated
// text timestamp.
type Invite struct {
	ID        int64  `json:"id"`
	FromTgID  int64  `json:"from_tg_id"`
	ToTgID    int64  `json:"to_tg_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// MessageRequest is the body of POST /api/messages.
type MessageRequest struct {
	FromTgID int64  `json:"from_tg_id"`
	ToTgID   int64  `json:"to_tg_id"`
	Text     string `json:"text"`
}

// Message is a stored chat message.
type Message struct {
	ID        int64  `json:"id"`
	FromTgID  int64  `json:"from_tg_id"`
	ToTgID    int64  `json:"to_tg_id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

// BalanceChangeRequest is the body of POST /api/balance/add. Amount may be
// negative.
type BalanceChangeRequest struct {
	TgID   int64   `json:"tg_id"`
	Amount float64 `json:"amount"`
}

// BalanceResponse is returned by POST /api/balance/add and POST /api/subscribe.
type BalanceResponse struct {
	TgID       int64   `json:"tg_id"`
	Balance    float64 `json:"balance"`
	Subscribed bool    `json:"is_subscribed"`
}

// SubscriptionRequest is the body of POST /api/subscribe. Active defaults to
// true when omitted.
type SubscriptionRequest struct {
	TgID   int64 `json:"tg_id"`
	Active *bool `json:"active,omitempty"`
}

// HealthResponse is returned by GET /health and GET /readyz. The readiness
// probe fills in Uptime, Version and Checks; the liveness probe reports only
// Status.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}
