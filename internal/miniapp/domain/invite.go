package domain

// InviteStatusPending is the only status the service ever writes or consults.
// The column allows other values but no transition is implemented.
const InviteStatusPending = "pending"

// Invite is a directional edge between two Telegram identities. CreatedAt is
// the store-generated text timestamp, passed through verbatim.
type Invite struct {
	ID        int64
	FromTgID  int64
	ToTgID    int64
	Status    string
	CreatedAt string
}
