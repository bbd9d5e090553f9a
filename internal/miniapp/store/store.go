package store

import (
	"context"
	"errors"

	"github.com/kompanion-app/kompanion/internal/miniapp/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("store: not found")

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
//
// Every operation is a single statement. There is deliberately no transaction
// surface: the read-then-write sequences in the services (invite idempotency,
// the mutual-invite gate) run unguarded, matching the original behavior. The
// duplicate-pending-invite race under concurrent submission is a known,
// accepted outcome.
type Store interface {
	Users() Users
	Invites() Invites
	Messages() Messages

	// ApplyMigrations brings the schema up to date. Call once at startup.
	ApplyMigrations() error

	// Close releases the underlying database handle.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// GetByID returns a user by primary key.
	GetByID(ctx context.Context, id int64) (domain.User, error)

	// GetByTgID returns a user by Telegram identity.
	GetByTgID(ctx context.Context, tgID int64) (domain.User, error)

	// Insert creates a profile row with default balance and subscription,
	// returning the new primary key.
	Insert(ctx context.Context, u domain.User) (int64, error)

	// UpdateProfile overwrites the mutable profile fields of the row keyed by
	// u.TgID. Balance and subscription are left untouched.
	UpdateProfile(ctx context.Context, u domain.User) error

	// List returns every user, most recently created first.
	List(ctx context.Context) ([]domain.User, error)

	// AddBalance adds amount (possibly negative) to the stored balance,
	// treating a null balance as zero. Single statement; the store's
	// single-writer execution serializes it.
	AddBalance(ctx context.Context, tgID int64, amount float64) error

	// SetSubscribed flips the subscription flag.
	SetSubscribed(ctx context.Context, tgID int64, active bool) error
}

type Invites interface {
	// GetPending returns the pending invite for the exact ordered pair.
	GetPending(ctx context.Context, fromTgID, toTgID int64) (domain.Invite, error)

	// Create inserts a new pending invite and returns its primary key.
	Create(ctx context.Context, fromTgID, toTgID int64) (int64, error)

	// GetByID returns an invite by primary key.
	GetByID(ctx context.Context, id int64) (domain.Invite, error)

	// ListForUser returns every invite where tgID is sender or receiver,
	// newest first.
	ListForUser(ctx context.Context, tgID int64) ([]domain.Invite, error)
}

type Messages interface {
	// Create inserts a message and returns its primary key.
	Create(ctx context.Context, fromTgID, toTgID int64, text string) (int64, error)

	// GetByID returns a message by primary key.
	GetByID(ctx context.Context, id int64) (domain.Message, error)

	// ListBetween returns all messages exchanged between the unordered pair,
	// oldest first.
	ListBetween(ctx context.Context, a, b int64) ([]domain.Message, error)
}
