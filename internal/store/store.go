// Package store defines the datastore abstraction for c2c-market.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"

	domain "github.com/okonkwoe/c2c-market/pkg/types"
)

// Sentinel errors mapped from database conditions. Handlers translate
// these into the HTTP error taxonomy.
var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when a user email collides with an
	// existing account.
	ErrDuplicateEmail = errors.New("email already registered")
)

// Store defines all data access operations for c2c-market.
type Store interface {
	// Users
	CreateUser(ctx context.Context, u *domain.User) error
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, u *domain.User) error

	// Profiles
	CreateProfile(ctx context.Context, p *domain.Profile) error
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, p *domain.Profile) error

	// Auth tokens
	GetOrCreateToken(ctx context.Context, userID, key string) (string, error)
	GetUserByToken(ctx context.Context, key string) (*domain.User, error)

	// Items
	CreateItem(ctx context.Context, i *domain.Item) error
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	ListItemsByOwner(ctx context.Context, userID string) ([]domain.Item, error)
	ListUnsoldItems(ctx context.Context) ([]domain.Item, error)
	UpdateItem(ctx context.Context, i *domain.Item) error
	DeleteItem(ctx context.Context, id string) error
	MarkItemSold(ctx context.Context, id string) (*domain.Item, error)

	// Buyers
	AddBuyer(ctx context.Context, itemID string, b *domain.Buyer) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
