package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/okonkwoe/c2c-market/pkg/types"
)

const defaultPoolSize = 10

// pgUniqueViolation is the Postgres error code for unique constraint breaks.
const pgUniqueViolation = "23505"

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// CreateUser inserts a new user. A colliding email yields ErrDuplicateEmail.
func (s *PostgresStore) CreateUser(ctx context.Context, u *domain.User) error {
	args := pgx.NamedArgs{
		"id":            u.ID,
		"email":         u.Email,
		"password_hash": u.PasswordHash,
		"is_active":     u.IsActive,
		"is_staff":      u.IsStaff,
	}

	err := s.pool.QueryRow(ctx, queryCreateUser, args).Scan(&u.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by primary key.
func (s *PostgresStore) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.getUser(ctx, queryGetUserByID, id)
}

// GetUserByEmail retrieves a user by email.
func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getUser(ctx, queryGetUserByEmail, email)
}

// UpdateUser updates the mutable user fields (email and password hash).
func (s *PostgresStore) UpdateUser(ctx context.Context, u *domain.User) error {
	tag, err := s.pool.Exec(ctx, queryUpdateUser, u.ID, u.Email, u.PasswordHash)
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateProfile inserts the profile row for a user.
func (s *PostgresStore) CreateProfile(ctx context.Context, p *domain.Profile) error {
	_, err := s.pool.Exec(ctx, queryCreateProfile,
		p.UserID, p.FirstName, p.LastName, p.StateOfResidence,
	)
	if err != nil {
		return fmt.Errorf("creating profile: %w", err)
	}
	return nil
}

// GetProfile retrieves a user's profile, with the account email joined in.
func (s *PostgresStore) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	p := &domain.Profile{}
	err := s.pool.QueryRow(ctx, queryGetProfile, userID).Scan(
		&p.UserID, &p.Email, &p.FirstName, &p.LastName, &p.StateOfResidence,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}
	return p, nil
}

// UpdateProfile updates a user's profile fields.
func (s *PostgresStore) UpdateProfile(ctx context.Context, p *domain.Profile) error {
	tag, err := s.pool.Exec(ctx, queryUpdateProfile,
		p.UserID, p.FirstName, p.LastName, p.StateOfResidence,
	)
	if err != nil {
		return fmt.Errorf("updating profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetOrCreateToken returns the user's current token key, inserting the
// provided key only when the user does not hold one yet.
func (s *PostgresStore) GetOrCreateToken(ctx context.Context, userID, key string) (string, error) {
	var got string
	if err := s.pool.QueryRow(ctx, queryInsertTokenIfAbsent, userID, key).Scan(&got); err != nil {
		return "", fmt.Errorf("issuing token: %w", err)
	}
	return got, nil
}

// GetUserByToken resolves an opaque token key to its user.
func (s *PostgresStore) GetUserByToken(ctx context.Context, key string) (*domain.User, error) {
	return s.getUser(ctx, queryGetUserByToken, key)
}

// CreateItem inserts a new item owned by i.UserID.
func (s *PostgresStore) CreateItem(ctx context.Context, i *domain.Item) error {
	args := pgx.NamedArgs{
		"id":          i.ID,
		"user_id":     i.UserID,
		"name":        i.Name,
		"price":       i.Price,
		"description": i.Description,
		"url":         i.URL,
	}

	err := s.pool.QueryRow(ctx, queryCreateItem, args).Scan(
		&i.IsSold, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating item: %w", err)
	}

	i.Buyers = []domain.Buyer{}
	return nil
}

// GetItem retrieves an item with its buyer-interest list.
func (s *PostgresStore) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	i := &domain.Item{}
	err := scanItem(s.pool.QueryRow(ctx, queryGetItem, id), i)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}

	buyers, err := s.listBuyers(ctx, id)
	if err != nil {
		return nil, err
	}
	i.Buyers = buyers

	return i, nil
}

// ListItemsByOwner returns all of a user's items, sold or not, oldest first.
func (s *PostgresStore) ListItemsByOwner(ctx context.Context, userID string) ([]domain.Item, error) {
	return s.queryItems(ctx, queryListItemsByOwner, userID)
}

// ListUnsoldItems returns all unsold items, newest first.
func (s *PostgresStore) ListUnsoldItems(ctx context.Context) ([]domain.Item, error) {
	return s.queryItems(ctx, queryListUnsoldItems)
}

// UpdateItem persists the mutable item fields, the sold flag included.
// The owner is never touched here; the one-way sold transition is enforced
// above the store.
func (s *PostgresStore) UpdateItem(ctx context.Context, i *domain.Item) error {
	err := s.pool.QueryRow(ctx, queryUpdateItem,
		i.ID, i.Name, i.Price, i.Description, i.URL, i.IsSold,
	).Scan(&i.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	return nil
}

// GetBuyer retrieves a buyer record by primary key. Buyers outlive the
// items they expressed interest in.
func (s *PostgresStore) GetBuyer(ctx context.Context, id string) (*domain.Buyer, error) {
	b := &domain.Buyer{}
	err := s.pool.QueryRow(ctx, queryGetBuyer, id).Scan(
		&b.ID, &b.Name, &b.Email, &b.Location, &b.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting buyer: %w", err)
	}
	return b, nil
}

// DeleteItem removes an item. Interest associations cascade; buyer rows stay.
func (s *PostgresStore) DeleteItem(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteItem, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkItemSold sets is_sold unconditionally and returns the updated item.
// Re-marking a sold item is a no-op that still succeeds.
func (s *PostgresStore) MarkItemSold(ctx context.Context, id string) (*domain.Item, error) {
	i := &domain.Item{}
	err := scanItem(s.pool.QueryRow(ctx, queryMarkItemSold, id), i)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("marking item sold: %w", err)
	}

	buyers, err := s.listBuyers(ctx, id)
	if err != nil {
		return nil, err
	}
	i.Buyers = buyers

	return i, nil
}

// AddBuyer inserts a buyer row and its association to the item atomically.
func (s *PostgresStore) AddBuyer(ctx context.Context, itemID string, b *domain.Buyer) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if err := tx.QueryRow(ctx, queryCreateBuyer,
		b.ID, b.Name, b.Email, b.Location,
	).Scan(&b.CreatedAt); err != nil {
		return fmt.Errorf("creating buyer: %w", err)
	}

	if _, err := tx.Exec(ctx, queryLinkBuyerToItem, itemID, b.ID); err != nil {
		return fmt.Errorf("linking buyer to item: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing buyer: %w", err)
	}
	return nil
}

// getUser is a helper for single-user queries.
func (s *PostgresStore) getUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	u := &domain.User{}
	err := s.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.IsActive, &u.IsStaff, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return u, nil
}

// queryItems runs an item list query and loads each item's buyers.
func (s *PostgresStore) queryItems(ctx context.Context, query string, args ...any) ([]domain.Item, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var i domain.Item
		if err := scanItem(rows, &i); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}

	for idx := range items {
		buyers, err := s.listBuyers(ctx, items[idx].ID)
		if err != nil {
			return nil, err
		}
		items[idx].Buyers = buyers
	}

	return items, nil
}

// listBuyers returns an item's buyers in interest order, never nil.
func (s *PostgresStore) listBuyers(ctx context.Context, itemID string) ([]domain.Buyer, error) {
	rows, err := s.pool.Query(ctx, queryListBuyersForItem, itemID)
	if err != nil {
		return nil, fmt.Errorf("querying buyers: %w", err)
	}
	defer rows.Close()

	buyers := []domain.Buyer{}
	for rows.Next() {
		var b domain.Buyer
		if err := rows.Scan(&b.ID, &b.Name, &b.Email, &b.Location, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning buyer: %w", err)
		}
		buyers = append(buyers, b)
	}

	return buyers, rows.Err()
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

// scanItem scans a full item row.
func scanItem(row scannable, i *domain.Item) error {
	return row.Scan(
		&i.ID, &i.UserID, &i.Name, &i.Price, &i.Description, &i.URL,
		&i.IsSold, &i.CreatedAt, &i.UpdatedAt,
	)
}

// isUniqueViolation reports whether err is a Postgres unique constraint error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
