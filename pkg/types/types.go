// Package domain defines the core business types for the c2c marketplace.
package domain

import (
	"time"
)

// Caller identifies who is making a request: an authenticated user
// (UserID set) or an anonymous visitor (zero value).
type Caller struct {
	UserID string
}

// Anonymous returns the caller value used for unauthenticated requests.
func Anonymous() Caller {
	return Caller{}
}

// Owner returns a caller for the given user ID.
func Owner(userID string) Caller {
	return Caller{UserID: userID}
}

// Authenticated reports whether the caller carries a user identity.
func (c Caller) Authenticated() bool {
	return c.UserID != ""
}

// User is an account holder. The password hash never leaves the store
// layer in API responses.
type User struct {
	ID           string    `json:"id"         db:"id"`
	Email        string    `json:"email"      db:"email"`
	PasswordHash string    `json:"-"          db:"password_hash"`
	IsActive     bool      `json:"is_active"  db:"is_active"`
	IsStaff      bool      `json:"is_staff"   db:"is_staff"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Profile holds the personal details attached to a user, one per account.
// Email is surfaced read-only from the user row.
type Profile struct {
	UserID           string `json:"user"               db:"user_id"`
	Email            string `json:"email"              db:"email"`
	FirstName        string `json:"first_name"         db:"first_name"`
	LastName         string `json:"last_name"          db:"last_name"`
	StateOfResidence string `json:"state_of_residence" db:"state_of_residence"`
}

// Item is a classified listing owned by the user who created it.
type Item struct {
	ID          string    `json:"id"          db:"id"`
	UserID      string    `json:"user"        db:"user_id"`
	Name        string    `json:"name"        db:"name"`
	Price       int64     `json:"price"       db:"price"`
	Description string    `json:"description" db:"description"`
	URL         string    `json:"url"         db:"url"`
	IsSold      bool      `json:"is_sold"     db:"is_sold"`
	Buyers      []Buyer   `json:"buyers"      db:"-"`
	CreatedAt   time.Time `json:"created_at"  db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"  db:"updated_at"`
}

// VisibleTo reports whether the caller may see this item. Owners see all
// of their own items; everyone else sees only unsold items. Update and
// delete use OwnedBy instead, so a non-owner's write surfaces as a
// not-found rather than revealing that the item exists.
func (i *Item) VisibleTo(c Caller) bool {
	if i.OwnedBy(c) {
		return true
	}
	return !i.IsSold
}

// OwnedBy reports whether the caller is the item's owner.
func (i *Item) OwnedBy(c Caller) bool {
	return c.Authenticated() && c.UserID == i.UserID
}

// Buyer is a party who expressed interest in an item. Buyers are not
// accounts: they carry only contact details and are never deduplicated,
// so the same email may appear on many rows.
type Buyer struct {
	ID        string    `json:"-"          db:"id"`
	Name      string    `json:"name"       db:"name"`
	Email     string    `json:"email"      db:"email"`
	Location  string    `json:"location"   db:"location"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
