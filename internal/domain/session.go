package domain

import (
	"context"
	"errors"
)

var (
	ErrNoActiveSession  = errors.New("no active session")
	ErrVaultUnavailable = errors.New("session vault unavailable")
)

// Session represents the currently signed-in customer, or its absence when
// no session is active. A materialized Session always has IsLoggedIn set,
// a non-empty ID and a non-empty Email.
type Session struct {
	ID         string `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Country    string `json:"country"`
	IsLoggedIn bool   `json:"isLoggedIn"`
}

// Profile carries the fields a customer supplies at registration.
// ID and IsLoggedIn are owned by the session store, never by callers.
type Profile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Country   string `json:"country"`
}

// ProfileUpdate is a partial set of profile fields. Nil pointers mean
// "leave the current value alone"; set pointers overwrite.
type ProfileUpdate struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	City      *string `json:"city,omitempty"`
	Country   *string `json:"country,omitempty"`
}

// SessionVault defines the durable slot the serialized session lives in:
// a single key holding one string value. Load reports absence via the
// boolean, not an error.
type SessionVault interface {
	Load(ctx context.Context) (string, bool, error)
	Save(ctx context.Context, value string) error
	Clear(ctx context.Context) error
}
