// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"greenmarket/internal/domain/entity"
)

// ErrAccountNotFound is returned when a lookup targets a profile record that
// does not exist.
var ErrAccountNotFound = errors.New("account record not found")

// ErrAccountExists is returned when a conditional create collides with an
// existing profile record for the same account id. This is the guard that
// serializes double-registration races on retries.
var ErrAccountExists = errors.New("account record already exists")

// UserAccountRepository defines persistence for the profile records paired
// with identity-directory accounts.
type UserAccountRepository interface {
	// Create persists a new profile record, guarded on "record must not
	// already exist". Fails with ErrAccountExists otherwise.
	Create(ctx context.Context, account *entity.UserAccount) error

	// FindByID retrieves a profile record by the identity account id.
	// Returns ErrAccountNotFound when no record exists.
	FindByID(ctx context.Context, id string) (*entity.UserAccount, error)
}
