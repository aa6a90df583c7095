// Package service defines contracts for domain services whose concrete
// implementations live in the infrastructure layer.
package service

import (
	"context"
	"errors"
)

// ErrEmailExists signals that the identity directory already holds an account
// for the given email. Callers classify this as a conflict, everything else
// coming out of the directory as an upstream failure.
var ErrEmailExists = errors.New("identity account with this email already exists")

// ErrAccountUnknown signals that a group assignment targeted an account id the
// directory does not know.
var ErrAccountUnknown = errors.New("identity account not found")

// IdentityDirectory is the external system of record for credentials and
// group membership. The application layer depends only on this contract.
type IdentityDirectory interface {
	// CreateAccount provisions a new account with minimal attributes and
	// returns its directory-assigned id. Fails with ErrEmailExists when the
	// email is already registered.
	CreateAccount(ctx context.Context, email, password string, attributes map[string]string) (string, error)

	// AddAccountToGroup assigns an existing account to a role group.
	AddAccountToGroup(ctx context.Context, accountID, groupName string) error
}
