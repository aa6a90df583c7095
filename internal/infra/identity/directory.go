// Package identity provides the wired implementation of the identity-directory
// collaborator. The in-memory directory favors clarity over performance; real
// deployments substitute a managed directory behind the same interface.
package identity

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"greenmarket/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type account struct {
	id           string
	email        string
	passwordHash string
	attributes   map[string]string
	groups       []string
}

// Directory is an in-memory identity directory guarded by a RWMutex.
// Accounts are auto-confirmed on creation, so no confirmation code is ever
// delivered.
type Directory struct {
	mu       sync.RWMutex
	accounts map[string]*account // keyed by account id
	byEmail  map[string]string   // normalized email -> account id
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// Params holds dependencies for Directory, injected by Fx.
type Params struct {
	fx.In

	Hasher service.PasswordHasher
	Logger *slog.Logger
}

// NewDirectory is the constructor for Directory, returned as the
// service.IdentityDirectory interface.
func NewDirectory(params Params) service.IdentityDirectory {
	return &Directory{
		accounts: make(map[string]*account),
		byEmail:  make(map[string]string),
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

// CreateAccount provisions a new account. The email-exists pre-check doubles
// as the idempotency guard against registration retries.
func (d *Directory) CreateAccount(_ context.Context, email, password string, attributes map[string]string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(email))

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.byEmail[key]; ok {
		return "", errors.Wrap(service.ErrEmailExists, "create account")
	}

	hash, err := d.hasher.Hash(password)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash account password")
	}

	attrs := make(map[string]string, len(attributes))
	for k, v := range attributes {
		attrs[k] = v
	}

	acc := &account{
		id:           uuid.New().String(),
		email:        key,
		passwordHash: hash,
		attributes:   attrs,
	}
	d.accounts[acc.id] = acc
	d.byEmail[key] = acc.id

	d.logger.Debug("Identity account created", slog.String("accountID", acc.id))

	return acc.id, nil
}

// AddAccountToGroup assigns an existing account to a role group. Assigning the
// same group twice is a no-op.
func (d *Directory) AddAccountToGroup(_ context.Context, accountID, groupName string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	acc, ok := d.accounts[accountID]
	if !ok {
		return errors.Wrapf(service.ErrAccountUnknown, "add account %s to group %s", accountID, groupName)
	}

	for _, g := range acc.groups {
		if g == groupName {
			return nil
		}
	}
	acc.groups = append(acc.groups, groupName)

	return nil
}

// GroupsOf reports the groups an account belongs to. Absent accounts yield nil.
func (d *Directory) GroupsOf(accountID string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	acc, ok := d.accounts[accountID]
	if !ok {
		return nil
	}

	groups := make([]string, len(acc.groups))
	copy(groups, acc.groups)

	return groups
}

// CheckCredentials verifies an email/password pair, for collaborators that
// need to authenticate against the directory.
func (d *Directory) CheckCredentials(email, password string) bool {
	key := strings.ToLower(strings.TrimSpace(email))

	d.mu.RLock()
	defer d.mu.RUnlock()

	id, ok := d.byEmail[key]
	if !ok {
		return false
	}

	return d.hasher.Check(password, d.accounts[id].passwordHash)
}
