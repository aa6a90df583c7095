// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"greenmarket/internal/domain/entity"
)

// ErrMerchantNotFound is a domain-specific error returned when a mutation or
// lookup targets a merchant id that has no stored record.
var ErrMerchantNotFound = errors.New("merchant not found")

// ErrMerchantExists is returned when a conditional create collides with an
// existing record for the same id.
var ErrMerchantExists = errors.New("merchant already exists")

// MerchantPatch is the typed update contract of the directory: only non-nil
// fields are written. Nested objects are replaced wholesale, not merged.
// The storage layer keeps the secondary-index key in lockstep whenever
// PrimaryCategory is set.
type MerchantPatch struct {
	BusinessName    *string
	TradingName     *string
	Description     *string
	PrimaryCategory *entity.Category
	CategoryTags    *entity.Categories
	Status          *entity.VerificationStatus
	Location        *entity.Location
	Contact         *entity.Contact
	Services        *[]entity.OfferedService
	Rating          *entity.Rating
	OperatingHours  *[]entity.OperatingHours
}

// IsEmpty reports whether the patch sets no fields at all.
func (p *MerchantPatch) IsEmpty() bool {
	return p.BusinessName == nil && p.TradingName == nil && p.Description == nil &&
		p.PrimaryCategory == nil && p.CategoryTags == nil && p.Status == nil &&
		p.Location == nil && p.Contact == nil && p.Services == nil &&
		p.Rating == nil && p.OperatingHours == nil
}

// MerchantRepository defines the standard operations for merchant persistence.
// The application layer will depend on this interface, not the concrete implementation.
type MerchantRepository interface {
	// Create persists a new merchant. The write is guarded on "id must not
	// already exist" and fails with ErrMerchantExists otherwise.
	Create(ctx context.Context, merchant *entity.Merchant) error

	// FindByID retrieves a single merchant by its unique ID.
	// Returns ErrMerchantNotFound when no record exists.
	FindByID(ctx context.Context, id string) (*entity.Merchant, error)

	// Update applies a sparse patch to an existing merchant, always refreshing
	// UpdatedAt, and returns the post-update state. The write is guarded on
	// "id must already exist" and fails with ErrMerchantNotFound otherwise.
	Update(ctx context.Context, id string, patch *MerchantPatch) (*entity.Merchant, error)

	// Delete removes a merchant record for good. The write is guarded on
	// "id must already exist" and fails with ErrMerchantNotFound otherwise.
	Delete(ctx context.Context, id string) error

	// FindByCategory returns every merchant whose derived index key equals the
	// category, in whatever order the index yields. An empty result is not an error.
	FindByCategory(ctx context.Context, category entity.Category) ([]*entity.Merchant, error)
}
