// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"greenmarket/internal/domain/entity"
)

// --- Input DTOs ---

// CreateMerchantInput defines the data required to list a new merchant.
// Structural validation is driven by the validate tags; id, status, rating and
// timestamps are always server-assigned.
type CreateMerchantInput struct {
	BusinessName    string               `json:"businessName" validate:"required"`
	TradingName     string               `json:"tradingName"`
	Description     string               `json:"description" validate:"required"`
	PrimaryCategory string               `json:"primaryCategory" validate:"required,category"`
	CategoryTags    []string             `json:"categoryTags" validate:"omitempty,max=4,dive,category"`
	Location        LocationInput        `json:"location"`
	Contact         ContactInput         `json:"contact"`
	Services        []ServiceInput       `json:"services" validate:"omitempty,max=10,dive"`
	OperatingHours  []OperatingHoursInput `json:"operatingHours" validate:"omitempty,max=7,dive"`
}

// LocationInput is the request shape of a merchant location.
type LocationInput struct {
	Address    string  `json:"address" validate:"required"`
	City       string  `json:"city" validate:"required"`
	State      string  `json:"state"`
	PostalCode string  `json:"postalCode"`
	Latitude   float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude  float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// ContactInput is the request shape of a merchant's contact channels.
type ContactInput struct {
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Website string `json:"website" validate:"omitempty,url"`
}

// ServiceInput is the request shape of one offered service.
type ServiceInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// OperatingHoursInput is the request shape of one operating-hours entry.
type OperatingHoursInput struct {
	Day    string `json:"day" validate:"required"`
	Opens  string `json:"opens" validate:"required"`
	Closes string `json:"closes" validate:"required"`
}

// UpdateMerchantInput carries a sparse update: only non-nil fields are
// applied. Nested objects replace their stored counterpart wholesale.
type UpdateMerchantInput struct {
	BusinessName    *string                `json:"businessName,omitempty"`
	TradingName     *string                `json:"tradingName,omitempty"`
	Description     *string                `json:"description,omitempty"`
	PrimaryCategory *string                `json:"primaryCategory,omitempty" validate:"omitempty,category"`
	CategoryTags    *[]string              `json:"categoryTags,omitempty" validate:"omitempty,max=4,dive,category"`
	Status          *string                `json:"verificationStatus,omitempty"`
	Location        *LocationInput         `json:"location,omitempty"`
	Contact         *ContactInput          `json:"contact,omitempty"`
	Services        *[]ServiceInput        `json:"services,omitempty" validate:"omitempty,max=10,dive"`
	Rating          *RatingInput           `json:"rating,omitempty"`
	OperatingHours  *[]OperatingHoursInput `json:"operatingHours,omitempty" validate:"omitempty,max=7,dive"`
}

// RatingInput is the request shape of the rating aggregate.
type RatingInput struct {
	Average float64 `json:"average" validate:"gte=0,lte=5"`
	Count   int     `json:"count" validate:"gte=0"`
}

// --- Output DTOs ---

// SearchOutput returns every merchant matching a category query. Order is
// whatever the secondary index yields and is not guaranteed stable.
type SearchOutput struct {
	Merchants []*entity.Merchant
	Count     int
	Category  entity.Category
}

// DirectoryUsecase defines the interface for merchant-directory operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type DirectoryUsecase interface {
	CreateMerchant(ctx context.Context, input *CreateMerchantInput) (*entity.Merchant, error)
	GetMerchant(ctx context.Context, id string) (*entity.Merchant, error)
	UpdateMerchant(ctx context.Context, id string, input *UpdateMerchantInput) (*entity.Merchant, error)
	DeleteMerchant(ctx context.Context, id string) error
	SearchByCategory(ctx context.Context, category string) (*SearchOutput, error)
}
