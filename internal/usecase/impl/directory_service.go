// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "greenmarket/internal/delivery/context"
	"greenmarket/internal/domain/entity"
	domainerrors "greenmarket/internal/domain/errors"
	"greenmarket/internal/domain/repository"
	"greenmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	merchantRepo repository.MerchantRepository
	logger       *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(
	merchantRepo repository.MerchantRepository,
	logger *slog.Logger,
) usecase.DirectoryUsecase {
	return &directoryService{
		merchantRepo: merchantRepo,
		logger:       logger,
	}
}

func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// validateCategories guards the closed category set here as well as at the
// delivery layer, so callers that bypass HTTP cannot write an off-set value
// into the index key. A nil primary means the field is not being set.
func validateCategories(primary *string, tags []string) error {
	if primary != nil && !entity.Category(*primary).IsValid() {
		return errors.Wrapf(
			domainerrors.ErrValidationFailed.WithDetails(
				"primaryCategory must be one of: Repair, Refill, Recycling, Donate",
			),
			"invalid category %q", *primary,
		)
	}
	for _, tag := range tags {
		if !entity.Category(tag).IsValid() {
			return errors.Wrapf(
				domainerrors.ErrValidationFailed.WithDetails(
					"categoryTags must contain only: Repair, Refill, Recycling, Donate",
				),
				"invalid category tag %q", tag,
			)
		}
	}

	return nil
}

// CreateMerchant lists a new merchant. The id is server-generated, the status
// starts Pending, the rating starts empty, and createdAt equals updatedAt.
func (srv *directoryService) CreateMerchant(ctx context.Context, input *usecase.CreateMerchantInput) (*entity.Merchant, error) {
	if err := validateCategories(&input.PrimaryCategory, input.CategoryTags); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	merchant := &entity.Merchant{
		ID:              uuid.New().String(),
		BusinessName:    input.BusinessName,
		TradingName:     input.TradingName,
		Description:     input.Description,
		PrimaryCategory: entity.Category(input.PrimaryCategory),
		Status:          entity.StatusPending,
		Location: entity.Location{
			Address:    input.Location.Address,
			City:       input.Location.City,
			State:      input.Location.State,
			PostalCode: input.Location.PostalCode,
			Latitude:   input.Location.Latitude,
			Longitude:  input.Location.Longitude,
		},
		Contact: entity.Contact{
			Phone:   input.Contact.Phone,
			Email:   normalizeEmail(input.Contact.Email),
			Website: input.Contact.Website,
		},
		Rating:    entity.Rating{Average: 0, Count: 0},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if len(input.CategoryTags) > 0 {
		merchant.CategoryTags = entity.CategoriesFromStrings(input.CategoryTags)
	}
	for _, s := range input.Services {
		merchant.Services = append(merchant.Services, entity.OfferedService{Name: s.Name, Description: s.Description})
	}
	for _, h := range input.OperatingHours {
		merchant.OperatingHours = append(merchant.OperatingHours, entity.OperatingHours{Day: h.Day, Opens: h.Opens, Closes: h.Closes})
	}

	if err := srv.merchantRepo.Create(ctx, merchant); err != nil {
		if errors.Is(err, repository.ErrMerchantExists) {
			// Unreachable with generated ids; the guard stays as the safety net.
			return nil, domainerrors.ErrMerchantAlreadyExists.WrapMessage("create merchant")
		}

		srv.log(ctx).Error("Failed to create merchant", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUpstreamFailed.WithDetails(err.Error()), "create merchant")
	}

	srv.log(ctx).Debug("Merchant created", slog.String("merchantID", merchant.ID))

	return merchant, nil
}

// GetMerchant is a single-key point lookup.
func (srv *directoryService) GetMerchant(ctx context.Context, id string) (*entity.Merchant, error) {
	merchant, err := srv.merchantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, domainerrors.ErrMerchantNotFound.WrapMessage("get merchant")
		}

		srv.log(ctx).Error("Failed to get merchant", slog.String("merchantID", id), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUpstreamFailed.WithDetails(err.Error()), "get merchant")
	}

	return merchant, nil
}

// UpdateMerchant applies a sparse patch and returns the post-update state.
func (srv *directoryService) UpdateMerchant(ctx context.Context, id string, input *usecase.UpdateMerchantInput) (*entity.Merchant, error) {
	if input.Status != nil && !entity.VerificationStatus(*input.Status).IsValid() {
		return nil, errors.Wrapf(
			domainerrors.ErrValidationFailed.WithDetails(
				"verificationStatus must be one of: Pending, Verified, Rejected",
			),
			"invalid verification status %q", *input.Status,
		)
	}

	var tags []string
	if input.CategoryTags != nil {
		tags = *input.CategoryTags
	}
	if err := validateCategories(input.PrimaryCategory, tags); err != nil {
		return nil, err
	}

	patch := buildPatch(input)
	if patch.IsEmpty() {
		srv.log(ctx).Debug("Merchant update carries no fields, refreshing updatedAt only", slog.String("merchantID", id))
	}

	merchant, err := srv.merchantRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, domainerrors.ErrMerchantNotFound.WrapMessage("update merchant")
		}

		srv.log(ctx).Error("Failed to update merchant", slog.String("merchantID", id), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUpstreamFailed.WithDetails(err.Error()), "update merchant")
	}

	srv.log(ctx).Debug("Merchant updated", slog.String("merchantID", id))

	return merchant, nil
}

// DeleteMerchant removes a listing for good; there is no tombstone.
func (srv *directoryService) DeleteMerchant(ctx context.Context, id string) error {
	if err := srv.merchantRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return domainerrors.ErrMerchantNotFound.WrapMessage("delete merchant")
		}

		srv.log(ctx).Error("Failed to delete merchant", slog.String("merchantID", id), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrUpstreamFailed.WithDetails(err.Error()), "delete merchant")
	}

	srv.log(ctx).Debug("Merchant deleted", slog.String("merchantID", id))

	return nil
}

// SearchByCategory returns every merchant indexed under the category. An
// empty result set is a count of zero, not an error. Geo filtering and
// ranking are left to the caller.
func (srv *directoryService) SearchByCategory(ctx context.Context, category string) (*usecase.SearchOutput, error) {
	cat := entity.Category(category)
	if !cat.IsValid() {
		return nil, errors.Wrapf(
			domainerrors.ErrValidationFailed.WithDetails(
				"category must be one of: Repair, Refill, Recycling, Donate",
			),
			"invalid category %q", category,
		)
	}

	merchants, err := srv.merchantRepo.FindByCategory(ctx, cat)
	if err != nil {
		srv.log(ctx).Error("Failed to search merchants", slog.String("category", category), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUpstreamFailed.WithDetails(err.Error()), "search merchants")
	}

	return &usecase.SearchOutput{
		Merchants: merchants,
		Count:     len(merchants),
		Category:  cat,
	}, nil
}

// buildPatch translates the request DTO into the repository's typed patch.
func buildPatch(input *usecase.UpdateMerchantInput) *repository.MerchantPatch {
	patch := &repository.MerchantPatch{
		BusinessName: input.BusinessName,
		TradingName:  input.TradingName,
		Description:  input.Description,
	}

	if input.PrimaryCategory != nil {
		cat := entity.Category(*input.PrimaryCategory)
		patch.PrimaryCategory = &cat
	}
	if input.CategoryTags != nil {
		tags := entity.CategoriesFromStrings(*input.CategoryTags)
		patch.CategoryTags = &tags
	}
	if input.Status != nil {
		status := entity.VerificationStatus(*input.Status)
		patch.Status = &status
	}
	if input.Location != nil {
		patch.Location = &entity.Location{
			Address:    input.Location.Address,
			City:       input.Location.City,
			State:      input.Location.State,
			PostalCode: input.Location.PostalCode,
			Latitude:   input.Location.Latitude,
			Longitude:  input.Location.Longitude,
		}
	}
	if input.Contact != nil {
		patch.Contact = &entity.Contact{
			Phone:   input.Contact.Phone,
			Email:   normalizeEmail(input.Contact.Email),
			Website: input.Contact.Website,
		}
	}
	if input.Services != nil {
		services := make([]entity.OfferedService, 0, len(*input.Services))
		for _, s := range *input.Services {
			services = append(services, entity.OfferedService{Name: s.Name, Description: s.Description})
		}
		patch.Services = &services
	}
	if input.Rating != nil {
		patch.Rating = &entity.Rating{Average: input.Rating.Average, Count: input.Rating.Count}
	}
	if input.OperatingHours != nil {
		hours := make([]entity.OperatingHours, 0, len(*input.OperatingHours))
		for _, h := range *input.OperatingHours {
			hours = append(hours, entity.OperatingHours{Day: h.Day, Opens: h.Opens, Closes: h.Closes})
		}
		patch.OperatingHours = &hours
	}

	return patch
}
