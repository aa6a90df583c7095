// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"greenmarket/config"
	deliverycontext "greenmarket/internal/delivery/context"
	"greenmarket/internal/domain/entity"
	domainerrors "greenmarket/internal/domain/errors"
	"greenmarket/internal/domain/repository"
	"greenmarket/internal/domain/service"
	"greenmarket/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// minRegistrationYear is the oldest registration year accepted for a business.
const minRegistrationYear = 1900

// registrationService implements the RegistrationUsecase interface. It runs
// the onboarding saga strictly sequentially: each step feeds the next, and a
// failure after the identity account exists is reported, never rolled back.
type registrationService struct {
	directory   service.IdentityDirectory
	hasher      service.PasswordHasher
	accountRepo repository.UserAccountRepository
	roleGroups  map[string]string
	logger      *slog.Logger
}

// RegistrationServiceParams holds dependencies for registrationService, injected by Fx.
type RegistrationServiceParams struct {
	fx.In

	Directory   service.IdentityDirectory
	Hasher      service.PasswordHasher
	AccountRepo repository.UserAccountRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewRegistrationService is the constructor for registrationService. It receives all dependencies as interfaces.
func NewRegistrationService(params RegistrationServiceParams) usecase.RegistrationUsecase {
	roleGroups := map[string]string{}
	if params.Config != nil && params.Config.Identity != nil {
		roleGroups = params.Config.Identity.Groups
	}

	return &registrationService{
		directory:   params.Directory,
		hasher:      params.Hasher,
		accountRepo: params.AccountRepo,
		roleGroups:  roleGroups,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *registrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register dispatches on the user type. Only the merchant pipeline is
// implemented; customer and admin short-circuit to a not-implemented signal.
func (srv *registrationService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	norm := normalizeRegisterInput(input)

	userType := entity.UserType(norm.UserType)
	if !userType.IsValid() {
		return nil, errors.Wrapf(
			domainerrors.ErrValidationFailed.WithDetails("userType must be one of: merchant, customer, admin"),
			"unknown user type %q", norm.UserType,
		)
	}

	switch userType {
	case entity.UserTypeMerchant:
		return srv.registerMerchant(ctx, norm)
	case entity.UserTypeCustomer, entity.UserTypeAdmin:
		srv.log(ctx).Info("Registration requested for unimplemented user type", slog.String("userType", userType.String()))

		return nil, errors.Wrapf(domainerrors.ErrUserTypeNotImplemented, "user type %s", userType)
	default:
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown user type %q", norm.UserType)
	}
}

// registerMerchant runs the merchant saga over the already-normalized input:
// semantic validation, identity account creation, role-group assignment,
// profile build, profile persistence, response build.
func (srv *registrationService) registerMerchant(ctx context.Context, norm *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting merchant registration", slog.String("email", norm.Email))

	// Everything local fails here, before any collaborator is contacted.
	if err := srv.validateMerchantSemantics(norm); err != nil {
		srv.log(ctx).Warn("Merchant registration rejected by validation", slog.String("email", norm.Email), slog.Any("error", err))

		return nil, err
	}

	roleGroup, ok := srv.roleGroups[entity.UserTypeMerchant.String()]
	if !ok || roleGroup == "" {
		return nil, errors.Wrap(
			domainerrors.ErrConfiguration.WithDetails("no role group configured for user type merchant"),
			"missing role-group mapping",
		)
	}

	attributes := map[string]string{
		"email":    norm.Email,
		"userType": entity.UserTypeMerchant.String(),
	}

	accountID, err := srv.directory.CreateAccount(ctx, norm.Email, norm.Password, attributes)
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			srv.log(ctx).Warn("Merchant registration conflicts with existing account", slog.String("email", norm.Email))

			return nil, domainerrors.ErrEmailAlreadyRegistered.WrapMessage("identity account creation")
		}

		srv.log(ctx).Error("Identity directory failed to create account", slog.String("email", norm.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUpstreamFailed.WithDetails(err.Error()), "identity account creation")
	}

	// From this point on the identity account exists. Failures below leave it
	// orphaned without a profile; they are logged with the account id so a
	// reconciliation job can sweep them, and surfaced to the caller unrolled.
	if err := srv.directory.AddAccountToGroup(ctx, accountID, roleGroup); err != nil {
		srv.logOrphan(ctx, accountID, "role-group assignment", err)

		return nil, errors.Wrap(domainerrors.ErrUpstreamFailed.WithDetails(err.Error()), "role-group assignment")
	}

	account := buildMerchantAccount(accountID, roleGroup, norm)

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		srv.logOrphan(ctx, accountID, "profile persistence", err)

		if errors.Is(err, repository.ErrAccountExists) {
			return nil, domainerrors.ErrAccountAlreadyExists.WrapMessage("profile persistence")
		}

		return nil, errors.Wrap(domainerrors.ErrUpstreamFailed.WithDetails(err.Error()), "profile persistence")
	}

	srv.log(ctx).Info("Merchant registration completed", slog.String("accountID", accountID))

	return &usecase.RegisterOutput{
		Message:       "User registered successfully",
		UserConfirmed: true,
		UserType:      entity.UserTypeMerchant.String(),
		UserID:        accountID,
		MerchantID:    accountID,
	}, nil
}

// validateMerchantSemantics enforces the post-normalization business rules:
// password policy, registration-year window, and website well-formedness.
func (srv *registrationService) validateMerchantSemantics(norm *usecase.RegisterInput) error {
	if violations := srv.hasher.ValidatePasswordStrength(norm.Password); len(violations) > 0 {
		return errors.Wrap(
			domainerrors.ErrValidationFailed.WithDetails(violations),
			"password does not meet the policy",
		)
	}

	currentYear := time.Now().UTC().Year()
	if norm.YearOfRegistration < minRegistrationYear || norm.YearOfRegistration > currentYear {
		return errors.Wrapf(
			domainerrors.ErrValidationFailed.WithDetails(
				"yearOfRegistration must be between 1900 and the current year",
			),
			"year of registration %d out of range", norm.YearOfRegistration,
		)
	}

	if norm.Website != "" {
		parsed, err := url.Parse(norm.Website)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return errors.Wrapf(
				domainerrors.ErrValidationFailed.WithDetails("website must be a well-formed URL"),
				"malformed website %q", norm.Website,
			)
		}
	}

	return nil
}

// buildMerchantAccount derives the profile record from the identity account
// id; the caller never chooses the key.
func buildMerchantAccount(accountID, roleGroup string, norm *usecase.RegisterInput) *entity.UserAccount {
	now := time.Now().UTC()

	return &entity.UserAccount{
		ID:        accountID,
		UserType:  entity.UserTypeMerchant,
		Email:     norm.Email,
		RoleGroup: roleGroup,
		MerchantDetails: &entity.MerchantDetails{
			BusinessName:       norm.BusinessName,
			RegistrationNumber: norm.RegistrationNumber,
			YearOfRegistration: norm.YearOfRegistration,
			Website:            norm.Website,
			Phone:              norm.Phone,
			Address: entity.BusinessAddress{
				Street:     norm.Address.Street,
				City:       norm.Address.City,
				State:      norm.Address.State,
				PostalCode: norm.Address.PostalCode,
				Country:    norm.Address.Country,
			},
			PrimaryContact: entity.ContactPerson{
				Name:  norm.PrimaryContact.Name,
				Email: norm.PrimaryContact.Email,
				Phone: norm.PrimaryContact.Phone,
			},
			ProductCategories: norm.ProductCategories,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (srv *registrationService) logOrphan(ctx context.Context, accountID, step string, err error) {
	srv.log(ctx).Error("Registration failed after identity account creation, account left orphaned",
		slog.String("accountID", accountID),
		slog.String("step", step),
		slog.Any("error", err),
	)
}
