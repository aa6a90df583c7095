// Package usecase contains the application-specific business rules.
package usecase

import "context"

// RegisterInput defines the data accepted by the registration endpoint.
// Merchant-specific fields are structurally required only when userType is
// merchant; semantic rules (registration year, website URL) are enforced by
// the orchestrator after normalization, before any collaborator call.
type RegisterInput struct {
	UserType           string               `json:"userType" validate:"required"`
	Email              string               `json:"email" validate:"required,email"`
	Password           string               `json:"password" validate:"required"`
	BusinessName       string               `json:"businessName" validate:"required_if=UserType merchant"`
	RegistrationNumber string               `json:"registrationNumber" validate:"required_if=UserType merchant"`
	YearOfRegistration int                  `json:"yearOfRegistration" validate:"required_if=UserType merchant"`
	Website            string               `json:"website"`
	Address            BusinessAddressInput `json:"address"`
	Phone              string               `json:"phone" validate:"required_if=UserType merchant"`
	PrimaryContact     ContactPersonInput   `json:"primaryContact"`
	ProductCategories  []string             `json:"productCategories" validate:"required_if=UserType merchant,omitempty,dive,category"`
}

// BusinessAddressInput is the request shape of a registered business address.
type BusinessAddressInput struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// ContactPersonInput is the request shape of a merchant's primary contact.
type ContactPersonInput struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

// CodeDeliveryDetails mirrors the identity directory's confirmation-code
// delivery report. It stays nil when accounts are auto-confirmed.
type CodeDeliveryDetails struct {
	Destination    string `json:"destination"`
	DeliveryMedium string `json:"deliveryMedium"`
	AttributeName  string `json:"attributeName"`
}

// RegisterOutput is the success envelope of the registration saga. MerchantID
// duplicates UserID under its legacy alias for backward compatibility.
type RegisterOutput struct {
	Message             string               `json:"message"`
	UserConfirmed       bool                 `json:"userConfirmed"`
	UserType            string               `json:"userType"`
	UserID              string               `json:"userId"`
	MerchantID          string               `json:"merchantId,omitempty"`
	CodeDeliveryDetails *CodeDeliveryDetails `json:"codeDeliveryDetails,omitempty"`
}

// RegistrationUsecase defines the interface for the account registration saga.
type RegistrationUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
}
