// Package impl contains the implementation of the application's business logic.
package impl

import (
	"strings"

	"greenmarket/internal/usecase"
)

// normalizeRegisterInput returns a normalized copy of the input: the email and
// user type are lower-cased and trimmed, free-text business fields are
// trimmed, and nested contact fields are normalized the same way. The
// transformation is deterministic and never mutates its argument.
func normalizeRegisterInput(input *usecase.RegisterInput) *usecase.RegisterInput {
	norm := *input

	norm.UserType = strings.ToLower(strings.TrimSpace(input.UserType))
	norm.Email = normalizeEmail(input.Email)
	norm.BusinessName = strings.TrimSpace(input.BusinessName)
	norm.RegistrationNumber = strings.TrimSpace(input.RegistrationNumber)
	norm.Website = strings.TrimSpace(input.Website)
	norm.Phone = strings.TrimSpace(input.Phone)

	norm.Address = usecase.BusinessAddressInput{
		Street:     strings.TrimSpace(input.Address.Street),
		City:       strings.TrimSpace(input.Address.City),
		State:      strings.TrimSpace(input.Address.State),
		PostalCode: strings.TrimSpace(input.Address.PostalCode),
		Country:    strings.TrimSpace(input.Address.Country),
	}

	norm.PrimaryContact = usecase.ContactPersonInput{
		Name:  strings.TrimSpace(input.PrimaryContact.Name),
		Email: normalizeEmail(input.PrimaryContact.Email),
		Phone: strings.TrimSpace(input.PrimaryContact.Phone),
	}

	if input.ProductCategories != nil {
		norm.ProductCategories = make([]string, len(input.ProductCategories))
		for i, c := range input.ProductCategories {
			norm.ProductCategories[i] = strings.TrimSpace(c)
		}
	}

	return &norm
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
