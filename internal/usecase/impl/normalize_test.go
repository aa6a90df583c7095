package impl

import (
	"testing"

	"greenmarket/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRegisterInput(t *testing.T) {
	input := &usecase.RegisterInput{
		UserType:           "  Merchant ",
		Email:              " Owner@Acme.Example ",
		Password:           "  Test123!@#  ",
		BusinessName:       "  Acme Repairs Ltd ",
		RegistrationNumber: " NZBN-123 ",
		Website:            " https://acme.example ",
		Phone:              " +64 4 555 0100 ",
		Address: usecase.BusinessAddressInput{
			Street: " 1 High Street ",
			City:   " Wellington ",
		},
		PrimaryContact: usecase.ContactPersonInput{
			Name:  " Ana Smith ",
			Email: " Ana@Acme.Example ",
		},
		ProductCategories: []string{" Repair ", "Recycling"},
	}

	norm := normalizeRegisterInput(input)

	assert.Equal(t, "merchant", norm.UserType)
	assert.Equal(t, "owner@acme.example", norm.Email)
	assert.Equal(t, "Acme Repairs Ltd", norm.BusinessName)
	assert.Equal(t, "NZBN-123", norm.RegistrationNumber)
	assert.Equal(t, "https://acme.example", norm.Website)
	assert.Equal(t, "+64 4 555 0100", norm.Phone)
	assert.Equal(t, "1 High Street", norm.Address.Street)
	assert.Equal(t, "Wellington", norm.Address.City)
	assert.Equal(t, "Ana Smith", norm.PrimaryContact.Name)
	assert.Equal(t, "ana@acme.example", norm.PrimaryContact.Email)
	assert.Equal(t, []string{"Repair", "Recycling"}, norm.ProductCategories)

	// The password is credentials, not free text; it passes through untouched.
	assert.Equal(t, "  Test123!@#  ", norm.Password)
}

func TestNormalizeRegisterInput_DoesNotMutateArgument(t *testing.T) {
	input := &usecase.RegisterInput{
		UserType:          " Merchant ",
		Email:             " Owner@Acme.Example ",
		ProductCategories: []string{" Repair "},
	}

	_ = normalizeRegisterInput(input)

	assert.Equal(t, " Merchant ", input.UserType)
	assert.Equal(t, " Owner@Acme.Example ", input.Email)
	assert.Equal(t, []string{" Repair "}, input.ProductCategories)
}

func TestNormalizeRegisterInput_Idempotent(t *testing.T) {
	input := &usecase.RegisterInput{
		UserType:     " Merchant ",
		Email:        " Owner@Acme.Example ",
		BusinessName: " Acme ",
	}

	once := normalizeRegisterInput(input)
	twice := normalizeRegisterInput(once)

	assert.Equal(t, once, twice)
}
