// Package entity contains the core business objects of the project.
package entity

import "time"

// UserAccount is the durable profile record paired with an identity-directory
// account. Its ID is always derived from the identity account id, never chosen
// by the caller.
type UserAccount struct {
	ID              string           // Equals the identity-directory account id.
	UserType        UserType         // The kind of account this record belongs to.
	Email           string           // Normalized login email.
	RoleGroup       string           // The identity-directory group the account was assigned to.
	MerchantDetails *MerchantDetails // Present only when UserType is merchant.
	CreatedAt       time.Time        // Timestamp of when this record was created.
	UpdatedAt       time.Time        // Timestamp of the last modification.
}

// MerchantDetails holds the merchant-specific fields collected during registration.
type MerchantDetails struct {
	BusinessName       string
	RegistrationNumber string
	YearOfRegistration int
	Website            string // Optional.
	Phone              string
	Address            BusinessAddress
	PrimaryContact     ContactPerson
	ProductCategories  []string
}

// BusinessAddress is the registered address of a merchant's business.
type BusinessAddress struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// ContactPerson is the human contact responsible for a merchant account.
type ContactPerson struct {
	Name  string
	Email string
	Phone string
}
