// Package entity contains the core business objects of the project.
package entity

// UserType represents the kind of account a registration request targets.
type UserType string

const (
	// UserTypeMerchant indicates a merchant account.
	UserTypeMerchant UserType = "merchant"
	// UserTypeCustomer indicates a customer account.
	UserTypeCustomer UserType = "customer"
	// UserTypeAdmin indicates an administrative account.
	UserTypeAdmin UserType = "admin"
)

// String returns the string representation of the UserType.
func (t UserType) String() string {
	return string(t)
}

// IsValid checks if the UserType is a valid value.
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeMerchant, UserTypeCustomer, UserTypeAdmin:
		return true
	default:
		return false
	}
}
