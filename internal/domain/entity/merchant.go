// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// VerificationStatus represents the review state of a merchant listing.
type VerificationStatus string

const (
	// StatusPending marks a freshly created, not yet reviewed merchant.
	StatusPending VerificationStatus = "Pending"
	// StatusVerified marks a merchant that passed review.
	StatusVerified VerificationStatus = "Verified"
	// StatusRejected marks a merchant that failed review.
	StatusRejected VerificationStatus = "Rejected"
)

// String returns the string representation of the VerificationStatus.
func (s VerificationStatus) String() string {
	return string(s)
}

// IsValid checks if the VerificationStatus is a valid value.
func (s VerificationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusVerified, StatusRejected:
		return true
	default:
		return false
	}
}

// Bounds on the optional merchant sub-lists.
const (
	MaxServices       = 10
	MaxOperatingHours = 7
)

// Merchant is the core entity of the directory, representing one listed business.
// Its ID is immutable and globally unique once assigned.
type Merchant struct {
	ID              string             // The Global Unique Identifier for the merchant.
	BusinessName    string             // The registered legal name of the business.
	TradingName     string             // Optional public-facing name, if it differs from the legal one.
	Description     string             // A short description of what the merchant offers.
	PrimaryCategory Category           // The category the merchant is indexed and searched under.
	CategoryTags    Categories         // Up to MaxCategoryTags additional categories.
	Status          VerificationStatus // The review state of the listing.
	Location        Location           // Where the merchant operates.
	Contact         Contact            // How to reach the merchant.
	Services        []OfferedService   // Up to MaxServices services the merchant offers.
	Rating          Rating             // Aggregated customer rating.
	OperatingHours  []OperatingHours   // Up to MaxOperatingHours entries, one per day.
	CreatedAt       time.Time          // Timestamp of when this listing was created.
	UpdatedAt       time.Time          // Timestamp of the last modification to this listing.
}

// Location is the physical place a merchant operates from.
type Location struct {
	Address    string
	City       string
	State      string
	PostalCode string
	Latitude   float64
	Longitude  float64
}

// Contact holds the merchant's public contact channels.
type Contact struct {
	Phone   string
	Email   string
	Website string // Optional.
}

// OfferedService describes one service a merchant provides.
type OfferedService struct {
	Name        string
	Description string
}

// Rating is the merchant's aggregated customer rating.
// Invariant: Count >= 0 and 0 <= Average <= 5.
type Rating struct {
	Average float64
	Count   int
}

// OperatingHours describes the opening window for a single day.
type OperatingHours struct {
	Day    string
	Opens  string
	Closes string
}
