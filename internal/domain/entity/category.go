// Package entity contains the core business objects of the project.
package entity

import "slices"

// Category represents the closed set of merchant categories the directory indexes.
type Category string

const (
	// CategoryRepair indicates merchants offering repair services.
	CategoryRepair Category = "Repair"
	// CategoryRefill indicates merchants offering refill stations.
	CategoryRefill Category = "Refill"
	// CategoryRecycling indicates merchants accepting recyclables.
	CategoryRecycling Category = "Recycling"
	// CategoryDonate indicates merchants accepting donations.
	CategoryDonate Category = "Donate"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryRepair, CategoryRefill, CategoryRecycling, CategoryDonate:
		return true
	default:
		return false
	}
}

// Categories is a slice of Category for convenience.
type Categories []Category

// Contains checks if the categories slice contains a specific category.
func (cs Categories) Contains(category Category) bool {
	return slices.Contains(cs, category)
}

// ToStrings converts Categories to []string for storage compatibility.
func (cs Categories) ToStrings() []string {
	result := make([]string, len(cs))
	for i, c := range cs {
		result[i] = c.String()
	}

	return result
}

// CategoriesFromStrings converts []string to Categories without validating membership;
// callers that need validation check IsValid per element.
func CategoriesFromStrings(ss []string) Categories {
	result := make(Categories, 0, len(ss))
	for _, s := range ss {
		result = append(result, Category(s))
	}

	return result
}

// MaxCategoryTags bounds the number of secondary category tags a merchant may carry.
const MaxCategoryTags = 4
