package docstore

import (
	"time"

	"greenmarket/internal/domain/entity"

	"github.com/pkg/errors"
)

// merchantItem is the storage-shaped representation of a Merchant: flat,
// descriptively named fields plus the denormalized "category" index key, which
// always equals primary_category and is never independently settable.
type merchantItem struct {
	MerchantID         string               `docstore:"merchant_id"`
	BusinessName       string               `docstore:"business_name"`
	TradingName        string               `docstore:"trading_name"`
	Description        string               `docstore:"description"`
	PrimaryCategory    string               `docstore:"primary_category"`
	Category           string               `docstore:"category"` // derived index key
	CategoryTags       []string             `docstore:"category_tags"`
	VerificationStatus string               `docstore:"verification_status"`
	Address            string               `docstore:"address"`
	City               string               `docstore:"city"`
	State              string               `docstore:"state"`
	PostalCode         string               `docstore:"postal_code"`
	Latitude           float64              `docstore:"latitude"`
	Longitude          float64              `docstore:"longitude"`
	Phone              string               `docstore:"phone"`
	Email              string               `docstore:"email"`
	Website            string               `docstore:"website"`
	Services           []serviceItem        `docstore:"services"`
	RatingAverage      float64              `docstore:"rating_average"`
	RatingCount        int                  `docstore:"rating_count"`
	OperatingHours     []operatingHoursItem `docstore:"operating_hours"`
	CreatedAt          string               `docstore:"created_at"`
	UpdatedAt          string               `docstore:"updated_at"`

	DocstoreRevision any
}

type serviceItem struct {
	Name        string `docstore:"name"`
	Description string `docstore:"description"`
}

type operatingHoursItem struct {
	Day    string `docstore:"day"`
	Opens  string `docstore:"opens"`
	Closes string `docstore:"closes"`
}

// timeLayout keeps stored timestamps lossless down to nanoseconds.
const timeLayout = time.RFC3339Nano

// toStorageItem maps a Merchant to its stored representation and derives the
// index key from the primary category.
func toStorageItem(m *entity.Merchant) *merchantItem {
	item := &merchantItem{
		MerchantID:         m.ID,
		BusinessName:       m.BusinessName,
		TradingName:        m.TradingName,
		Description:        m.Description,
		PrimaryCategory:    m.PrimaryCategory.String(),
		Category:           m.PrimaryCategory.String(),
		VerificationStatus: m.Status.String(),
		Address:            m.Location.Address,
		City:               m.Location.City,
		State:              m.Location.State,
		PostalCode:         m.Location.PostalCode,
		Latitude:           m.Location.Latitude,
		Longitude:          m.Location.Longitude,
		Phone:              m.Contact.Phone,
		Email:              m.Contact.Email,
		Website:            m.Contact.Website,
		RatingAverage:      m.Rating.Average,
		RatingCount:        m.Rating.Count,
		CreatedAt:          m.CreatedAt.UTC().Format(timeLayout),
		UpdatedAt:          m.UpdatedAt.UTC().Format(timeLayout),
	}

	// Empty lists stay nil so the mapping is lossless in both directions.
	if len(m.CategoryTags) > 0 {
		item.CategoryTags = m.CategoryTags.ToStrings()
	}
	for _, s := range m.Services {
		item.Services = append(item.Services, serviceItem{Name: s.Name, Description: s.Description})
	}
	for _, h := range m.OperatingHours {
		item.OperatingHours = append(item.OperatingHours, operatingHoursItem{Day: h.Day, Opens: h.Opens, Closes: h.Closes})
	}

	return item
}

// fromStorageItem is the inverse mapping, reconstructing the nested location,
// contact and rating objects from the flat storage fields.
func fromStorageItem(item *merchantItem) (*entity.Merchant, error) {
	createdAt, err := time.Parse(timeLayout, item.CreatedAt)
	if err != nil {
		return nil, errors.Wrapf(err, "merchant %s has malformed created_at %q", item.MerchantID, item.CreatedAt)
	}

	updatedAt, err := time.Parse(timeLayout, item.UpdatedAt)
	if err != nil {
		return nil, errors.Wrapf(err, "merchant %s has malformed updated_at %q", item.MerchantID, item.UpdatedAt)
	}

	m := &entity.Merchant{
		ID:              item.MerchantID,
		BusinessName:    item.BusinessName,
		TradingName:     item.TradingName,
		Description:     item.Description,
		PrimaryCategory: entity.Category(item.PrimaryCategory),
		Status:          entity.VerificationStatus(item.VerificationStatus),
		Location: entity.Location{
			Address:    item.Address,
			City:       item.City,
			State:      item.State,
			PostalCode: item.PostalCode,
			Latitude:   item.Latitude,
			Longitude:  item.Longitude,
		},
		Contact: entity.Contact{
			Phone:   item.Phone,
			Email:   item.Email,
			Website: item.Website,
		},
		Rating: entity.Rating{
			Average: item.RatingAverage,
			Count:   item.RatingCount,
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}

	if len(item.CategoryTags) > 0 {
		m.CategoryTags = entity.CategoriesFromStrings(item.CategoryTags)
	}
	for _, s := range item.Services {
		m.Services = append(m.Services, entity.OfferedService{Name: s.Name, Description: s.Description})
	}
	for _, h := range item.OperatingHours {
		m.OperatingHours = append(m.OperatingHours, entity.OperatingHours{Day: h.Day, Opens: h.Opens, Closes: h.Closes})
	}

	return m, nil
}
