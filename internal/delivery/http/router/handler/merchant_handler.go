package handler

import (
	"log/slog"
	"net/http"
	"time"

	"greenmarket/internal/delivery/http/response"
	"greenmarket/internal/domain/entity"
	"greenmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MerchantHandler holds dependencies for merchant-directory handlers.
type MerchantHandler struct {
	uc     usecase.DirectoryUsecase
	logger *slog.Logger
}

// NewMerchantHandler is the constructor for MerchantHandler, injected by Fx.
func NewMerchantHandler(uc usecase.DirectoryUsecase, logger *slog.Logger) *MerchantHandler {
	return &MerchantHandler{
		uc:     uc,
		logger: logger,
	}
}

// merchantView is the response shape of a merchant, mirroring the domain
// entity with JSON field names and RFC 3339 timestamps.
type merchantView struct {
	ID              string               `json:"id"`
	BusinessName    string               `json:"businessName"`
	TradingName     string               `json:"tradingName,omitempty"`
	Description     string               `json:"description"`
	PrimaryCategory string               `json:"primaryCategory"`
	CategoryTags    []string             `json:"categoryTags,omitempty"`
	Status          string               `json:"verificationStatus"`
	Location        locationView         `json:"location"`
	Contact         contactView          `json:"contact"`
	Services        []serviceView        `json:"services,omitempty"`
	Rating          ratingView           `json:"rating"`
	OperatingHours  []operatingHoursView `json:"operatingHours,omitempty"`
	CreatedAt       string               `json:"createdAt"`
	UpdatedAt       string               `json:"updatedAt"`
}

type locationView struct {
	Address    string  `json:"address"`
	City       string  `json:"city"`
	State      string  `json:"state,omitempty"`
	PostalCode string  `json:"postalCode,omitempty"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

type contactView struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website,omitempty"`
}

type serviceView struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type ratingView struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type operatingHoursView struct {
	Day    string `json:"day"`
	Opens  string `json:"opens"`
	Closes string `json:"closes"`
}

type searchView struct {
	Merchants []merchantView `json:"merchants"`
	Count     int            `json:"count"`
	Category  string         `json:"category"`
}

func toMerchantView(m *entity.Merchant) merchantView {
	view := merchantView{
		ID:              m.ID,
		BusinessName:    m.BusinessName,
		TradingName:     m.TradingName,
		Description:     m.Description,
		PrimaryCategory: m.PrimaryCategory.String(),
		Status:          m.Status.String(),
		Location: locationView{
			Address:    m.Location.Address,
			City:       m.Location.City,
			State:      m.Location.State,
			PostalCode: m.Location.PostalCode,
			Latitude:   m.Location.Latitude,
			Longitude:  m.Location.Longitude,
		},
		Contact: contactView{
			Phone:   m.Contact.Phone,
			Email:   m.Contact.Email,
			Website: m.Contact.Website,
		},
		Rating:    ratingView{Average: m.Rating.Average, Count: m.Rating.Count},
		CreatedAt: m.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt: m.UpdatedAt.Format(time.RFC3339Nano),
	}

	if len(m.CategoryTags) > 0 {
		view.CategoryTags = m.CategoryTags.ToStrings()
	}
	for _, s := range m.Services {
		view.Services = append(view.Services, serviceView{Name: s.Name, Description: s.Description})
	}
	for _, h := range m.OperatingHours {
		view.OperatingHours = append(view.OperatingHours, operatingHoursView{Day: h.Day, Opens: h.Opens, Closes: h.Closes})
	}

	return view
}

// Create handles POST /merchants.
func (h *MerchantHandler) Create(c echo.Context) error {
	var input usecase.CreateMerchantInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid merchant payload", nil)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	merchant, err := h.uc.CreateMerchant(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, toMerchantView(merchant))
}

// Get handles GET /merchants/:id.
func (h *MerchantHandler) Get(c echo.Context) error {
	merchant, err := h.uc.GetMerchant(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toMerchantView(merchant))
}

// Update handles PUT /merchants/:id.
func (h *MerchantHandler) Update(c echo.Context) error {
	var input usecase.UpdateMerchantInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid merchant payload", nil)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	merchant, err := h.uc.UpdateMerchant(c.Request().Context(), c.Param("id"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toMerchantView(merchant))
}

// Delete handles DELETE /merchants/:id.
func (h *MerchantHandler) Delete(c echo.Context) error {
	if err := h.uc.DeleteMerchant(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Search handles GET /merchants/search?category=<Repair|Refill|Recycling|Donate>.
func (h *MerchantHandler) Search(c echo.Context) error {
	category := c.QueryParam("category")
	if category == "" {
		return response.Error(c, http.StatusBadRequest, "Missing required query parameter: category", nil)
	}

	output, err := h.uc.SearchByCategory(c.Request().Context(), category)
	if err != nil {
		return errors.WithStack(err)
	}

	view := searchView{
		Merchants: make([]merchantView, 0, len(output.Merchants)),
		Count:     output.Count,
		Category:  output.Category.String(),
	}
	for _, m := range output.Merchants {
		view.Merchants = append(view.Merchants, toMerchantView(m))
	}

	return c.JSON(http.StatusOK, view)
}
