package impl

import (
	"context"
	"log/slog"
	"testing"

	"greenmarket/internal/domain/entity"
	domainerrors "greenmarket/internal/domain/errors"
	"greenmarket/internal/domain/repository"
	"greenmarket/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMerchantRepo is an in-memory merchant store. The category search filters
// on the primary category, matching the derived index key of the real store.
type fakeMerchantRepo struct {
	merchants map[string]*entity.Merchant
	createErr error
	updateErr error
	deleteErr error
	findErr   error
	searchErr error
}

func newFakeMerchantRepo() *fakeMerchantRepo {
	return &fakeMerchantRepo{merchants: map[string]*entity.Merchant{}}
}

func (r *fakeMerchantRepo) Create(_ context.Context, merchant *entity.Merchant) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.merchants[merchant.ID]; ok {
		return repository.ErrMerchantExists
	}
	r.merchants[merchant.ID] = merchant

	return nil
}

func (r *fakeMerchantRepo) FindByID(_ context.Context, id string) (*entity.Merchant, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	merchant, ok := r.merchants[id]
	if !ok {
		return nil, repository.ErrMerchantNotFound
	}

	return merchant, nil
}

func (r *fakeMerchantRepo) Update(_ context.Context, id string, patch *repository.MerchantPatch) (*entity.Merchant, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	merchant, ok := r.merchants[id]
	if !ok {
		return nil, repository.ErrMerchantNotFound
	}

	if patch.BusinessName != nil {
		merchant.BusinessName = *patch.BusinessName
	}
	if patch.PrimaryCategory != nil {
		merchant.PrimaryCategory = *patch.PrimaryCategory
	}
	if patch.Status != nil {
		merchant.Status = *patch.Status
	}

	return merchant, nil
}

func (r *fakeMerchantRepo) Delete(_ context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.merchants[id]; !ok {
		return repository.ErrMerchantNotFound
	}
	delete(r.merchants, id)

	return nil
}

func (r *fakeMerchantRepo) FindByCategory(_ context.Context, category entity.Category) ([]*entity.Merchant, error) {
	if r.searchErr != nil {
		return nil, r.searchErr
	}

	var matches []*entity.Merchant
	for _, merchant := range r.merchants {
		if merchant.PrimaryCategory == category {
			matches = append(matches, merchant)
		}
	}

	return matches, nil
}

func validCreateMerchantInput() *usecase.CreateMerchantInput {
	return &usecase.CreateMerchantInput{
		BusinessName:    "Fix-It Hub",
		TradingName:     "Fix-It",
		Description:     "Repairs small appliances",
		PrimaryCategory: "Repair",
		CategoryTags:    []string{"Recycling"},
		Location: usecase.LocationInput{
			Address:   "1 High Street",
			City:      "Wellington",
			Latitude:  -41.28,
			Longitude: 174.77,
		},
		Contact: usecase.ContactInput{
			Phone: "+64 4 555 0100",
			Email: "Hello@FixIt.Example",
		},
		Services: []usecase.ServiceInput{{Name: "Toaster repair"}},
	}
}

func TestCreateMerchant_ServerAssignedFields(t *testing.T) {
	repo := newFakeMerchantRepo()
	srv := NewDirectoryService(repo, slog.Default())

	merchant, err := srv.CreateMerchant(context.Background(), validCreateMerchantInput())
	require.NoError(t, err)

	assert.NotEmpty(t, merchant.ID)
	assert.Equal(t, entity.StatusPending, merchant.Status)
	assert.Equal(t, entity.Rating{Average: 0, Count: 0}, merchant.Rating)
	assert.Equal(t, merchant.CreatedAt, merchant.UpdatedAt)
	assert.Equal(t, entity.CategoryRepair, merchant.PrimaryCategory)
	assert.Equal(t, "hello@fixit.example", merchant.Contact.Email)

	stored, err := repo.FindByID(context.Background(), merchant.ID)
	require.NoError(t, err)
	assert.Equal(t, merchant, stored)
}

func TestCreateMerchant_UpstreamFailure(t *testing.T) {
	repo := newFakeMerchantRepo()
	repo.createErr = errors.New("store unavailable")
	srv := NewDirectoryService(repo, slog.Default())

	_, err := srv.CreateMerchant(context.Background(), validCreateMerchantInput())
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamFailed)
}

func TestGetMerchant_NotFound(t *testing.T) {
	srv := NewDirectoryService(newFakeMerchantRepo(), slog.Default())

	_, err := srv.GetMerchant(context.Background(), "no-such-merchant")
	assert.ErrorIs(t, err, domainerrors.ErrMerchantNotFound)
}

func TestUpdateMerchant_AppliesPatch(t *testing.T) {
	repo := newFakeMerchantRepo()
	srv := NewDirectoryService(repo, slog.Default())

	created, err := srv.CreateMerchant(context.Background(), validCreateMerchantInput())
	require.NoError(t, err)

	name := "Fix-It Hub Ltd"
	status := "Verified"
	updated, err := srv.UpdateMerchant(context.Background(), created.ID, &usecase.UpdateMerchantInput{
		BusinessName: &name,
		Status:       &status,
	})
	require.NoError(t, err)

	assert.Equal(t, "Fix-It Hub Ltd", updated.BusinessName)
	assert.Equal(t, entity.StatusVerified, updated.Status)
}

func TestCreateMerchant_InvalidCategoryRejected(t *testing.T) {
	repo := newFakeMerchantRepo()
	srv := NewDirectoryService(repo, slog.Default())

	input := validCreateMerchantInput()
	input.PrimaryCategory = "Compost"
	_, err := srv.CreateMerchant(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	input = validCreateMerchantInput()
	input.CategoryTags = []string{"Recycling", "Compost"}
	_, err = srv.CreateMerchant(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	// Nothing reached the store.
	assert.Empty(t, repo.merchants)
}

func TestUpdateMerchant_InvalidCategoryRejected(t *testing.T) {
	repo := newFakeMerchantRepo()
	srv := NewDirectoryService(repo, slog.Default())

	created, err := srv.CreateMerchant(context.Background(), validCreateMerchantInput())
	require.NoError(t, err)

	category := "Compost"
	_, err = srv.UpdateMerchant(context.Background(), created.ID, &usecase.UpdateMerchantInput{PrimaryCategory: &category})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	tags := []string{"Compost"}
	_, err = srv.UpdateMerchant(context.Background(), created.ID, &usecase.UpdateMerchantInput{CategoryTags: &tags})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	// The stored record keeps its original category.
	assert.Equal(t, entity.CategoryRepair, repo.merchants[created.ID].PrimaryCategory)
}

func TestUpdateMerchant_InvalidStatusRejected(t *testing.T) {
	srv := NewDirectoryService(newFakeMerchantRepo(), slog.Default())

	status := "Approved"
	_, err := srv.UpdateMerchant(context.Background(), "any-id", &usecase.UpdateMerchantInput{Status: &status})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUpdateMerchant_NotFound(t *testing.T) {
	srv := NewDirectoryService(newFakeMerchantRepo(), slog.Default())

	name := "New Name"
	_, err := srv.UpdateMerchant(context.Background(), "no-such-merchant", &usecase.UpdateMerchantInput{BusinessName: &name})
	assert.ErrorIs(t, err, domainerrors.ErrMerchantNotFound)
}

func TestDeleteMerchant(t *testing.T) {
	repo := newFakeMerchantRepo()
	srv := NewDirectoryService(repo, slog.Default())

	created, err := srv.CreateMerchant(context.Background(), validCreateMerchantInput())
	require.NoError(t, err)

	require.NoError(t, srv.DeleteMerchant(context.Background(), created.ID))

	_, err = srv.GetMerchant(context.Background(), created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrMerchantNotFound)
}

func TestDeleteMerchant_NotFound(t *testing.T) {
	srv := NewDirectoryService(newFakeMerchantRepo(), slog.Default())

	err := srv.DeleteMerchant(context.Background(), "no-such-merchant")
	assert.ErrorIs(t, err, domainerrors.ErrMerchantNotFound)
}

func TestSearchByCategory(t *testing.T) {
	repo := newFakeMerchantRepo()
	srv := NewDirectoryService(repo, slog.Default())
	ctx := context.Background()

	for _, category := range []string{"Repair", "Repair", "Donate"} {
		input := validCreateMerchantInput()
		input.PrimaryCategory = category
		_, err := srv.CreateMerchant(ctx, input)
		require.NoError(t, err)
	}

	out, err := srv.SearchByCategory(ctx, "Repair")
	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)
	assert.Len(t, out.Merchants, 2)
	assert.Equal(t, entity.CategoryRepair, out.Category)
}

func TestSearchByCategory_EmptyResult(t *testing.T) {
	srv := NewDirectoryService(newFakeMerchantRepo(), slog.Default())

	out, err := srv.SearchByCategory(context.Background(), "Refill")
	require.NoError(t, err)
	assert.Zero(t, out.Count)
	assert.Empty(t, out.Merchants)
}

func TestSearchByCategory_InvalidCategory(t *testing.T) {
	srv := NewDirectoryService(newFakeMerchantRepo(), slog.Default())

	_, err := srv.SearchByCategory(context.Background(), "Compost")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
