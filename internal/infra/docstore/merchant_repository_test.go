package docstore

import (
	"context"
	"testing"

	"greenmarket/internal/domain/entity"
	"greenmarket/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/docstore"
)

// newTestCollections opens fresh in-process collections; each open gets its
// own isolated state.
func newTestCollections(t *testing.T) *Collections {
	t.Helper()
	ctx := context.Background()

	merchants, err := docstore.OpenCollection(ctx, "mem://merchants/merchant_id")
	require.NoError(t, err)

	accounts, err := docstore.OpenCollection(ctx, "mem://accounts/account_id")
	require.NoError(t, err)

	colls := &Collections{Merchants: merchants, Accounts: accounts}
	t.Cleanup(func() { _ = colls.Close() })

	return colls
}

func TestMerchantRepository_CreateAndFindByID(t *testing.T) {
	repo := NewMerchantRepository(newTestCollections(t))
	ctx := context.Background()
	merchant := fullMerchant()

	require.NoError(t, repo.Create(ctx, merchant))

	found, err := repo.FindByID(ctx, merchant.ID)
	require.NoError(t, err)
	assert.Equal(t, merchant, found)
}

func TestMerchantRepository_CreateDuplicateFails(t *testing.T) {
	repo := NewMerchantRepository(newTestCollections(t))
	ctx := context.Background()
	merchant := fullMerchant()

	require.NoError(t, repo.Create(ctx, merchant))

	err := repo.Create(ctx, merchant)
	assert.ErrorIs(t, err, repository.ErrMerchantExists)
}

func TestMerchantRepository_FindByIDAbsent(t *testing.T) {
	repo := NewMerchantRepository(newTestCollections(t))

	_, err := repo.FindByID(context.Background(), "no-such-id")

	assert.ErrorIs(t, err, repository.ErrMerchantNotFound)
}

func TestMerchantRepository_UpdateRefreshesUpdatedAt(t *testing.T) {
	repo := NewMerchantRepository(newTestCollections(t))
	ctx := context.Background()
	merchant := fullMerchant()
	require.NoError(t, repo.Create(ctx, merchant))

	name := "Acme Appliance Repairs"
	updated, err := repo.Update(ctx, merchant.ID, &repository.MerchantPatch{BusinessName: &name})

	require.NoError(t, err)
	assert.Equal(t, name, updated.BusinessName)
	assert.True(t, updated.UpdatedAt.After(merchant.UpdatedAt))
	// Untouched fields survive the sparse write.
	assert.Equal(t, merchant.Description, updated.Description)
	assert.Equal(t, merchant.CreatedAt, updated.CreatedAt)
}

func TestMerchantRepository_UpdateEmptyPatchRefreshesUpdatedAt(t *testing.T) {
	repo := NewMerchantRepository(newTestCollections(t))
	ctx := context.Background()
	merchant := fullMerchant()
	require.NoError(t, repo.Create(ctx, merchant))

	updated, err := repo.Update(ctx, merchant.ID, &repository.MerchantPatch{})
	require.NoError(t, err)

	assert.True(t, updated.UpdatedAt.After(merchant.UpdatedAt))

	// Every other field survives the no-op write.
	expected := *merchant
	expected.UpdatedAt = updated.UpdatedAt
	assert.Equal(t, &expected, updated)
}

func TestMerchantRepository_UpdateAbsentFails(t *testing.T) {
	repo := NewMerchantRepository(newTestCollections(t))

	name := "Ghost"
	_, err := repo.Update(context.Background(), "no-such-id", &repository.MerchantPatch{BusinessName: &name})

	assert.ErrorIs(t, err, repository.ErrMerchantNotFound)
}

func TestMerchantRepository_UpdateCategoryMovesIndexKey(t *testing.T) {
	repo := NewMerchantRepository(newTestCollections(t))
	ctx := context.Background()
	merchant := fullMerchant() // primary category Repair
	require.NoError(t, repo.Create(ctx, merchant))

	newCat := entity.CategoryDonate
	updated, err := repo.Update(ctx, merchant.ID, &repository.MerchantPatch{PrimaryCategory: &newCat})
	require.NoError(t, err)
	assert.Equal(t, newCat, updated.PrimaryCategory)

	// Searchable under the new category, gone from the old one.
	donate, err := repo.FindByCategory(ctx, entity.CategoryDonate)
	require.NoError(t, err)
	require.Len(t, donate, 1)
	assert.Equal(t, merchant.ID, donate[0].ID)

	repair, err := repo.FindByCategory(ctx, entity.CategoryRepair)
	require.NoError(t, err)
	assert.Empty(t, repair)
}

func TestMerchantRepository_DeleteThenFindReturnsAbsent(t *testing.T) {
	repo := NewMerchantRepository(newTestCollections(t))
	ctx := context.Background()
	merchant := fullMerchant()
	require.NoError(t, repo.Create(ctx, merchant))

	require.NoError(t, repo.Delete(ctx, merchant.ID))

	_, err := repo.FindByID(ctx, merchant.ID)
	assert.ErrorIs(t, err, repository.ErrMerchantNotFound)
}

func TestMerchantRepository_DeleteAbsentFails(t *testing.T) {
	repo := NewMerchantRepository(newTestCollections(t))

	err := repo.Delete(context.Background(), "no-such-id")

	assert.ErrorIs(t, err, repository.ErrMerchantNotFound)
}

func TestMerchantRepository_FindByCategory(t *testing.T) {
	repo := NewMerchantRepository(newTestCollections(t))
	ctx := context.Background()

	first := fullMerchant()
	second := fullMerchant()
	second.ID = "m-second"
	third := fullMerchant()
	third.ID = "m-third"
	third.PrimaryCategory = entity.CategoryDonate

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, third))

	repair, err := repo.FindByCategory(ctx, entity.CategoryRepair)
	require.NoError(t, err)
	assert.Len(t, repair, 2)

	ids := []string{repair[0].ID, repair[1].ID}
	assert.ElementsMatch(t, []string{first.ID, second.ID}, ids)
}

func TestMerchantRepository_FindByCategoryEmpty(t *testing.T) {
	repo := NewMerchantRepository(newTestCollections(t))

	merchants, err := repo.FindByCategory(context.Background(), entity.CategoryRefill)

	require.NoError(t, err)
	assert.Empty(t, merchants)
}
