package docstore

import (
	"context"
	"io"
	"time"

	"greenmarket/internal/domain/entity"
	"greenmarket/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/docstore"
	"gocloud.dev/gcerrors"
)

// merchantRepository implements repository.MerchantRepository over a document
// collection. The collection's conditional writes are the only concurrency
// primitive: Create is guarded on not-exists, Update on exists, Delete on the
// revision read just before.
type merchantRepository struct {
	coll *docstore.Collection
}

// NewMerchantRepository is the constructor for merchantRepository.
func NewMerchantRepository(colls *Collections) repository.MerchantRepository {
	return &merchantRepository{coll: colls.Merchants}
}

func (r *merchantRepository) Create(ctx context.Context, merchant *entity.Merchant) error {
	item := toStorageItem(merchant)

	if err := r.coll.Create(ctx, item); err != nil {
		if gcerrors.Code(err) == gcerrors.AlreadyExists {
			return errors.Wrapf(repository.ErrMerchantExists, "merchant %s", merchant.ID)
		}

		return errors.Wrap(err, "failed to create merchant item")
	}

	return nil
}

func (r *merchantRepository) FindByID(ctx context.Context, id string) (*entity.Merchant, error) {
	item := &merchantItem{MerchantID: id}

	if err := r.coll.Get(ctx, item); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.Wrapf(repository.ErrMerchantNotFound, "merchant %s", id)
		}

		return nil, errors.Wrap(err, "failed to get merchant item")
	}

	return fromStorageItem(item)
}

func (r *merchantRepository) Update(ctx context.Context, id string, patch *repository.MerchantPatch) (*entity.Merchant, error) {
	mods := buildMods(patch)
	mods["updated_at"] = time.Now().UTC().Format(timeLayout)

	item := &merchantItem{MerchantID: id}
	if err := r.coll.Update(ctx, item, mods); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.Wrapf(repository.ErrMerchantNotFound, "merchant %s", id)
		}

		return nil, errors.Wrap(err, "failed to update merchant item")
	}

	return r.FindByID(ctx, id)
}

func (r *merchantRepository) Delete(ctx context.Context, id string) error {
	// Read first so a missing record fails the guard; the revision carried by
	// the read makes the delete conditional on the state we observed.
	item := &merchantItem{MerchantID: id}
	if err := r.coll.Get(ctx, item); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return errors.Wrapf(repository.ErrMerchantNotFound, "merchant %s", id)
		}

		return errors.Wrap(err, "failed to load merchant item for delete")
	}

	if err := r.coll.Delete(ctx, item); err != nil {
		code := gcerrors.Code(err)
		if code == gcerrors.NotFound || code == gcerrors.FailedPrecondition {
			// Lost a race against a concurrent delete or rewrite.
			return errors.Wrapf(repository.ErrMerchantNotFound, "merchant %s", id)
		}

		return errors.Wrap(err, "failed to delete merchant item")
	}

	return nil
}

func (r *merchantRepository) FindByCategory(ctx context.Context, category entity.Category) ([]*entity.Merchant, error) {
	iter := r.coll.Query().Where("category", "=", category.String()).Get(ctx)
	defer iter.Stop()

	var merchants []*entity.Merchant
	for {
		item := &merchantItem{}
		err := iter.Next(ctx, item)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to query merchants by category %s", category)
		}

		merchant, err := fromStorageItem(item)
		if err != nil {
			return nil, err
		}
		merchants = append(merchants, merchant)
	}

	return merchants, nil
}

// buildMods translates the typed patch into a sparse set of field assignments.
// Whenever the primary category changes, the derived index key changes in the
// same write so the record's searchability stays consistent.
func buildMods(patch *repository.MerchantPatch) docstore.Mods {
	mods := docstore.Mods{}

	if patch == nil {
		return mods
	}
	if patch.BusinessName != nil {
		mods["business_name"] = *patch.BusinessName
	}
	if patch.TradingName != nil {
		mods["trading_name"] = *patch.TradingName
	}
	if patch.Description != nil {
		mods["description"] = *patch.Description
	}
	if patch.PrimaryCategory != nil {
		mods["primary_category"] = patch.PrimaryCategory.String()
		mods["category"] = patch.PrimaryCategory.String()
	}
	if patch.CategoryTags != nil {
		mods["category_tags"] = patch.CategoryTags.ToStrings()
	}
	if patch.Status != nil {
		mods["verification_status"] = patch.Status.String()
	}
	if patch.Location != nil {
		mods["address"] = patch.Location.Address
		mods["city"] = patch.Location.City
		mods["state"] = patch.Location.State
		mods["postal_code"] = patch.Location.PostalCode
		mods["latitude"] = patch.Location.Latitude
		mods["longitude"] = patch.Location.Longitude
	}
	if patch.Contact != nil {
		mods["phone"] = patch.Contact.Phone
		mods["email"] = patch.Contact.Email
		mods["website"] = patch.Contact.Website
	}
	if patch.Services != nil {
		services := make([]serviceItem, 0, len(*patch.Services))
		for _, s := range *patch.Services {
			services = append(services, serviceItem{Name: s.Name, Description: s.Description})
		}
		mods["services"] = services
	}
	if patch.Rating != nil {
		mods["rating_average"] = patch.Rating.Average
		mods["rating_count"] = patch.Rating.Count
	}
	if patch.OperatingHours != nil {
		hours := make([]operatingHoursItem, 0, len(*patch.OperatingHours))
		for _, h := range *patch.OperatingHours {
			hours = append(hours, operatingHoursItem{Day: h.Day, Opens: h.Opens, Closes: h.Closes})
		}
		mods["operating_hours"] = hours
	}

	return mods
}
