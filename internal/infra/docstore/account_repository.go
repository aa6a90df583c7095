package docstore

import (
	"context"
	"time"

	"greenmarket/internal/domain/entity"
	"greenmarket/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/docstore"
	"gocloud.dev/gcerrors"
)

// accountItem is the storage-shaped representation of a UserAccount. The key
// equals the identity-directory account id. Merchant fields are flattened into
// the same document and left zero for non-merchant records.
type accountItem struct {
	AccountID          string            `docstore:"account_id"`
	UserType           string            `docstore:"user_type"`
	Email              string            `docstore:"email"`
	RoleGroup          string            `docstore:"role_group"`
	BusinessName       string            `docstore:"business_name"`
	RegistrationNumber string            `docstore:"registration_number"`
	YearOfRegistration int               `docstore:"year_of_registration"`
	Website            string            `docstore:"website"`
	Phone              string            `docstore:"phone"`
	Address            addressItem       `docstore:"address"`
	PrimaryContact     contactPersonItem `docstore:"primary_contact"`
	ProductCategories  []string          `docstore:"product_categories"`
	CreatedAt          string            `docstore:"created_at"`
	UpdatedAt          string            `docstore:"updated_at"`

	DocstoreRevision any
}

type addressItem struct {
	Street     string `docstore:"street"`
	City       string `docstore:"city"`
	State      string `docstore:"state"`
	PostalCode string `docstore:"postal_code"`
	Country    string `docstore:"country"`
}

type contactPersonItem struct {
	Name  string `docstore:"name"`
	Email string `docstore:"email"`
	Phone string `docstore:"phone"`
}

func toAccountItem(a *entity.UserAccount) *accountItem {
	item := &accountItem{
		AccountID: a.ID,
		UserType:  a.UserType.String(),
		Email:     a.Email,
		RoleGroup: a.RoleGroup,
		CreatedAt: a.CreatedAt.UTC().Format(timeLayout),
		UpdatedAt: a.UpdatedAt.UTC().Format(timeLayout),
	}

	if d := a.MerchantDetails; d != nil {
		item.BusinessName = d.BusinessName
		item.RegistrationNumber = d.RegistrationNumber
		item.YearOfRegistration = d.YearOfRegistration
		item.Website = d.Website
		item.Phone = d.Phone
		item.Address = addressItem{
			Street:     d.Address.Street,
			City:       d.Address.City,
			State:      d.Address.State,
			PostalCode: d.Address.PostalCode,
			Country:    d.Address.Country,
		}
		item.PrimaryContact = contactPersonItem{
			Name:  d.PrimaryContact.Name,
			Email: d.PrimaryContact.Email,
			Phone: d.PrimaryContact.Phone,
		}
		if len(d.ProductCategories) > 0 {
			item.ProductCategories = append([]string(nil), d.ProductCategories...)
		}
	}

	return item
}

func fromAccountItem(item *accountItem) (*entity.UserAccount, error) {
	createdAt, err := time.Parse(timeLayout, item.CreatedAt)
	if err != nil {
		return nil, errors.Wrapf(err, "account %s has malformed created_at %q", item.AccountID, item.CreatedAt)
	}

	updatedAt, err := time.Parse(timeLayout, item.UpdatedAt)
	if err != nil {
		return nil, errors.Wrapf(err, "account %s has malformed updated_at %q", item.AccountID, item.UpdatedAt)
	}

	account := &entity.UserAccount{
		ID:        item.AccountID,
		UserType:  entity.UserType(item.UserType),
		Email:     item.Email,
		RoleGroup: item.RoleGroup,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}

	if account.UserType == entity.UserTypeMerchant {
		account.MerchantDetails = &entity.MerchantDetails{
			BusinessName:       item.BusinessName,
			RegistrationNumber: item.RegistrationNumber,
			YearOfRegistration: item.YearOfRegistration,
			Website:            item.Website,
			Phone:              item.Phone,
			Address: entity.BusinessAddress{
				Street:     item.Address.Street,
				City:       item.Address.City,
				State:      item.Address.State,
				PostalCode: item.Address.PostalCode,
				Country:    item.Address.Country,
			},
			PrimaryContact: entity.ContactPerson{
				Name:  item.PrimaryContact.Name,
				Email: item.PrimaryContact.Email,
				Phone: item.PrimaryContact.Phone,
			},
			ProductCategories: item.ProductCategories,
		}
	}

	return account, nil
}

// accountRepository implements repository.UserAccountRepository over a
// document collection, with Create guarded on not-exists.
type accountRepository struct {
	coll *docstore.Collection
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(colls *Collections) repository.UserAccountRepository {
	return &accountRepository{coll: colls.Accounts}
}

func (r *accountRepository) Create(ctx context.Context, account *entity.UserAccount) error {
	item := toAccountItem(account)

	if err := r.coll.Create(ctx, item); err != nil {
		if gcerrors.Code(err) == gcerrors.AlreadyExists {
			return errors.Wrapf(repository.ErrAccountExists, "account %s", account.ID)
		}

		return errors.Wrap(err, "failed to create account item")
	}

	return nil
}

func (r *accountRepository) FindByID(ctx context.Context, id string) (*entity.UserAccount, error) {
	item := &accountItem{AccountID: id}

	if err := r.coll.Get(ctx, item); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.Wrapf(repository.ErrAccountNotFound, "account %s", id)
		}

		return nil, errors.Wrap(err, "failed to get account item")
	}

	return fromAccountItem(item)
}
