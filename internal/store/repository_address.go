package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/models"
)

type addressRepository struct {
	*DB
	logger *logger.Logger
}

func NewAddressRepository(db *DB, logger *logger.Logger) AddressRepository {
	logger.Debug().Msg("creating address repository")
	return &addressRepository{
		DB:     db,
		logger: logger,
	}
}

func scanAddress(row rowScanner) (models.Address, error) {
	var a models.Address
	err := row.Scan(&a.ID, &a.Street, &a.Number, &a.City, &a.State, &a.ZipCode, &a.IsBillingAddress, &a.UserID)
	return a, err
}

func (r *addressRepository) selectAddresses() sq.SelectBuilder {
	return r.builder.Select(addressColumns...).From(addressesTable).OrderBy("id")
}

// CreateAddress inserts an address. The owner id is stored as given; the
// user is not required to exist.
func (r *addressRepository) CreateAddress(ctx context.Context, address models.Address) (int64, error) {
	log := logger.FromContext(ctx)

	id, err := r.insert(ctx, r.builder.Insert(addressesTable).
		Columns("user_street", "user_number", "user_city", "user_state", "user_zip_code", "is_billing_address", "person_id").
		Values(address.Street, address.Number, address.City, address.State, address.ZipCode, address.IsBillingAddress, address.UserID))
	if err != nil {
		log.Err(err).Str("func", "addressRepository.CreateAddress").Int64("user_id", address.UserID).Msg("failed to insert address")
		return 0, err
	}

	log.Debug().Str("func", "addressRepository.CreateAddress").Int64("address_id", id).Msg("address created")
	return id, nil
}

func (r *addressRepository) ListAddresses(ctx context.Context) ([]models.Address, error) {
	addresses, err := queryAll(ctx, r.DB, r.selectAddresses(), scanAddress)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "addressRepository.ListAddresses").Msg("failed to list addresses")
		return nil, err
	}
	return addresses, nil
}

func (r *addressRepository) ListAddressesByUserIDs(ctx context.Context, userIDs []int64) ([]models.Address, error) {
	if len(userIDs) == 0 {
		return []models.Address{}, nil
	}

	addresses, err := queryAll(ctx, r.DB, r.selectAddresses().Where(sq.Eq{"person_id": userIDs}), scanAddress)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "addressRepository.ListAddressesByUserIDs").
			Int("user_ids_count", len(userIDs)).
			Msg("failed to list addresses of users")
		return nil, err
	}
	return addresses, nil
}

func (r *addressRepository) GetAddress(ctx context.Context, id int64) (models.Address, error) {
	address, err := queryOne(ctx, r.DB, r.selectAddresses().Where(sq.Eq{"id": id}), scanAddress)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "addressRepository.GetAddress").Int64("address_id", id).Msg("failed to get address")
		return models.Address{}, err
	}
	return address, nil
}

func (r *addressRepository) UpdateAddress(ctx context.Context, update models.AddressUpdate) error {
	set := make(map[string]any, 5)
	if update.Street != nil {
		set["user_street"] = *update.Street
	}
	if update.Number != nil {
		set["user_number"] = *update.Number
	}
	if update.City != nil {
		set["user_city"] = *update.City
	}
	if update.State != nil {
		set["user_state"] = *update.State
	}
	if update.ZipCode != nil {
		set["user_zip_code"] = *update.ZipCode
	}

	err := r.execAffectingOne(ctx, r.builder.Update(addressesTable).SetMap(set).Where(sq.Eq{"id": update.ID}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "addressRepository.UpdateAddress").Int64("address_id", update.ID).Msg("failed to update address")
		return err
	}
	return nil
}

func (r *addressRepository) DeleteAddress(ctx context.Context, id int64) error {
	err := r.execAffectingOne(ctx, r.builder.Delete(addressesTable).Where(sq.Eq{"id": id}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "addressRepository.DeleteAddress").Int64("address_id", id).Msg("failed to delete address")
		return err
	}
	return nil
}
