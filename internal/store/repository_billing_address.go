package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/models"
)

type billingAddressRepository struct {
	*DB
	logger *logger.Logger
}

func NewBillingAddressRepository(db *DB, logger *logger.Logger) BillingAddressRepository {
	logger.Debug().Msg("creating billing address repository")
	return &billingAddressRepository{
		DB:     db,
		logger: logger,
	}
}

func scanBillingAddress(row rowScanner) (models.BillingAddress, error) {
	var b models.BillingAddress
	err := row.Scan(&b.ID, &b.Street, &b.Number, &b.City, &b.State, &b.ZipCode, &b.UserID)
	return b, err
}

func (r *billingAddressRepository) selectBillingAddresses() sq.SelectBuilder {
	return r.builder.Select(billingAddressColumns...).From(billingAddressesTable).OrderBy("id")
}

func (r *billingAddressRepository) CreateBillingAddress(ctx context.Context, address models.BillingAddress) (int64, error) {
	log := logger.FromContext(ctx)

	id, err := r.insert(ctx, r.builder.Insert(billingAddressesTable).
		Columns("billing_street", "billing_number", "billing_city", "billing_state", "billing_zip_code", "person_id").
		Values(address.Street, address.Number, address.City, address.State, address.ZipCode, address.UserID))
	if err != nil {
		log.Err(err).Str("func", "billingAddressRepository.CreateBillingAddress").Int64("user_id", address.UserID).Msg("failed to insert billing address")
		return 0, err
	}

	log.Debug().Str("func", "billingAddressRepository.CreateBillingAddress").Int64("billing_address_id", id).Msg("billing address created")
	return id, nil
}

func (r *billingAddressRepository) ListBillingAddresses(ctx context.Context) ([]models.BillingAddress, error) {
	addresses, err := queryAll(ctx, r.DB, r.selectBillingAddresses(), scanBillingAddress)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "billingAddressRepository.ListBillingAddresses").Msg("failed to list billing addresses")
		return nil, err
	}
	return addresses, nil
}

func (r *billingAddressRepository) ListBillingAddressesByUserIDs(ctx context.Context, userIDs []int64) ([]models.BillingAddress, error) {
	if len(userIDs) == 0 {
		return []models.BillingAddress{}, nil
	}

	addresses, err := queryAll(ctx, r.DB, r.selectBillingAddresses().Where(sq.Eq{"person_id": userIDs}), scanBillingAddress)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "billingAddressRepository.ListBillingAddressesByUserIDs").
			Int("user_ids_count", len(userIDs)).
			Msg("failed to list billing addresses of users")
		return nil, err
	}
	return addresses, nil
}

func (r *billingAddressRepository) GetBillingAddress(ctx context.Context, id int64) (models.BillingAddress, error) {
	address, err := queryOne(ctx, r.DB, r.selectBillingAddresses().Where(sq.Eq{"id": id}), scanBillingAddress)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "billingAddressRepository.GetBillingAddress").Int64("billing_address_id", id).Msg("failed to get billing address")
		return models.BillingAddress{}, err
	}
	return address, nil
}

func (r *billingAddressRepository) UpdateBillingAddress(ctx context.Context, update models.BillingAddressUpdate) error {
	set := make(map[string]any, 3)
	if update.City.Set {
		set["billing_city"] = update.City.SQLValue()
	}
	if update.State.Set {
		set["billing_state"] = update.State.SQLValue()
	}
	if update.ZipCode.Set {
		set["billing_zip_code"] = update.ZipCode.SQLValue()
	}

	err := r.execAffectingOne(ctx, r.builder.Update(billingAddressesTable).SetMap(set).Where(sq.Eq{"id": update.ID}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "billingAddressRepository.UpdateBillingAddress").Int64("billing_address_id", update.ID).Msg("failed to update billing address")
		return err
	}
	return nil
}

func (r *billingAddressRepository) DeleteBillingAddress(ctx context.Context, id int64) error {
	err := r.execAffectingOne(ctx, r.builder.Delete(billingAddressesTable).Where(sq.Eq{"id": id}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "billingAddressRepository.DeleteBillingAddress").Int64("billing_address_id", id).Msg("failed to delete billing address")
		return err
	}
	return nil
}
