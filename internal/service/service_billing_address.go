package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/validators"
	"github.com/MKhiriev/go-shop-api/models"
)

type billingAddressService struct {
	billingAddressRepository store.BillingAddressRepository
	validator                validators.Validator

	logger *logger.Logger
}

func NewBillingAddressService(billingAddressRepository store.BillingAddressRepository, validator validators.Validator, logger *logger.Logger) BillingAddressService {
	return &billingAddressService{
		billingAddressRepository: billingAddressRepository,
		validator:                validator,
		logger:                   logger,
	}
}

func (b *billingAddressService) Create(ctx context.Context, req models.BillingAddressCreateRequest) (int64, error) {
	if err := validateRequest(ctx, b.validator, req); err != nil {
		return 0, err
	}

	id, err := b.billingAddressRepository.CreateBillingAddress(ctx, models.BillingAddress{
		Street:  req.Street.Value,
		Number:  req.Number.Value,
		City:    req.City.Value,
		State:   req.State.Value,
		ZipCode: req.ZipCode.Value,
		UserID:  deref(req.UserID),
	})
	if err != nil {
		return 0, fmt.Errorf("error creating billing address: %w", err)
	}

	return id, nil
}

func (b *billingAddressService) List(ctx context.Context) ([]models.BillingAddress, error) {
	billingAddresses, err := b.billingAddressRepository.ListBillingAddresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing billing addresses: %w", err)
	}
	return nonNil(billingAddresses), nil
}

func (b *billingAddressService) Get(ctx context.Context, id int64) (models.BillingAddress, error) {
	billingAddress, err := b.billingAddressRepository.GetBillingAddress(ctx, id)
	if err != nil {
		return models.BillingAddress{}, fmt.Errorf("error getting billing address %d: %w", id, err)
	}
	return billingAddress, nil
}

// Update overwrites city, state and zip code; a present null clears the
// column. Street and number are accepted in req but never written back;
// clients relying on that keep working.
func (b *billingAddressService) Update(ctx context.Context, id int64, req models.BillingAddressUpdateRequest) (models.BillingAddress, error) {
	if req.Street.Set || req.Number.Set {
		logger.FromContext(ctx).Warn().
			Int64("billing_address_id", id).
			Bool("street", req.Street.Set).
			Bool("number", req.Number.Set).
			Msg("billing street and number are not updatable, ignoring them")
	}

	update := models.BillingAddressUpdate{ID: id, City: req.City, State: req.State, ZipCode: req.ZipCode}
	if !update.IsEmpty() {
		if err := b.billingAddressRepository.UpdateBillingAddress(ctx, update); err != nil {
			return models.BillingAddress{}, fmt.Errorf("error updating billing address %d: %w", id, err)
		}
	}

	return b.Get(ctx, id)
}

func (b *billingAddressService) Delete(ctx context.Context, id int64) error {
	if err := b.billingAddressRepository.DeleteBillingAddress(ctx, id); err != nil {
		return fmt.Errorf("error deleting billing address %d: %w", id, err)
	}
	return nil
}
