package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/validators"
	"github.com/MKhiriev/go-shop-api/models"
)

type addressService struct {
	addressRepository store.AddressRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewAddressService(addressRepository store.AddressRepository, validator validators.Validator, logger *logger.Logger) AddressService {
	return &addressService{
		addressRepository: addressRepository,
		validator:         validator,
		logger:            logger,
	}
}

// Create stores the address without checking that the referenced user exists.
func (a *addressService) Create(ctx context.Context, req models.AddressCreateRequest) (int64, error) {
	if err := validateRequest(ctx, a.validator, req); err != nil {
		return 0, err
	}

	id, err := a.addressRepository.CreateAddress(ctx, models.Address{
		Street:           deref(req.Street),
		Number:           deref(req.Number),
		City:             deref(req.City),
		State:            deref(req.State),
		ZipCode:          deref(req.ZipCode),
		IsBillingAddress: req.IsBillingAddress,
		UserID:           deref(req.UserID),
	})
	if err != nil {
		return 0, fmt.Errorf("error creating address: %w", err)
	}

	return id, nil
}

func (a *addressService) List(ctx context.Context) ([]models.Address, error) {
	addresses, err := a.addressRepository.ListAddresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing addresses: %w", err)
	}
	return nonNil(addresses), nil
}

func (a *addressService) Get(ctx context.Context, id int64) (models.Address, error) {
	address, err := a.addressRepository.GetAddress(ctx, id)
	if err != nil {
		return models.Address{}, fmt.Errorf("error getting address %d: %w", id, err)
	}
	return address, nil
}

func (a *addressService) Update(ctx context.Context, id int64, req models.AddressUpdateRequest) (models.Address, error) {
	update := models.AddressUpdate{
		ID:      id,
		Street:  req.Street,
		Number:  req.Number,
		City:    req.City,
		State:   req.State,
		ZipCode: req.ZipCode,
	}
	if !update.IsEmpty() {
		if err := a.addressRepository.UpdateAddress(ctx, update); err != nil {
			return models.Address{}, fmt.Errorf("error updating address %d: %w", id, err)
		}
	}

	return a.Get(ctx, id)
}

func (a *addressService) Delete(ctx context.Context, id int64) error {
	if err := a.addressRepository.DeleteAddress(ctx, id); err != nil {
		return fmt.Errorf("error deleting address %d: %w", id, err)
	}
	return nil
}
