package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/validators"
	"github.com/MKhiriev/go-shop-api/models"
)

type userService struct {
	userRepository           store.UserRepository
	addressRepository        store.AddressRepository
	billingAddressRepository store.BillingAddressRepository
	validator                validators.Validator

	logger *logger.Logger
}

func NewUserService(
	userRepository store.UserRepository,
	addressRepository store.AddressRepository,
	billingAddressRepository store.BillingAddressRepository,
	validator validators.Validator,
	logger *logger.Logger,
) UserService {
	return &userService{
		userRepository:           userRepository,
		addressRepository:        addressRepository,
		billingAddressRepository: billingAddressRepository,
		validator:                validator,
		logger:                   logger,
	}
}

func (u *userService) Create(ctx context.Context, req models.UserCreateRequest) (int64, error) {
	if err := validateRequest(ctx, u.validator, req); err != nil {
		return 0, err
	}

	id, err := u.userRepository.CreateUser(ctx, models.User{
		FirstName: deref(req.FirstName),
		LastName:  deref(req.LastName),
		UserName:  deref(req.UserName),
		Email:     deref(req.Email),
		Password:  deref(req.Password),
	})
	if err != nil {
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

func (u *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := u.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	if err = u.attachAddresses(ctx, users); err != nil {
		return nil, err
	}
	return nonNil(users), nil
}

func (u *userService) Get(ctx context.Context, id int64) (models.User, error) {
	user, err := u.userRepository.GetUser(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting user %d: %w", id, err)
	}

	users := []models.User{user}
	if err = u.attachAddresses(ctx, users); err != nil {
		return models.User{}, err
	}
	return users[0], nil
}

// Update overwrites userName and email when present in req. An update
// without any of them only re-reads the user.
func (u *userService) Update(ctx context.Context, id int64, req models.UserUpdateRequest) (models.User, error) {
	update := models.UserUpdate{ID: id, UserName: req.UserName, Email: req.Email}
	if !update.IsEmpty() {
		if err := u.userRepository.UpdateUser(ctx, update); err != nil {
			return models.User{}, fmt.Errorf("error updating user %d: %w", id, err)
		}
	}

	return u.Get(ctx, id)
}

// Delete removes the user row only. Owned addresses stay in place.
func (u *userService) Delete(ctx context.Context, id int64) error {
	if err := u.userRepository.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("error deleting user %d: %w", id, err)
	}
	return nil
}

// attachAddresses loads the addresses and billing addresses of users with one
// query per table and distributes them in place. Every user ends up with
// non-nil slices.
func (u *userService) attachAddresses(ctx context.Context, users []models.User) error {
	if len(users) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(users))
	for _, user := range users {
		ids = append(ids, user.ID)
	}

	addresses, err := u.addressRepository.ListAddressesByUserIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("error listing addresses of users: %w", err)
	}
	billingAddresses, err := u.billingAddressRepository.ListBillingAddressesByUserIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("error listing billing addresses of users: %w", err)
	}

	addressesByUser := groupBy(addresses, func(a models.Address) int64 { return a.UserID })
	billingByUser := groupBy(billingAddresses, func(b models.BillingAddress) int64 { return b.UserID })

	for i := range users {
		users[i].Addresses = nonNil(addressesByUser[users[i].ID])
		users[i].BillingAddresses = nonNil(billingByUser[users[i].ID])
	}
	return nil
}

// groupBy buckets items by key, preserving their order inside each bucket.
func groupBy[T any](items []T, key func(T) int64) map[int64][]T {
	grouped := make(map[int64][]T, len(items))
	for _, item := range items {
		k := key(item)
		grouped[k] = append(grouped[k], item)
	}
	return grouped
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
