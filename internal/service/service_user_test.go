// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/mock"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/validators"
	"github.com/MKhiriev/go-shop-api/models"
)

func strPtr(s string) *string { return &s }
func int64Ptr(i int64) *int64 { return &i }

type userServiceMocks struct {
	users   *mock.MockUserRepository
	address *mock.MockAddressRepository
	billing *mock.MockBillingAddressRepository
}

func newTestUserService(t *testing.T) (UserService, userServiceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := userServiceMocks{
		users:   mock.NewMockUserRepository(ctrl),
		address: mock.NewMockAddressRepository(ctrl),
		billing: mock.NewMockBillingAddressRepository(ctrl),
	}
	svc := NewUserService(m.users, m.address, m.billing, validators.NewRequestValidator(), logger.Nop())
	return svc, m
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, m := newTestUserService(t)
		m.users.EXPECT().CreateUser(gomock.Any(), models.User{
			FirstName: "Alice", UserName: "alice", Email: "a@x", Password: "pw",
		}).Return(int64(3), nil)

		id, err := svc.Create(ctx, models.UserCreateRequest{
			FirstName: strPtr("Alice"), UserName: strPtr("alice"), Email: strPtr("a@x"), Password: strPtr("pw"),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), id)
	})

	t.Run("missing email never reaches storage", func(t *testing.T) {
		svc, _ := newTestUserService(t)

		_, err := svc.Create(ctx, models.UserCreateRequest{UserName: strPtr("alice"), Password: strPtr("pw")})
		require.ErrorIs(t, err, ErrValidation)
		var valErr *validators.ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, "You need to specify the email", valErr.Message)
	})

	t.Run("duplicate", func(t *testing.T) {
		svc, m := newTestUserService(t)
		m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(int64(0), store.ErrConstraintViolation)

		_, err := svc.Create(ctx, models.UserCreateRequest{UserName: strPtr("a"), Email: strPtr("b"), Password: strPtr("c")})
		assert.ErrorIs(t, err, store.ErrConstraintViolation)
	})
}

func TestUserService_List_AssemblesAddresses(t *testing.T) {
	svc, m := newTestUserService(t)
	ctx := context.Background()

	m.users.EXPECT().ListUsers(gomock.Any()).Return([]models.User{{ID: 1, UserName: "a"}, {ID: 2, UserName: "b"}}, nil)
	m.address.EXPECT().ListAddressesByUserIDs(gomock.Any(), []int64{1, 2}).Return([]models.Address{
		{ID: 10, UserID: 2, Street: "Main"},
		{ID: 11, UserID: 2, Street: "Side"},
	}, nil)
	m.billing.EXPECT().ListBillingAddressesByUserIDs(gomock.Any(), []int64{1, 2}).Return([]models.BillingAddress{
		{ID: 20, UserID: 1, City: strPtr("X")},
	}, nil)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Empty(t, users[0].Addresses)
	assert.NotNil(t, users[0].Addresses)
	require.Len(t, users[0].BillingAddresses, 1)
	assert.Equal(t, int64(20), users[0].BillingAddresses[0].ID)

	require.Len(t, users[1].Addresses, 2)
	assert.Equal(t, "Main", users[1].Addresses[0].Street)
	assert.Equal(t, "Side", users[1].Addresses[1].Street)
	assert.NotNil(t, users[1].BillingAddresses)
}

func TestUserService_List_Empty(t *testing.T) {
	svc, m := newTestUserService(t)
	m.users.EXPECT().ListUsers(gomock.Any()).Return(nil, nil)

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserService_List_AddressFailure(t *testing.T) {
	svc, m := newTestUserService(t)
	dbErr := errors.New("boom")
	m.users.EXPECT().ListUsers(gomock.Any()).Return([]models.User{{ID: 1}}, nil)
	m.address.EXPECT().ListAddressesByUserIDs(gomock.Any(), []int64{1}).Return(nil, dbErr)

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, dbErr)
}

func TestUserService_Get_NotFound(t *testing.T) {
	svc, m := newTestUserService(t)
	m.users.EXPECT().GetUser(gomock.Any(), int64(999999)).Return(models.User{}, store.ErrNotFound)

	_, err := svc.Get(context.Background(), 999999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("allowlisted fields only", func(t *testing.T) {
		svc, m := newTestUserService(t)
		gomock.InOrder(
			m.users.EXPECT().UpdateUser(gomock.Any(), models.UserUpdate{ID: 4, Email: strPtr("new@x")}).Return(nil),
			m.users.EXPECT().GetUser(gomock.Any(), int64(4)).Return(models.User{ID: 4, Email: "new@x"}, nil),
		)
		m.address.EXPECT().ListAddressesByUserIDs(gomock.Any(), []int64{4}).Return(nil, nil)
		m.billing.EXPECT().ListBillingAddressesByUserIDs(gomock.Any(), []int64{4}).Return(nil, nil)

		user, err := svc.Update(ctx, 4, models.UserUpdateRequest{Email: strPtr("new@x")})
		require.NoError(t, err)
		assert.Equal(t, "new@x", user.Email)
	})

	t.Run("empty body only reads", func(t *testing.T) {
		svc, m := newTestUserService(t)
		m.users.EXPECT().GetUser(gomock.Any(), int64(4)).Return(models.User{}, store.ErrNotFound)

		_, err := svc.Update(ctx, 4, models.UserUpdateRequest{})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("absent id", func(t *testing.T) {
		svc, m := newTestUserService(t)
		m.users.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(store.ErrNotFound)

		_, err := svc.Update(ctx, 4, models.UserUpdateRequest{UserName: strPtr("bob")})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestUserService_Delete(t *testing.T) {
	svc, m := newTestUserService(t)
	m.users.EXPECT().DeleteUser(gomock.Any(), int64(5)).Return(nil)
	m.users.EXPECT().DeleteUser(gomock.Any(), int64(6)).Return(store.ErrNotFound)

	require.NoError(t, svc.Delete(context.Background(), 5))
	assert.ErrorIs(t, svc.Delete(context.Background(), 6), store.ErrNotFound)
}
