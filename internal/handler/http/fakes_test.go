// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/models"
)

// fakeAuthService implements service.AuthService. Each method field can be
// overridden per test case.
type fakeAuthService struct {
	loginFn       func(ctx context.Context, userName, email string) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeAuthService) Login(ctx context.Context, userName, email string) (models.User, error) {
	return f.loginFn(ctx, userName, email)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return f.createTokenFn(ctx, user)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return f.parseTokenFn(ctx, tokenString)
}

// acceptingAuth accepts only the token "good" and reports identity "alice".
func acceptingAuth() *fakeAuthService {
	return &fakeAuthService{
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			if tokenString != "good" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{Identity: "alice"}, nil
		},
	}
}

// fakeCRUD implements every resource service for the matching type
// arguments. Nil function fields panic when called, which fails the test.
type fakeCRUD[C, U, E any] struct {
	createFn func(ctx context.Context, req C) (int64, error)
	listFn   func(ctx context.Context) ([]E, error)
	getFn    func(ctx context.Context, id int64) (E, error)
	updateFn func(ctx context.Context, id int64, req U) (E, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (f *fakeCRUD[C, U, E]) Create(ctx context.Context, req C) (int64, error) {
	return f.createFn(ctx, req)
}

func (f *fakeCRUD[C, U, E]) List(ctx context.Context) ([]E, error) {
	return f.listFn(ctx)
}

func (f *fakeCRUD[C, U, E]) Get(ctx context.Context, id int64) (E, error) {
	return f.getFn(ctx, id)
}

func (f *fakeCRUD[C, U, E]) Update(ctx context.Context, id int64, req U) (E, error) {
	return f.updateFn(ctx, id, req)
}

func (f *fakeCRUD[C, U, E]) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

type (
	fakeUserService           = fakeCRUD[models.UserCreateRequest, models.UserUpdateRequest, models.User]
	fakeProductService        = fakeCRUD[models.ProductCreateRequest, models.ProductUpdateRequest, models.Product]
	fakeAddressService        = fakeCRUD[models.AddressCreateRequest, models.AddressUpdateRequest, models.Address]
	fakeBillingAddressService = fakeCRUD[models.BillingAddressCreateRequest, models.BillingAddressUpdateRequest, models.BillingAddress]
	fakePictureService        = fakeCRUD[models.PictureCreateRequest, models.PictureUpdateRequest, models.Picture]
)

// fullServices returns a Services value whose every field is a fake with no
// behaviour. Tests override the ones they exercise.
func fullServices() *service.Services {
	return &service.Services{
		AuthService:           acceptingAuth(),
		UserService:           &fakeUserService{},
		ProductService:        &fakeProductService{},
		AddressService:        &fakeAddressService{},
		BillingAddressService: &fakeBillingAddressService{},
		PictureService:        &fakePictureService{},
	}
}

func newTestHandler() *Handler {
	return NewHandler(fullServices(), config.Server{CORSAllowedOrigins: []string{"*"}}, logger.Nop())
}

func newTestRouter(t *testing.T, services *service.Services) http.Handler {
	t.Helper()
	return NewHandler(services, config.Server{CORSAllowedOrigins: []string{"*"}}, logger.Nop()).Init()
}

// do runs one request through handler and returns the recorder.
func do(t *testing.T, handler http.Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	require.True(t, len(headers)%2 == 0, "headers must be key/value pairs")

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for i := 0; i < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}
