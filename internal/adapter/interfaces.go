// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the shop API.
//
// The primary abstraction is [ShopAdapter], which hides the REST details of
// the API behind typed calls. The package ships an HTTP implementation
// ([NewHTTPShopAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-shop-api/models"
)

// ShopAdapter defines typed access to the shop API.
type ShopAdapter interface {
	// SetToken stores the bearer token attached to requests that need one.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Login exchanges a userName/email pair for a token, stores it via
	// SetToken and returns it.
	Login(ctx context.Context, userName, email string) (string, error)

	CreateUser(ctx context.Context, req models.UserCreateRequest) error
	ListUsers(ctx context.Context) ([]models.User, error)
	// GetUser requires a token.
	GetUser(ctx context.Context, id int64) (models.User, error)

	CreateProduct(ctx context.Context, req models.ProductCreateRequest) error
	ListProducts(ctx context.Context) ([]models.Product, error)

	// Sitemap lists the routes served by the API.
	Sitemap(ctx context.Context) (models.Sitemap, error)
}
