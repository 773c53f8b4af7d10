// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/go-shop-api/internal/app"
)

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// Request decoding errors.
var (
	// ErrInvalidBody is returned when a create or update request carries no
	// body, or a body that is not a JSON object.
	ErrInvalidBody = errors.New(app.MsgInvalidBody)

	// ErrMissingJSON is returned by POST /login for a body that is not JSON.
	ErrMissingJSON = errors.New(app.MsgMissingJSON)

	// ErrBodyTooLarge is returned when a request body exceeds maxBodyBytes.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrInvalidID is returned when the {id} path segment does not fit int64.
	ErrInvalidID = errors.New("invalid id")
)
