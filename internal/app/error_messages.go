// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// shop API handlers and services.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Clients match
// on them, so the wording must not change.
package app

const (
	// MsgInvalidBody is returned when a create or update request carries no
	// body or a body that is not a JSON object.
	MsgInvalidBody = "You need to specify the request body as a json object"

	// MsgMissingJSON is returned by the login route when the request is not JSON.
	MsgMissingJSON = "Missing JSON in request"

	// MsgMissingUserName is returned by the login route when userName is
	// absent or empty.
	MsgMissingUserName = "Missing username parameter"

	// MsgMissingEmail is returned by the login route when email is absent or
	// empty.
	MsgMissingEmail = "Missing email parameter"

	// MsgBadCredentials is returned when no user owns the supplied
	// userName/email pair.
	MsgBadCredentials = "Bad username or email"

	// MsgInvalidMethod is the plain-text body answered for a known path
	// requested with an unsupported method.
	MsgInvalidMethod = "Invalid Method"

	// MsgNotFound is returned for paths that match no route.
	MsgNotFound = "Not Found"
)

// Per-resource not-found messages.
const (
	MsgUserNotFound           = "User not found"
	MsgProductNotFound        = "Product not found"
	MsgAddressNotFound        = "Address not found"
	MsgBillingAddressNotFound = "Billing Address not found"
	MsgPictureNotFound        = "Picture not found"
)
