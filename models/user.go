// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents a storefront account together with the addresses it owns.
//
// JSON keys reproduce the legacy wire contract verbatim (mixed casing and
// spaces included), so they must not be "normalised".
type User struct {
	// ID is the auto-assigned primary key.
	ID int64 `json:"user id"`

	// FirstName is the optional given name of the user.
	FirstName string `json:"userFirstName"`

	// LastName is the optional family name of the user.
	LastName string `json:"userLastName"`

	// UserName is the unique login name. It is also the identity embedded in
	// issued tokens.
	UserName string `json:"userName"`

	// Email is the unique e-mail address of the user.
	Email string `json:"email"`

	// Password is stored and returned as plain text. This is a known gap of
	// the legacy contract.
	Password string `json:"password"`

	// Addresses are the shipping addresses owned by the user.
	Addresses []Address `json:"addresses"`

	// BillingAddresses are the billing addresses owned by the user.
	BillingAddresses []BillingAddress `json:"Bill Address"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate carries the subset of user columns that may be overwritten by a
// partial update. Nil fields are left untouched.
type UserUpdate struct {
	ID       int64
	UserName *string
	Email    *string
}

// IsEmpty reports whether the update carries no column to overwrite.
func (u UserUpdate) IsEmpty() bool {
	return u.UserName == nil && u.Email == nil
}
