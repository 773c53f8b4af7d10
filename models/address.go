// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Address is a shipping address owned by a [User].
type Address struct {
	ID      int64  `json:"street id"`
	Street  string `json:"User Street"`
	Number  string `json:"User Number"`
	City    string `json:"User City"`
	State   string `json:"User State"`
	ZipCode string `json:"User Zip Code"`

	// IsBillingAddress is nullable: nil means the flag was never supplied.
	IsBillingAddress *bool `json:"Same as Billing Address"`

	// UserID references the owning user. The reference is not enforced, so it
	// may point to a user that no longer exists.
	UserID int64 `json:"user"`
}

// TableName returns the name of the database table
// associated with the Address model.
func (a Address) TableName() string {
	return "addresses"
}

// AddressUpdate carries the address columns a PUT may overwrite.
type AddressUpdate struct {
	ID      int64
	Street  *string
	Number  *string
	City    *string
	State   *string
	ZipCode *string
}

// IsEmpty reports whether the update carries no column to overwrite.
func (a AddressUpdate) IsEmpty() bool {
	return a.Street == nil && a.Number == nil && a.City == nil && a.State == nil && a.ZipCode == nil
}
