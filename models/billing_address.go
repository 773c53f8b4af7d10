// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BillingAddress is a billing address owned by a [User]. Every column except
// the owner reference is nullable.
//
// The identifier is deliberately absent from the serialized form.
type BillingAddress struct {
	ID      int64   `json:"-"`
	Street  *string `json:"Billing Street"`
	Number  *string `json:"Billing Number"`
	City    *string `json:"Billing City"`
	State   *string `json:"Billing State"`
	ZipCode *string `json:"Billing Zip Code"`
	UserID  int64   `json:"user"`
}

// TableName returns the name of the database table
// associated with the BillingAddress model.
func (b BillingAddress) TableName() string {
	return "billing_addresses"
}

// BillingAddressUpdate carries the billing address columns a PUT may
// overwrite. Street and number are not part of it, see
// service.billingAddressService.Update.
// A set Optional with a nil value writes NULL.
type BillingAddressUpdate struct {
	ID      int64
	City    Optional[string]
	State   Optional[string]
	ZipCode Optional[string]
}

// IsEmpty reports whether the update carries no column to overwrite.
func (b BillingAddressUpdate) IsEmpty() bool {
	return !b.City.Set && !b.State.Set && !b.ZipCode.Set
}
