// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Product is a catalogue item with its pictures.
type Product struct {
	ID          int64   `json:"Product id"`
	Name        string  `json:"ProductName"`
	Description *string `json:"productDescription"`

	// Price is kept as an unvalidated string.
	Price    string  `json:"productPrice"`
	Category *string `json:"productCategory"`
	AgeRange *string `json:"productAgeRange"`

	Pictures []Picture `json:"photo"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

// ProductUpdate carries the product columns a PUT may overwrite.
type ProductUpdate struct {
	ID    int64
	Name  *string
	Price *string
}

// IsEmpty reports whether the update carries no column to overwrite.
func (p ProductUpdate) IsEmpty() bool {
	return p.Name == nil && p.Price == nil
}
