// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Picture is an image URL attached to a [Product].
type Picture struct {
	ID        int64  `json:"-"`
	URL       string `json:"Picture URL"`
	ProductID int64  `json:"product Id"`
}

// TableName returns the name of the database table
// associated with the Picture model.
func (p Picture) TableName() string {
	return "pictures"
}
