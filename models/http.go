// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Request bodies accepted by the HTTP gateway.
//
// Pointer fields distinguish "absent" from "empty": a required field only has
// to be present, its value may be an empty string. The `message` tag holds the
// text reported when the field is missing; fields are validated in
// declaration order and the first missing one wins.

// UserCreateRequest is the body of POST /user.
type UserCreateRequest struct {
	FirstName *string `json:"userFirstName"`
	LastName  *string `json:"userLastName"`
	UserName  *string `json:"userName" validate:"required" message:"You need to specify the username"`
	Email     *string `json:"email" validate:"required" message:"You need to specify the email"`
	Password  *string `json:"password" validate:"required" message:"You need to enter your password"`
}

// UserUpdateRequest is the body of PUT /user/{id}. Only these two keys are
// honoured; note the lower-case "username".
type UserUpdateRequest struct {
	UserName *string `json:"username"`
	Email    *string `json:"email"`
}

// ProductCreateRequest is the body of POST /product.
type ProductCreateRequest struct {
	Name        *string `json:"productName" validate:"required" message:"You need to specify the product name"`
	Description *string `json:"productDescription"`
	Price       *string `json:"productPrice" validate:"required" message:"You need to specify the product price"`
	Category    *string `json:"productCategory"`
	AgeRange    *string `json:"productAgeRange"`
}

// ProductUpdateRequest is the body of PUT /product/{id}.
type ProductUpdateRequest struct {
	Name  *string `json:"productName"`
	Price *string `json:"productPrice"`
}

// AddressCreateRequest is the body of POST /address.
type AddressCreateRequest struct {
	Street           *string `json:"userStreet" validate:"required" message:"You need to specify the street"`
	Number           *string `json:"userNumber" validate:"required" message:"You need to specify the address number"`
	City             *string `json:"userCity" validate:"required" message:"You need to specify the city"`
	State            *string `json:"userState" validate:"required" message:"You need to specify the state"`
	ZipCode          *string `json:"userZipCode" validate:"required" message:"You need to specify the Zip Code"`
	IsBillingAddress *bool   `json:"isBillingAddress"`
	UserID           *int64  `json:"person_id" validate:"required" message:"You need to specify the person id"`
}

// AddressUpdateRequest is the body of PUT /address/{id}.
type AddressUpdateRequest struct {
	Street  *string `json:"userStreet"`
	Number  *string `json:"userNumber"`
	City    *string `json:"userCity"`
	State   *string `json:"userState"`
	ZipCode *string `json:"userZipCode"`
}

// BillingAddressCreateRequest is the body of POST /billingaddress. The
// address keys must be present but may be null; the columns are nullable.
type BillingAddressCreateRequest struct {
	Street  Optional[string] `json:"billingStreet" validate:"required" message:"You need to specify the billing street"`
	Number  Optional[string] `json:"billingNumber" validate:"required" message:"You need to specify the billing address number"`
	City    Optional[string] `json:"billingCity" validate:"required" message:"You need to specify the billing city"`
	State   Optional[string] `json:"billingState" validate:"required" message:"You need to specify the billing state"`
	ZipCode Optional[string] `json:"billingZipCode" validate:"required" message:"You need to specify the billing Zip Code"`
	UserID  *int64           `json:"person_id" validate:"required" message:"You need to specify the person id"`
}

// BillingAddressUpdateRequest is the body of PUT /billingaddress/{id}. A key
// present with null clears the column.
type BillingAddressUpdateRequest struct {
	Street  Optional[string] `json:"billingStreet"`
	Number  Optional[string] `json:"billingNumber"`
	City    Optional[string] `json:"billingCity"`
	State   Optional[string] `json:"billingState"`
	ZipCode Optional[string] `json:"billingZipCode"`
}

// PictureCreateRequest is the body of POST /picture.
type PictureCreateRequest struct {
	URL       *string `json:"picture_url" validate:"required" message:"You need to specify the picture URL"`
	ProductID *int64  `json:"photos_id" validate:"required" message:"You need to specify the product id"`
}

// PictureUpdateRequest is the body of PUT /picture/{id}. A picture has no
// updatable columns; the body is still mandatory.
type PictureUpdateRequest struct{}

// LoginRequest is the body of POST /login. Password is accepted but never
// checked.
type LoginRequest struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// LoginResponse is returned by a successful POST /login.
type LoginResponse struct {
	JWT string `json:"jwt"`
}

// ErrorResponse is the single shape every failed request is answered with.
type ErrorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

// Route describes one registered method/path pair.
type Route struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// Sitemap lists every route served by the gateway.
type Sitemap struct {
	Routes []Route `json:"routes"`
}
