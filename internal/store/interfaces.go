package store

import (
	"context"

	"github.com/MKhiriev/go-shop-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists rows of the "users" table.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (int64, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	UpdateUser(ctx context.Context, update models.UserUpdate) error
	DeleteUser(ctx context.Context, id int64) error
	// FindUserByCredentials returns the user matching both userName and
	// email exactly, or [ErrNotFound].
	FindUserByCredentials(ctx context.Context, userName, email string) (models.User, error)
}

// ProductRepository persists rows of the "products" table.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product models.Product) (int64, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (models.Product, error)
	UpdateProduct(ctx context.Context, update models.ProductUpdate) error
	DeleteProduct(ctx context.Context, id int64) error
}

// AddressRepository persists rows of the "addresses" table.
type AddressRepository interface {
	CreateAddress(ctx context.Context, address models.Address) (int64, error)
	ListAddresses(ctx context.Context) ([]models.Address, error)
	// ListAddressesByUserIDs returns the addresses owned by any of userIDs,
	// ordered by id.
	ListAddressesByUserIDs(ctx context.Context, userIDs []int64) ([]models.Address, error)
	GetAddress(ctx context.Context, id int64) (models.Address, error)
	UpdateAddress(ctx context.Context, update models.AddressUpdate) error
	DeleteAddress(ctx context.Context, id int64) error
}

// BillingAddressRepository persists rows of the "billing_addresses" table.
type BillingAddressRepository interface {
	CreateBillingAddress(ctx context.Context, address models.BillingAddress) (int64, error)
	ListBillingAddresses(ctx context.Context) ([]models.BillingAddress, error)
	ListBillingAddressesByUserIDs(ctx context.Context, userIDs []int64) ([]models.BillingAddress, error)
	GetBillingAddress(ctx context.Context, id int64) (models.BillingAddress, error)
	UpdateBillingAddress(ctx context.Context, update models.BillingAddressUpdate) error
	DeleteBillingAddress(ctx context.Context, id int64) error
}

// PictureRepository persists rows of the "pictures" table.
type PictureRepository interface {
	CreatePicture(ctx context.Context, picture models.Picture) (int64, error)
	ListPictures(ctx context.Context) ([]models.Picture, error)
	ListPicturesByProductIDs(ctx context.Context, productIDs []int64) ([]models.Picture, error)
	GetPicture(ctx context.Context, id int64) (models.Picture, error)
	DeletePicture(ctx context.Context, id int64) error
}
