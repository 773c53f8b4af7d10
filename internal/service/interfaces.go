package service

import (
	"context"

	"github.com/MKhiriev/go-shop-api/models"
)

type AuthService interface {
	// Login looks up the user owning both userName and email. The password
	// is never checked.
	Login(ctx context.Context, userName, email string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService returns users with their addresses and billing addresses
// attached.
type UserService interface {
	Create(ctx context.Context, req models.UserCreateRequest) (int64, error)
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (models.User, error)
	Update(ctx context.Context, id int64, req models.UserUpdateRequest) (models.User, error)
	Delete(ctx context.Context, id int64) error
}

// ProductService returns products with their pictures attached.
type ProductService interface {
	Create(ctx context.Context, req models.ProductCreateRequest) (int64, error)
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id int64) (models.Product, error)
	Update(ctx context.Context, id int64, req models.ProductUpdateRequest) (models.Product, error)
	Delete(ctx context.Context, id int64) error
}

type AddressService interface {
	Create(ctx context.Context, req models.AddressCreateRequest) (int64, error)
	List(ctx context.Context) ([]models.Address, error)
	Get(ctx context.Context, id int64) (models.Address, error)
	Update(ctx context.Context, id int64, req models.AddressUpdateRequest) (models.Address, error)
	Delete(ctx context.Context, id int64) error
}

type BillingAddressService interface {
	Create(ctx context.Context, req models.BillingAddressCreateRequest) (int64, error)
	List(ctx context.Context) ([]models.BillingAddress, error)
	Get(ctx context.Context, id int64) (models.BillingAddress, error)
	Update(ctx context.Context, id int64, req models.BillingAddressUpdateRequest) (models.BillingAddress, error)
	Delete(ctx context.Context, id int64) error
}

// PictureService has no updatable columns: Update only re-reads the row.
type PictureService interface {
	Create(ctx context.Context, req models.PictureCreateRequest) (int64, error)
	List(ctx context.Context) ([]models.Picture, error)
	Get(ctx context.Context, id int64) (models.Picture, error)
	Update(ctx context.Context, id int64, req models.PictureUpdateRequest) (models.Picture, error)
	Delete(ctx context.Context, id int64) error
}
