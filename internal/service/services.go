package service

import (
	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/validators"
)

type Services struct {
	AuthService           AuthService
	UserService           UserService
	ProductService        ProductService
	AddressService        AddressService
	BillingAddressService BillingAddressService
	PictureService        PictureService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewRequestValidator()

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.App, logger),
		UserService: NewUserService(storages.UserRepository, storages.AddressRepository,
			storages.BillingAddressRepository, validator, logger),
		ProductService:        NewProductService(storages.ProductRepository, storages.PictureRepository, validator, logger),
		AddressService:        NewAddressService(storages.AddressRepository, validator, logger),
		BillingAddressService: NewBillingAddressService(storages.BillingAddressRepository, validator, logger),
		PictureService:        NewPictureService(storages.PictureRepository, validator, logger),
	}
}
