package store

import "github.com/MKhiriev/go-shop-api/internal/logger"

// Storages groups every repository the service layer depends on.
type Storages struct {
	UserRepository           UserRepository
	ProductRepository        ProductRepository
	AddressRepository        AddressRepository
	BillingAddressRepository BillingAddressRepository
	PictureRepository        PictureRepository
}

// NewStorages builds all repositories on top of one connection pool.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	logger.Debug().Msg("creating storages")

	return &Storages{
		UserRepository:           NewUserRepository(db, logger),
		ProductRepository:        NewProductRepository(db, logger),
		AddressRepository:        NewAddressRepository(db, logger),
		BillingAddressRepository: NewBillingAddressRepository(db, logger),
		PictureRepository:        NewPictureRepository(db, logger),
	}
}
