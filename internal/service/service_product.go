package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/validators"
	"github.com/MKhiriev/go-shop-api/models"
)

type productService struct {
	productRepository store.ProductRepository
	pictureRepository store.PictureRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewProductService(
	productRepository store.ProductRepository,
	pictureRepository store.PictureRepository,
	validator validators.Validator,
	logger *logger.Logger,
) ProductService {
	return &productService{
		productRepository: productRepository,
		pictureRepository: pictureRepository,
		validator:         validator,
		logger:            logger,
	}
}

func (p *productService) Create(ctx context.Context, req models.ProductCreateRequest) (int64, error) {
	if err := validateRequest(ctx, p.validator, req); err != nil {
		return 0, err
	}

	id, err := p.productRepository.CreateProduct(ctx, models.Product{
		Name:        deref(req.Name),
		Description: req.Description,
		Price:       deref(req.Price),
		Category:    req.Category,
		AgeRange:    req.AgeRange,
	})
	if err != nil {
		return 0, fmt.Errorf("error creating product: %w", err)
	}

	return id, nil
}

func (p *productService) List(ctx context.Context) ([]models.Product, error) {
	products, err := p.productRepository.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}

	if err = p.attachPictures(ctx, products); err != nil {
		return nil, err
	}
	return nonNil(products), nil
}

func (p *productService) Get(ctx context.Context, id int64) (models.Product, error) {
	product, err := p.productRepository.GetProduct(ctx, id)
	if err != nil {
		return models.Product{}, fmt.Errorf("error getting product %d: %w", id, err)
	}

	products := []models.Product{product}
	if err = p.attachPictures(ctx, products); err != nil {
		return models.Product{}, err
	}
	return products[0], nil
}

func (p *productService) Update(ctx context.Context, id int64, req models.ProductUpdateRequest) (models.Product, error) {
	update := models.ProductUpdate{ID: id, Name: req.Name, Price: req.Price}
	if !update.IsEmpty() {
		if err := p.productRepository.UpdateProduct(ctx, update); err != nil {
			return models.Product{}, fmt.Errorf("error updating product %d: %w", id, err)
		}
	}

	return p.Get(ctx, id)
}

func (p *productService) Delete(ctx context.Context, id int64) error {
	if err := p.productRepository.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("error deleting product %d: %w", id, err)
	}
	return nil
}

func (p *productService) attachPictures(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(products))
	for _, product := range products {
		ids = append(ids, product.ID)
	}

	pictures, err := p.pictureRepository.ListPicturesByProductIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("error listing pictures of products: %w", err)
	}

	picturesByProduct := groupBy(pictures, func(pic models.Picture) int64 { return pic.ProductID })
	for i := range products {
		products[i].Pictures = nonNil(picturesByProduct[products[i].ID])
	}
	return nil
}
