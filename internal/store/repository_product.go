package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/models"
)

type productRepository struct {
	*DB
	logger *logger.Logger
}

func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		DB:     db,
		logger: logger,
	}
}

func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.AgeRange)
	return p, err
}

func (r *productRepository) selectProducts() sq.SelectBuilder {
	return r.builder.Select(productColumns...).From(productsTable).OrderBy("id")
}

func (r *productRepository) CreateProduct(ctx context.Context, product models.Product) (int64, error) {
	log := logger.FromContext(ctx)

	id, err := r.insert(ctx, r.builder.Insert(productsTable).
		Columns("product_name", "product_description", "product_price", "product_category", "product_age_range").
		Values(product.Name, product.Description, product.Price, product.Category, product.AgeRange))
	if err != nil {
		log.Err(err).Str("func", "productRepository.CreateProduct").Str("product_name", product.Name).Msg("failed to insert product")
		return 0, err
	}

	log.Debug().Str("func", "productRepository.CreateProduct").Int64("product_id", id).Msg("product created")
	return id, nil
}

func (r *productRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := queryAll(ctx, r.DB, r.selectProducts(), scanProduct)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "productRepository.ListProducts").Msg("failed to list products")
		return nil, err
	}
	return products, nil
}

func (r *productRepository) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	product, err := queryOne(ctx, r.DB, r.selectProducts().Where(sq.Eq{"id": id}), scanProduct)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "productRepository.GetProduct").Int64("product_id", id).Msg("failed to get product")
		return models.Product{}, err
	}
	return product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, update models.ProductUpdate) error {
	set := make(map[string]any, 2)
	if update.Name != nil {
		set["product_name"] = *update.Name
	}
	if update.Price != nil {
		set["product_price"] = *update.Price
	}

	err := r.execAffectingOne(ctx, r.builder.Update(productsTable).SetMap(set).Where(sq.Eq{"id": update.ID}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "productRepository.UpdateProduct").Int64("product_id", update.ID).Msg("failed to update product")
		return err
	}
	return nil
}

// DeleteProduct removes the product row only; its pictures are kept.
func (r *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	err := r.execAffectingOne(ctx, r.builder.Delete(productsTable).Where(sq.Eq{"id": id}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "productRepository.DeleteProduct").Int64("product_id", id).Msg("failed to delete product")
		return err
	}
	return nil
}
