package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/models"
)

// pictureRepository stores product picture URLs. Pictures have no updatable
// column, so there is no update method.
type pictureRepository struct {
	*DB
	logger *logger.Logger
}

func NewPictureRepository(db *DB, logger *logger.Logger) PictureRepository {
	logger.Debug().Msg("creating picture repository")
	return &pictureRepository{
		DB:     db,
		logger: logger,
	}
}

func scanPicture(row rowScanner) (models.Picture, error) {
	var p models.Picture
	err := row.Scan(&p.ID, &p.URL, &p.ProductID)
	return p, err
}

func (r *pictureRepository) selectPictures() sq.SelectBuilder {
	return r.builder.Select(pictureColumns...).From(picturesTable).OrderBy("id")
}

func (r *pictureRepository) CreatePicture(ctx context.Context, picture models.Picture) (int64, error) {
	log := logger.FromContext(ctx)

	id, err := r.insert(ctx, r.builder.Insert(picturesTable).
		Columns("picture_url", "photos_id").
		Values(picture.URL, picture.ProductID))
	if err != nil {
		log.Err(err).Str("func", "pictureRepository.CreatePicture").Int64("product_id", picture.ProductID).Msg("failed to insert picture")
		return 0, err
	}

	log.Debug().Str("func", "pictureRepository.CreatePicture").Int64("picture_id", id).Msg("picture created")
	return id, nil
}

func (r *pictureRepository) ListPictures(ctx context.Context) ([]models.Picture, error) {
	pictures, err := queryAll(ctx, r.DB, r.selectPictures(), scanPicture)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "pictureRepository.ListPictures").Msg("failed to list pictures")
		return nil, err
	}
	return pictures, nil
}

func (r *pictureRepository) ListPicturesByProductIDs(ctx context.Context, productIDs []int64) ([]models.Picture, error) {
	if len(productIDs) == 0 {
		return []models.Picture{}, nil
	}

	pictures, err := queryAll(ctx, r.DB, r.selectPictures().Where(sq.Eq{"photos_id": productIDs}), scanPicture)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "pictureRepository.ListPicturesByProductIDs").
			Int("product_ids_count", len(productIDs)).
			Msg("failed to list pictures of products")
		return nil, err
	}
	return pictures, nil
}

func (r *pictureRepository) GetPicture(ctx context.Context, id int64) (models.Picture, error) {
	picture, err := queryOne(ctx, r.DB, r.selectPictures().Where(sq.Eq{"id": id}), scanPicture)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "pictureRepository.GetPicture").Int64("picture_id", id).Msg("failed to get picture")
		return models.Picture{}, err
	}
	return picture, nil
}

func (r *pictureRepository) DeletePicture(ctx context.Context, id int64) error {
	err := r.execAffectingOne(ctx, r.builder.Delete(picturesTable).Where(sq.Eq{"id": id}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "pictureRepository.DeletePicture").Int64("picture_id", id).Msg("failed to delete picture")
		return err
	}
	return nil
}
