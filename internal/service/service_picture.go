package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/validators"
	"github.com/MKhiriev/go-shop-api/models"
)

type pictureService struct {
	pictureRepository store.PictureRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewPictureService(pictureRepository store.PictureRepository, validator validators.Validator, logger *logger.Logger) PictureService {
	return &pictureService{
		pictureRepository: pictureRepository,
		validator:         validator,
		logger:            logger,
	}
}

func (p *pictureService) Create(ctx context.Context, req models.PictureCreateRequest) (int64, error) {
	if err := validateRequest(ctx, p.validator, req); err != nil {
		return 0, err
	}

	id, err := p.pictureRepository.CreatePicture(ctx, models.Picture{
		URL:       deref(req.URL),
		ProductID: deref(req.ProductID),
	})
	if err != nil {
		return 0, fmt.Errorf("error creating picture: %w", err)
	}

	return id, nil
}

func (p *pictureService) List(ctx context.Context) ([]models.Picture, error) {
	pictures, err := p.pictureRepository.ListPictures(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing pictures: %w", err)
	}
	return nonNil(pictures), nil
}

func (p *pictureService) Get(ctx context.Context, id int64) (models.Picture, error) {
	picture, err := p.pictureRepository.GetPicture(ctx, id)
	if err != nil {
		return models.Picture{}, fmt.Errorf("error getting picture %d: %w", id, err)
	}
	return picture, nil
}

func (p *pictureService) Update(ctx context.Context, id int64, _ models.PictureUpdateRequest) (models.Picture, error) {
	return p.Get(ctx, id)
}

func (p *pictureService) Delete(ctx context.Context, id int64) error {
	if err := p.pictureRepository.DeletePicture(ctx, id); err != nil {
		return fmt.Errorf("error deleting picture %d: %w", id, err)
	}
	return nil
}
