package repository

import (
	"context"

	"bakery/internal/domain/model"
)

type GalleryRepository interface {
	List(ctx context.Context) ([]model.GalleryImage, error)
	Create(ctx context.Context, image model.GalleryImage) (model.GalleryImage, error)
	Delete(ctx context.Context, id int64) error
}
