package repository

import (
	"context"

	"bakery/internal/domain/model"
	repo "bakery/internal/repository"

	"gorm.io/gorm"
)

type GalleryGormRepository struct {
	db *gorm.DB
}

func NewGalleryGormRepository(db *gorm.DB) *GalleryGormRepository {
	return &GalleryGormRepository{db: db}
}

func (r *GalleryGormRepository) List(ctx context.Context) ([]model.GalleryImage, error) {
	var items []model.GalleryImage
	if err := r.db.WithContext(ctx).Order("id desc").Find(&items).Error; err != nil {
		return []model.GalleryImage{}, err
	}
	return items, nil
}

func (r *GalleryGormRepository) Create(ctx context.Context, image model.GalleryImage) (model.GalleryImage, error) {
	if err := r.db.WithContext(ctx).Create(&image).Error; err != nil {
		return model.GalleryImage{}, err
	}
	return image, nil
}

func (r *GalleryGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.GalleryImage{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
