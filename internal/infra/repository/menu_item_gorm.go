package repository

import (
	"context"
	"errors"

	"bakery/internal/domain/model"
	repo "bakery/internal/repository"

	"gorm.io/gorm"
)

type MenuItemGormRepository struct {
	db *gorm.DB
}

func NewMenuItemGormRepository(db *gorm.DB) *MenuItemGormRepository {
	return &MenuItemGormRepository{db: db}
}

func (r *MenuItemGormRepository) List(ctx context.Context, category string) ([]model.MenuItem, error) {
	q := r.db.WithContext(ctx).Model(&model.MenuItem{})
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var items []model.MenuItem
	if err := q.Order("id asc").Find(&items).Error; err != nil {
		return []model.MenuItem{}, err
	}
	return items, nil
}

func (r *MenuItemGormRepository) FindByID(ctx context.Context, id int64) (model.MenuItem, error) {
	var item model.MenuItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.MenuItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.MenuItem{}, err
	}
	return item, nil
}

func (r *MenuItemGormRepository) Create(ctx context.Context, item model.MenuItem) (model.MenuItem, error) {
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return model.MenuItem{}, err
	}
	return item, nil
}

func (r *MenuItemGormRepository) Update(ctx context.Context, item model.MenuItem) error {
	res := r.db.WithContext(ctx).Model(&model.MenuItem{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"name":         item.Name,
			"description":  item.Description,
			"price":        item.Price,
			"category":     item.Category,
			"image_url":    item.ImageURL,
			"is_veg":       item.IsVeg,
			"is_seasonal":  item.IsSeasonal,
			"is_available": item.IsAvailable,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *MenuItemGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MenuItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *MenuItemGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.MenuItem{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
