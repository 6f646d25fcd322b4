package repository

import (
	"context"

	"bakery/internal/domain/model"

	"gorm.io/gorm"
)

type InquiryGormRepository struct {
	db *gorm.DB
}

func NewInquiryGormRepository(db *gorm.DB) *InquiryGormRepository {
	return &InquiryGormRepository{db: db}
}

func (r *InquiryGormRepository) Create(ctx context.Context, inquiry model.Inquiry) (model.Inquiry, error) {
	if err := r.db.WithContext(ctx).Create(&inquiry).Error; err != nil {
		return model.Inquiry{}, err
	}
	return inquiry, nil
}

func (r *InquiryGormRepository) List(ctx context.Context) ([]model.Inquiry, error) {
	var items []model.Inquiry
	if err := r.db.WithContext(ctx).Order("id desc").Find(&items).Error; err != nil {
		return []model.Inquiry{}, err
	}
	return items, nil
}
