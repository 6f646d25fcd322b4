package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"bakery/internal/domain/model"
	repo "bakery/internal/repository"

	"gorm.io/gorm"
)

// サイト文言は1行だけのレコードにjsonbで丸ごと入れる。
type siteContentRecord struct {
	ID        int64     `gorm:"primaryKey"`
	Data      string    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"`
}

func (siteContentRecord) TableName() string {
	return "site_contents"
}

type ContentGormRepository struct {
	db *gorm.DB
}

func NewContentGormRepository(db *gorm.DB) *ContentGormRepository {
	return &ContentGormRepository{db: db}
}

func (r *ContentGormRepository) Migrate() error {
	return r.db.AutoMigrate(&siteContentRecord{})
}

func (r *ContentGormRepository) Get(ctx context.Context) (model.SiteContent, error) {
	var rec siteContentRecord
	err := r.db.WithContext(ctx).Where("id = ?", 1).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.SiteContent{}, repo.ErrNotFound
	}
	if err != nil {
		return model.SiteContent{}, err
	}

	var content model.SiteContent
	if err := json.Unmarshal([]byte(rec.Data), &content); err != nil {
		return model.SiteContent{}, err
	}
	return content, nil
}

func (r *ContentGormRepository) Save(ctx context.Context, content model.SiteContent) error {
	data, err := json.Marshal(content)
	if err != nil {
		return err
	}

	rec := siteContentRecord{ID: 1, Data: string(data)}
	// 1行だけなのでUPSERTで足りる
	return r.db.WithContext(ctx).Save(&rec).Error
}
