package usecase

import (
	"context"
	"net/http"
	"strings"

	"bakery/internal/domain/model"
	repo "bakery/internal/repository"
)

type GalleryUsecase struct {
	galleryRepo repo.GalleryRepository
}

func NewGalleryUsecase(galleryRepo repo.GalleryRepository) *GalleryUsecase {
	return &GalleryUsecase{galleryRepo: galleryRepo}
}

func (u *GalleryUsecase) List(ctx context.Context) ([]model.GalleryImage, error) {
	items, err := u.galleryRepo.List(ctx)
	if err != nil {
		return []model.GalleryImage{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

type AdminGalleryInput struct {
	Title    string
	ImageURL string
}

func (u *GalleryUsecase) AdminCreate(ctx context.Context, in AdminGalleryInput) (model.GalleryImage, error) {
	if strings.TrimSpace(in.ImageURL) == "" {
		return model.GalleryImage{}, NewHTTPError(http.StatusBadRequest, "image url required")
	}

	created, err := u.galleryRepo.Create(ctx, model.GalleryImage{
		Title:    strings.TrimSpace(in.Title),
		ImageURL: strings.TrimSpace(in.ImageURL),
	})
	if err != nil {
		return model.GalleryImage{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *GalleryUsecase) AdminDelete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.galleryRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "image not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
