package usecase

import (
	"context"
	"net/http"
	"strings"

	"bakery/internal/domain/model"
	repo "bakery/internal/repository"
)

type InquiryUsecase struct {
	inquiryRepo repo.InquiryRepository
}

func NewInquiryUsecase(inquiryRepo repo.InquiryRepository) *InquiryUsecase {
	return &InquiryUsecase{inquiryRepo: inquiryRepo}
}

type CreateInquiryInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// 問い合わせ作成（公開）。名前と本文だけ必須。
func (u *InquiryUsecase) Create(ctx context.Context, in CreateInquiryInput) (model.Inquiry, error) {
	name := strings.TrimSpace(in.Name)
	message := strings.TrimSpace(in.Message)
	if name == "" {
		return model.Inquiry{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if message == "" {
		return model.Inquiry{}, NewHTTPError(http.StatusBadRequest, "message required")
	}

	created, err := u.inquiryRepo.Create(ctx, model.Inquiry{
		Name:    name,
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Message: message,
	})
	if err != nil {
		return model.Inquiry{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

// 一覧（管理画面）
func (u *InquiryUsecase) List(ctx context.Context) ([]model.Inquiry, error) {
	items, err := u.inquiryRepo.List(ctx)
	if err != nil {
		return []model.Inquiry{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}
