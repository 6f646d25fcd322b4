package repository

import (
	"context"

	"bakery/internal/domain/model"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry model.Inquiry) (model.Inquiry, error)
	List(ctx context.Context) ([]model.Inquiry, error)
}
