package repository

import (
	"context"

	"bakery/internal/domain/model"
)

type ContentRepository interface {
	// 未設定ならErrNotFound
	Get(ctx context.Context) (model.SiteContent, error)
	Save(ctx context.Context, content model.SiteContent) error
}
