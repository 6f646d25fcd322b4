package repository

import (
	"context"

	"bakery/internal/domain/model"
)

type MenuItemRepository interface {
	// categoryが空なら全件
	List(ctx context.Context, category string) ([]model.MenuItem, error)
	FindByID(ctx context.Context, id int64) (model.MenuItem, error)
	Create(ctx context.Context, item model.MenuItem) (model.MenuItem, error)
	Update(ctx context.Context, item model.MenuItem) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
