package repository

import (
	"context"

	"bakery/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (model.Order, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	// 管理画面用の全件（新しい順）
	ListAll(ctx context.Context) ([]model.Order, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}
