package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"bakery/internal/domain/model"
	repo "bakery/internal/repository"
)

type AdminOrderUsecase struct {
	orders repo.OrderRepository
}

func NewAdminOrderUsecase(orders repo.OrderRepository) *AdminOrderUsecase {
	return &AdminOrderUsecase{orders: orders}
}

type AdminUpdateOrderStatusInput struct {
	Status string
}

// 前進のみの遷移表。キャンセルは非終端からだけ。
var allowedTransitions = map[model.OrderStatus][]model.OrderStatus{
	model.OrderStatusPending:  {model.OrderStatusAccepted, model.OrderStatusCancelled},
	model.OrderStatusAccepted: {model.OrderStatusCompleted, model.OrderStatusCancelled},
}

func canTransition(from, to model.OrderStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// 注文一覧（管理画面）
func (u *AdminOrderUsecase) List(ctx context.Context) ([]OrderOutput, error) {
	orders, err := u.orders.ListAll(ctx)
	if err != nil {
		return []OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		lines, err := decodeOrderLines(o.ItemsJSON)
		if err != nil {
			return []OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
		}
		outs = append(outs, toOrderOutput(o, lines))
	}
	return outs, nil
}

// UpdateStatus はステータス遷移を検証して更新する。
// 元の実装は任意の文字列を通していたが、ここでは
// pending→accepted→completed（キャンセルは非終端から）だけを許す。
// 飛ばし・逆行・終端からの変更は現在値と要求値を添えて400。
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, orderID int64, in AdminUpdateOrderStatusInput) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	newStatus := model.OrderStatus(strings.TrimSpace(in.Status))
	switch newStatus {
	case model.OrderStatusPending, model.OrderStatusAccepted,
		model.OrderStatusCompleted, model.OrderStatusCancelled:
	default:
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 同じ値なら何もしない（200で現状を返す）
	if o.Status == newStatus {
		lines, err := decodeOrderLines(o.ItemsJSON)
		if err != nil {
			return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
		}
		return toOrderOutput(o, lines), nil
	}

	if !canTransition(o.Status, newStatus) {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("illegal status transition from %s to %s", o.Status, newStatus))
	}

	if err := u.orders.UpdateStatus(ctx, orderID, newStatus); err != nil {
		if err == repo.ErrNotFound {
			return OrderOutput{}, NewHTTPError(http.StatusNotFound, "order not found")
		}
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	o.Status = newStatus
	lines, err := decodeOrderLines(o.ItemsJSON)
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return toOrderOutput(o, lines), nil
}
