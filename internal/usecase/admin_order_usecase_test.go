package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"bakery/internal/domain/model"
	repo "bakery/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func orderWith(status model.OrderStatus) model.Order {
	itemsJSON, _ := json.Marshal([]model.OrderLine{
		{MenuItemID: 1, Name: "Sourdough Loaf", UnitPrice: d("180.00"), Quantity: 1},
	})
	return model.Order{
		ID:        10,
		Number:    "SS-DDDD4444",
		Status:    status,
		ItemsJSON: string(itemsJSON),
	}
}

func TestAdminOrderUsecase_UpdateStatus_PendingToAccepted(t *testing.T) {
	orders := new(OrderRepoMock)
	uc := NewAdminOrderUsecase(orders)

	orders.On("FindByID", mock.Anything, int64(10)).Return(orderWith(model.OrderStatusPending), nil)
	orders.On("UpdateStatus", mock.Anything, int64(10), model.OrderStatusAccepted).Return(nil)

	out, err := uc.UpdateStatus(context.Background(), 10, AdminUpdateOrderStatusInput{Status: "accepted"})
	assert.NoError(t, err)
	assert.Equal(t, "accepted", out.Status)
	orders.AssertExpectations(t)
}

func TestAdminOrderUsecase_UpdateStatus_AcceptedToCompleted(t *testing.T) {
	orders := new(OrderRepoMock)
	uc := NewAdminOrderUsecase(orders)

	orders.On("FindByID", mock.Anything, int64(10)).Return(orderWith(model.OrderStatusAccepted), nil)
	orders.On("UpdateStatus", mock.Anything, int64(10), model.OrderStatusCompleted).Return(nil)

	out, err := uc.UpdateStatus(context.Background(), 10, AdminUpdateOrderStatusInput{Status: "completed"})
	assert.NoError(t, err)
	assert.Equal(t, "completed", out.Status)
}

func TestAdminOrderUsecase_UpdateStatus_CancelFromNonTerminal(t *testing.T) {
	for _, from := range []model.OrderStatus{model.OrderStatusPending, model.OrderStatusAccepted} {
		orders := new(OrderRepoMock)
		uc := NewAdminOrderUsecase(orders)

		orders.On("FindByID", mock.Anything, int64(10)).Return(orderWith(from), nil)
		orders.On("UpdateStatus", mock.Anything, int64(10), model.OrderStatusCancelled).Return(nil)

		out, err := uc.UpdateStatus(context.Background(), 10, AdminUpdateOrderStatusInput{Status: "cancelled"})
		assert.NoError(t, err, "from=%s", from)
		assert.Equal(t, "cancelled", out.Status)
	}
}

func TestAdminOrderUsecase_UpdateStatus_RejectsSkippingAhead(t *testing.T) {
	orders := new(OrderRepoMock)
	uc := NewAdminOrderUsecase(orders)

	// pendingから直接completedには飛べない
	orders.On("FindByID", mock.Anything, int64(10)).Return(orderWith(model.OrderStatusPending), nil)

	_, err := uc.UpdateStatus(context.Background(), 10, AdminUpdateOrderStatusInput{Status: "completed"})
	assertErrContains(t, err, "illegal status transition from pending to completed")
	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminOrderUsecase_UpdateStatus_RejectsBackwards(t *testing.T) {
	orders := new(OrderRepoMock)
	uc := NewAdminOrderUsecase(orders)

	orders.On("FindByID", mock.Anything, int64(10)).Return(orderWith(model.OrderStatusAccepted), nil)

	_, err := uc.UpdateStatus(context.Background(), 10, AdminUpdateOrderStatusInput{Status: "pending"})
	assertErrContains(t, err, "illegal status transition from accepted to pending")
}

func TestAdminOrderUsecase_UpdateStatus_TerminalIsFrozen(t *testing.T) {
	for _, from := range []model.OrderStatus{model.OrderStatusCompleted, model.OrderStatusCancelled} {
		orders := new(OrderRepoMock)
		uc := NewAdminOrderUsecase(orders)

		orders.On("FindByID", mock.Anything, int64(10)).Return(orderWith(from), nil)

		_, err := uc.UpdateStatus(context.Background(), 10, AdminUpdateOrderStatusInput{Status: "accepted"})
		assertErrContains(t, err, "illegal status transition")
		orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestAdminOrderUsecase_UpdateStatus_SameStatusIsNoop(t *testing.T) {
	orders := new(OrderRepoMock)
	uc := NewAdminOrderUsecase(orders)

	orders.On("FindByID", mock.Anything, int64(10)).Return(orderWith(model.OrderStatusAccepted), nil)

	out, err := uc.UpdateStatus(context.Background(), 10, AdminUpdateOrderStatusInput{Status: "accepted"})
	assert.NoError(t, err)
	assert.Equal(t, "accepted", out.Status)
	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminOrderUsecase_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	orders := new(OrderRepoMock)
	uc := NewAdminOrderUsecase(orders)

	_, err := uc.UpdateStatus(context.Background(), 10, AdminUpdateOrderStatusInput{Status: "shipped"})
	assertErrContains(t, err, "invalid status")
	orders.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestAdminOrderUsecase_UpdateStatus_NotFound(t *testing.T) {
	orders := new(OrderRepoMock)
	uc := NewAdminOrderUsecase(orders)

	orders.On("FindByID", mock.Anything, int64(99)).Return(model.Order{}, repo.ErrNotFound)

	_, err := uc.UpdateStatus(context.Background(), 99, AdminUpdateOrderStatusInput{Status: "accepted"})
	assertErrContains(t, err, "order not found")
}

func TestAdminOrderUsecase_List_ReturnsDecodedOrders(t *testing.T) {
	orders := new(OrderRepoMock)
	uc := NewAdminOrderUsecase(orders)

	orders.On("ListAll", mock.Anything).Return([]model.Order{
		orderWith(model.OrderStatusPending),
	}, nil)

	outs, err := uc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, len(outs))
	assert.Equal(t, "pending", outs[0].Status)
	assert.Equal(t, 1, len(outs[0].Items))
}

func TestAdminOrderUsecase_List_RepoErrorBecomes500(t *testing.T) {
	orders := new(OrderRepoMock)
	uc := NewAdminOrderUsecase(orders)

	orders.On("ListAll", mock.Anything).Return(nil, errors.New("boom"))

	_, err := uc.List(context.Background())
	assertErrContains(t, err, "db error")
}
