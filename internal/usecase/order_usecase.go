package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"bakery/internal/domain/model"
	"bakery/internal/pricing"
	repo "bakery/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderUsecase struct {
	orders repo.OrderRepository
}

func NewOrderUsecase(orders repo.OrderRepository) *OrderUsecase {
	return &OrderUsecase{orders: orders}
}

// 注文1明細の入力。保存前にここで型を確定させる
// （緩い配列のままjsonbへ書かない）。
type OrderLineInput struct {
	MenuItemID    int64           `json:"menu_item_id"`
	Name          string          `json:"name"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Quantity      int64           `json:"quantity"`
	Customization string          `json:"customization"`
}

type PlaceOrderInput struct {
	CustomerName    string
	CustomerPhone   string
	DeliveryType    string
	DeliveryAddress string
	// クライアント申告のuser id。ログイン済みならセッション側で上書きされる。
	UserID *int64
	Items  []OrderLineInput
}

type OrderOutput struct {
	ID              int64             `json:"id"`
	Number          string            `json:"number"`
	UserID          *int64            `json:"user_id,omitempty"`
	CustomerName    string            `json:"customer_name"`
	CustomerPhone   string            `json:"customer_phone"`
	DeliveryType    string            `json:"delivery_type"`
	DeliveryAddress string            `json:"delivery_address,omitempty"`
	TotalAmount     decimal.Decimal   `json:"total_amount"`
	Status          string            `json:"status"`
	PaymentStatus   string            `json:"payment_status"`
	CreatedAt       time.Time         `json:"created_at"`
	Items           []model.OrderLine `json:"items"`
}

// PlaceOrder は注文を検証して保存する。
// authedUserID はセッション由来。非nilなら入力のUserIDは無視して必ずこちらを使う
// （他人のidを入れたbodyを投げても成りすましにならない）。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, authedUserID *int64, in PlaceOrderInput) (OrderOutput, error) {
	name := strings.TrimSpace(in.CustomerName)
	phone := strings.TrimSpace(in.CustomerPhone)
	if name == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "customer name required")
	}
	if phone == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "customer phone required")
	}

	deliveryType := model.DeliveryType(strings.TrimSpace(in.DeliveryType))
	switch deliveryType {
	case model.DeliveryTypePickup, model.DeliveryTypeDelivery:
	default:
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid delivery type")
	}

	// 住所は配達のときだけ必須。pickupなら保存しない
	// （address iff delivery の不変条件をここで揃える）。
	address := strings.TrimSpace(in.DeliveryAddress)
	if deliveryType == model.DeliveryTypeDelivery && address == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "delivery address required")
	}
	if deliveryType == model.DeliveryTypePickup {
		address = ""
	}

	if len(in.Items) == 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "order has no items")
	}

	lines := make([]model.OrderLine, 0, len(in.Items))
	subtotal := decimal.Zero
	for _, it := range in.Items {
		if it.MenuItemID <= 0 {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid menu item id")
		}
		if strings.TrimSpace(it.Name) == "" {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "item name required")
		}
		if it.Quantity < 1 {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
		if it.UnitPrice.IsNegative() {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid unit price")
		}

		lines = append(lines, model.OrderLine{
			MenuItemID:    it.MenuItemID,
			Name:          strings.TrimSpace(it.Name),
			UnitPrice:     it.UnitPrice,
			Quantity:      it.Quantity,
			Customization: strings.TrimSpace(it.Customization),
		})
		subtotal = subtotal.Add(it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)))
	}

	// 合計はサーバー側で再計算した値だけを保存する。
	// クライアント申告のtotalは受け取らない。
	total := pricing.Total(subtotal, deliveryType).Round(2)

	userID := in.UserID
	if authedUserID != nil {
		userID = authedUserID
	}

	itemsJSON, err := json.Marshal(lines)
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	created, err := u.orders.Create(ctx, model.Order{
		Number:          newOrderNumber(),
		UserID:          userID,
		CustomerName:    name,
		CustomerPhone:   phone,
		DeliveryType:    deliveryType,
		DeliveryAddress: address,
		TotalAmount:     total,
		ItemsJSON:       string(itemsJSON),
		Status:          model.OrderStatusPending,
		PaymentStatus:   model.PaymentStatusPending,
	})
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toOrderOutput(created, lines), nil
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64) ([]OrderOutput, error) {
	if userID <= 0 {
		return []OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	orders, err := u.orders.ListByUserID(ctx, userID)
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

// 注文番号。レシートに出す人間用のid。
func newOrderNumber() string {
	return "SS-" + strings.ToUpper(uuid.NewString()[:8])
}

func decodeOrderLines(itemsJSON string) ([]model.OrderLine, error) {
	var lines []model.OrderLine
	if err := json.Unmarshal([]byte(itemsJSON), &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func toOrderOutput(o model.Order, lines []model.OrderLine) OrderOutput {
	return OrderOutput{
		ID:              o.ID,
		Number:          o.Number,
		UserID:          o.UserID,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		DeliveryType:    string(o.DeliveryType),
		DeliveryAddress: o.DeliveryAddress,
		TotalAmount:     o.TotalAmount,
		Status:          string(o.Status),
		PaymentStatus:   string(o.PaymentStatus),
		CreatedAt:       o.CreatedAt,
		Items:           lines,
	}
}
