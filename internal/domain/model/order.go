package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// completed / cancelled は終端。そこからの変更は不可。
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

type DeliveryType string

const (
	DeliveryTypePickup   DeliveryType = "pickup"
	DeliveryTypeDelivery DeliveryType = "delivery"
)

// 注文。明細は確定時点のスナップショットをjsonbで保存する。
// 後からカタログを編集しても過去の注文は変わらない。
type Order struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Number          string          `gorm:"type:varchar(20);not null;uniqueIndex" json:"number"`
	UserID          *int64          `gorm:"index" json:"user_id"`
	CustomerName    string          `gorm:"not null" json:"customer_name"`
	CustomerPhone   string          `gorm:"not null" json:"customer_phone"`
	DeliveryType    DeliveryType    `gorm:"type:varchar(20);not null" json:"delivery_type"`
	DeliveryAddress string          `json:"delivery_address"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	ItemsJSON       string          `gorm:"type:jsonb;not null" json:"-"`
	Status          OrderStatus     `gorm:"type:varchar(20);not null;index" json:"status"`
	PaymentStatus   PaymentStatus   `gorm:"type:varchar(20);not null" json:"payment_status"`
	CreatedAt       time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
