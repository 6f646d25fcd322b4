package model

import "github.com/shopspring/decimal"

// 注文明細のスナップショット。Order.ItemsJSONにこの配列を入れる。
// 保存前にスキーマ検証する（緩い配列のまま書かない）。
type OrderLine struct {
	MenuItemID    int64           `json:"menu_item_id"`
	Name          string          `json:"name"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Quantity      int64           `json:"quantity"`
	Customization string          `json:"customization,omitempty"`
}
