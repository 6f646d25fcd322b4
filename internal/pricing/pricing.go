package pricing

import (
	"github.com/shopspring/decimal"

	"bakery/internal/domain/model"
)

// 税率5%固定。金額は全部decimalで計算する
// （floatの掛け算で出るズレをそのまま保存しない）。
var (
	TaxRate     = decimal.RequireFromString("0.05")
	DeliveryFee = decimal.NewFromInt(50)
)

// Tax は小計に対する税額。
func Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(TaxRate)
}

// FeeFor は配達のときだけ定額の配達料、それ以外は0。
func FeeFor(t model.DeliveryType) decimal.Decimal {
	if t == model.DeliveryTypeDelivery {
		return DeliveryFee
	}
	return decimal.Zero
}

// Total = 小計 + 税 + 配達料。
func Total(subtotal decimal.Decimal, t model.DeliveryType) decimal.Decimal {
	return subtotal.Add(Tax(subtotal)).Add(FeeFor(t))
}
