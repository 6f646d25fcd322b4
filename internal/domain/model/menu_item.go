package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryCakes         Category = "Cakes"
	CategoryDecadentCakes Category = "Decadent Cakes"
	CategoryPastries      Category = "Pastries"
	CategoryBreads        Category = "Breads"
	CategoryAppetizers    Category = "Appetizers"
	CategoryMainCourse    Category = "Main Course"
	CategoryPasta         Category = "Pasta"
	CategoryPizza         Category = "Pizza"
	CategoryBurgers       Category = "Burgers"
	CategorySalads        Category = "Salads"
	CategoryRiceBowls     Category = "Rice Bowls"
	CategoryKidsMenu      Category = "Kids Menu"
	CategoryBeverages     Category = "Beverages"
)

// カタログの商品。カートからは読み取り専用。
type MenuItem struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Category    Category        `gorm:"type:varchar(40);not null;index" json:"category"`
	ImageURL    string          `json:"image_url"`
	IsVeg       bool            `gorm:"not null;default:true" json:"is_veg"`
	IsSeasonal  bool            `gorm:"not null;default:false" json:"is_seasonal"`
	IsAvailable bool            `gorm:"not null;default:true" json:"is_available"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
