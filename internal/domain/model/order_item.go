package model

import "github.com/shopspring/decimal"

// 購入時点の名前と価格を保持する
type OrderItem struct {
	ID                int64           `gorm:"column:order_item_id;primaryKey;autoIncrement" json:"order_item_id"`
	OrderID           int64           `gorm:"not null;index" json:"order_id"`
	ProductID         int64           `gorm:"not null" json:"product_id"`
	Quantity          int64           `gorm:"not null" json:"quantity"`
	PriceAtTime       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_at_time"`
	ProductNameAtTime string          `gorm:"type:varchar(255);not null" json:"product_name_at_time"`
	Product           *Product        `gorm:"foreignKey:ProductID;references:product_id" json:"product,omitempty"`
}
