package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type OrderStatus string

const (
	OrderStatusPendingPayment OrderStatus = "pending_payment"
	OrderStatusPaid           OrderStatus = "paid"
	OrderStatusProcessing     OrderStatus = "processing"
	OrderStatusShipped        OrderStatus = "shipped"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
	OrderStatusRefunded       OrderStatus = "refunded"
)

// 既知のステータスかどうか
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPendingPayment, OrderStatusPaid, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

type Order struct {
	ID               int64             `gorm:"column:order_id;primaryKey;autoIncrement" json:"order_id"`
	UserID           *int64            `gorm:"index" json:"user_id"`
	Status           OrderStatus       `gorm:"type:varchar(32);not null;default:'pending_payment';index" json:"status"`
	TotalAmount      decimal.Decimal   `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	PaymentMethod    *string           `gorm:"type:varchar(100)" json:"payment_method"`
	PaymentGatewayID *string           `gorm:"type:varchar(255)" json:"payment_gateway_id"`
	PaymentStatus    *string           `gorm:"type:varchar(100)" json:"payment_status"`
	PayerInfo        datatypes.JSONMap `gorm:"type:jsonb" json:"payer_info"`
	ShippingAddress  datatypes.JSONMap `gorm:"type:jsonb" json:"shipping_address"`
	CreatedAt        time.Time         `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time         `gorm:"not null;autoUpdateTime" json:"updated_at"`
	Items            []OrderItem       `gorm:"foreignKey:OrderID;references:ID" json:"items"`
}
