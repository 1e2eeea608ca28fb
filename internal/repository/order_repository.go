package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// ユーザーの注文一覧の条件
type OrderListQuery struct {
	UserID int64
	Status *model.OrderStatus // nilなら全件
	SortBy string             // created_at / total_amount / status
	Desc   bool
	Limit  int
	Offset int
}

type OrderRepository interface {
	// 明細と商品（ID・名前・画像）を付けて返す。totalはページングに関係ない件数
	ListByUserID(ctx context.Context, q OrderListQuery) ([]model.Order, int64, error)
}
