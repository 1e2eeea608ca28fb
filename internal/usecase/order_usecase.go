package usecase

import (
	"context"
	"net/http"
	"strings"

	"storefront/internal/catalog"
	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type OrderUsecase struct {
	orders repo.OrderRepository
}

func NewOrderUsecase(orders repo.OrderRepository) *OrderUsecase {
	return &OrderUsecase{orders: orders}
}

// GET /me/orders の入力（クエリそのまま）
type ListOrdersInput struct {
	Page   catalog.Page
	SortBy string
	Order  string
	Status string
}

type OrderListOutput struct {
	Data  []model.Order `json:"data"`
	Total int64         `json:"total"`
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64, in ListOrdersInput) (OrderListOutput, error) {
	if userID <= 0 {
		return OrderListOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	q := repo.OrderListQuery{
		UserID: userID,
		SortBy: "created_at",
		Desc:   true,
		Limit:  in.Page.Limit(),
		Offset: in.Page.Offset(),
	}

	switch f := strings.TrimSpace(in.SortBy); f {
	case "created_at", "total_amount", "status":
		q.SortBy = f
	}
	// asc以外（不明な値を含む）は新しい順
	if strings.EqualFold(strings.TrimSpace(in.Order), "asc") {
		q.Desc = false
	}

	// "all"・不明なステータスは絞り込まない
	if s := model.OrderStatus(strings.TrimSpace(in.Status)); s.Valid() {
		q.Status = &s
	}

	items, total, err := u.orders.ListByUserID(ctx, q)
	if err != nil {
		return OrderListOutput{}, toHTTPError(err, "not found")
	}
	if items == nil {
		items = []model.Order{}
	}
	return OrderListOutput{Data: items, Total: total}, nil
}
