package repository

import (
	"context"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// 並べ替えに使える列
var orderSortColumns = map[string]bool{
	"created_at":   true,
	"total_amount": true,
	"status":       true,
}

func (r *OrderGormRepository) ListByUserID(ctx context.Context, q repo.OrderListQuery) ([]model.Order, int64, error) {
	scoped := func() *gorm.DB {
		s := r.db.WithContext(ctx).Model(&model.Order{}).Where("user_id = ?", q.UserID)
		if q.Status != nil {
			s = s.Where("status = ?", *q.Status)
		}
		return s
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return []model.Order{}, 0, err
	}

	sortBy := q.SortBy
	desc := q.Desc
	if !orderSortColumns[sortBy] {
		sortBy, desc = "created_at", true
	}

	var items []model.Order
	err := scoped().
		Preload("Items.Product", func(db *gorm.DB) *gorm.DB {
			return db.Select("product_id", "name", "image_url")
		}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: sortBy}, Desc: desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order_id"}}).
		Limit(q.Limit).
		Offset(q.Offset).
		Find(&items).Error
	if err != nil {
		return []model.Order{}, 0, err
	}

	return items, total, nil
}
