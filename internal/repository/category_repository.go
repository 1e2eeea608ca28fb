package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type CategoryRepository interface {
	// サブカテゴリ込みでID順に返す
	ListWithSubcategories(ctx context.Context) ([]model.Category, error)
}
