package repository

import (
	"context"

	"storefront/internal/catalog"
	"storefront/internal/domain/model"
)

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	// 一覧（件数とページを同じスナップショットで）
	catalog.Store

	// 状態に関係なく1件取得（管理画面用）
	FindByID(ctx context.Context, id int64) (model.Product, error)
	// 公開中（is_active=true）の商品だけ
	FindActiveByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p *model.Product) error
	// 既存行の全項目を書き換える（行が無ければ ErrNotFound）
	Save(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id int64) error
}
