package repository

import (
	"context"
	"database/sql"

	"storefront/internal/catalog"
	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 件数と一覧を同じスナップショットで読む
var snapshotTx = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

// FindAndCount は条件に合う総件数と、並び順・ページ適用後の商品を返す。
func (r *ProductGormRepository) FindAndCount(ctx context.Context, q catalog.Query) ([]model.Product, int64, error) {
	var (
		products []model.Product
		total    int64
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		scoped := func() *gorm.DB {
			s := tx.Model(&model.Product{})
			if len(q.Where) > 0 {
				s = s.Clauses(clause.Where{Exprs: q.Where})
			}
			return s
		}

		//total（件数）
		if err := scoped().Count(&total).Error; err != nil {
			return err
		}

		//sort + page
		find := scoped()
		for _, k := range q.Order {
			find = find.Order(k.Clause())
		}
		return find.Limit(q.Limit).Offset(q.Offset).Find(&products).Error
	}, snapshotTx)
	if err != nil {
		return []model.Product{}, 0, err
	}

	return products, total, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return model.Product{}, notFound(err)
	}
	return p, nil
}

// 公開中の商品だけ
func (r *ProductGormRepository) FindActiveByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: "is_active"}, Value: true}).
		First(&p, id).Error
	if err != nil {
		return model.Product{}, notFound(err)
	}
	return p, nil
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p *model.Product) error {
	return mapWriteError(r.db.WithContext(ctx).Create(p).Error)
}

// 商品の更新。SaveはIDが無いとINSERTになるので、件数で存在を確認する
func (r *ProductGormRepository) Save(ctx context.Context, p *model.Product) error {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).Where("product_id = ?", p.ID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return repo.ErrNotFound
	}
	return mapWriteError(r.db.WithContext(ctx).Save(p).Error)
}

// 商品削除（物理削除）
func (r *ProductGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
