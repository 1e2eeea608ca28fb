package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/metrics"

	"go.uber.org/zap"
)

// ストレージ障害（接続断・タイムアウトなど）
var ErrUnavailable = errors.New("catalog unavailable")

// Query はストレージに渡す1回分の読み取り
type Query struct {
	Where  Predicate
	Order  []OrderKey
	Limit  int
	Offset int
}

// Store は条件に一致するページと件数を同じスナップショットから返す。
type Store interface {
	FindAndCount(ctx context.Context, q Query) ([]model.Product, int64, error)
}

type Result struct {
	Items []model.Product
	Total int64
}

// Engine は状態を持たないので並行に呼び出してよい
type Engine struct {
	store Store
	log   *zap.Logger
}

func NewEngine(store Store, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{store: store, log: log}
}

// BuildQuery は検索条件を Query にする（ストレージには触れない）
func BuildQuery(f Filter, p Page, s SortSpec) Query {
	return Query{
		Where:  BuildPredicate(f),
		Order:  ResolveSort(s),
		Limit:  p.Limit(),
		Offset: p.Offset(),
	}
}

// Query はページ分の商品と、ページングに関係ない総件数を返す。
func (e *Engine) Query(ctx context.Context, f Filter, p Page, s SortSpec) (Result, error) {
	q := BuildQuery(f, p, s)

	start := time.Now()
	items, total, err := e.store.FindAndCount(ctx, q)
	metrics.ObserveCatalogQuery(start, err, len(items))
	if err != nil {
		e.log.Error("catalog query failed", zap.Error(err))
		return Result{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	e.log.Debug("catalog query",
		zap.Int("conditions", len(q.Where)),
		zap.String("order", q.Order[0].Field),
		zap.Int("limit", q.Limit),
		zap.Int("offset", q.Offset),
		zap.Int64("total", total),
		zap.Int("returned", len(items)),
	)

	if items == nil {
		items = []model.Product{}
	}
	return Result{Items: items, Total: total}, nil
}
