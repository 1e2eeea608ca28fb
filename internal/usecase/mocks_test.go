package usecase

import (
	"context"

	"storefront/internal/catalog"
	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/stretchr/testify/mock"
)

type CatalogMock struct{ mock.Mock }

func (m *CatalogMock) Query(ctx context.Context, f catalog.Filter, p catalog.Page, s catalog.SortSpec) (catalog.Result, error) {
	args := m.Called(ctx, f, p, s)
	return args.Get(0).(catalog.Result), args.Error(1)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) FindAndCount(ctx context.Context, q catalog.Query) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *ProductRepoMock) FindActiveByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p *model.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProductRepoMock) Save(ctx context.Context, p *model.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) FindByID(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserRepoMock) UpdateProfile(ctx context.Context, id int64, u repo.ProfileUpdate) error {
	return m.Called(ctx, id, u).Error(0)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) ListByUserID(ctx context.Context, q repo.OrderListQuery) ([]model.Order, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Get(1).(int64), args.Error(2)
}

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) ListWithSubcategories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	cats, _ := args.Get(0).([]model.Category)
	return cats, args.Error(1)
}

// fakeTx はfnをそのまま実行する（commit/rollbackは無し）
type fakeTx struct {
	products repo.ProductRepository
	users    repo.UserRepository
}

func (f *fakeTx) Products() repo.ProductRepository { return f.products }
func (f *fakeTx) Users() repo.UserRepository       { return f.users }

func (f *fakeTx) WithinTx(_ context.Context, fn func(r repo.TxRepos) error) error {
	return fn(f)
}
