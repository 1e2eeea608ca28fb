package usecase

import (
	"context"
	"net/http"
	"strings"

	"storefront/internal/catalog"
	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// 一覧の検索を行うもの（catalog.Engine）
type CatalogQuerier interface {
	Query(ctx context.Context, f catalog.Filter, p catalog.Page, s catalog.SortSpec) (catalog.Result, error)
}

type ProductUsecase struct {
	catalog  CatalogQuerier
	products repo.ProductRepository
	tx       repo.TransactionManager
}

// DI
func NewProductUsecase(
	catalog CatalogQuerier,
	products repo.ProductRepository,
	tx repo.TransactionManager,
) *ProductUsecase {
	return &ProductUsecase{
		catalog:  catalog,
		products: products,
		tx:       tx,
	}
}

type ProductListOutput struct {
	Data  []model.Product `json:"data"`
	Total int64           `json:"total"`
}

// 公開側と管理画面の両方で使う。is_activeの指定が無ければ全ステータス
func (u *ProductUsecase) ListProducts(ctx context.Context, in catalog.ListParams) (ProductListOutput, error) {
	res, err := u.catalog.Query(ctx, in.Filter, in.Page, in.Sort)
	if err != nil {
		return ProductListOutput{}, wrapHTTPError(http.StatusInternalServerError, "db error", err)
	}
	return ProductListOutput{Data: res.Items, Total: res.Total}, nil
}

// 公開中の商品だけ返す
func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	p, err := u.products.FindActiveByID(ctx, productID)
	if err != nil {
		return model.Product{}, toHTTPError(err, "product not found")
	}
	return p, nil
}

// 管理画面用（非公開も含む）
func (u *ProductUsecase) AdminGetProduct(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	p, err := u.products.FindByID(ctx, productID)
	if err != nil {
		return model.Product{}, toHTTPError(err, "product not found")
	}
	return p, nil
}

// 作成・更新の入力
type ProductInput struct {
	Name          string
	Slug          string
	Description   *string
	Price         decimal.Decimal
	OriginalPrice *decimal.Decimal
	Stock         int64
	SKU           *string
	ImageURL      *string
	Images        []string
	ImagesIsList  bool // imagesが配列で送られてきたか
	CategoryID    *int64
	SubcategoryID *int64
	Specs         model.Specs
	IsActive      *bool // nil: 作成時はtrue、更新時は現状維持
}

func validateProductInput(in ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if strings.TrimSpace(in.Slug) == "" {
		return NewHTTPError(http.StatusBadRequest, "slug required")
	}
	if in.Price.IsNegative() {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.Stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}
	return nil
}

// applyProductInput は入力を正規化して p に反映する
func applyProductInput(p *model.Product, in ProductInput) {
	p.Name = strings.TrimSpace(in.Name)
	p.Slug = strings.TrimSpace(in.Slug)
	p.Description = in.Description
	p.Price = in.Price
	p.Stock = in.Stock
	p.SKU = blankToNil(in.SKU)
	p.CategoryID = in.CategoryID
	p.SubcategoryID = in.SubcategoryID

	// 0以下・未指定はnull
	p.OriginalPrice = decimal.NullDecimal{}
	if in.OriginalPrice != nil && in.OriginalPrice.IsPositive() {
		p.OriginalPrice = decimal.NewNullDecimal(*in.OriginalPrice)
	}

	specs := in.Specs
	if specs == nil {
		specs = model.Specs{}
	}
	p.Specs = datatypes.NewJSONType(specs)

	// 配列でなければimage_urlだけを使う
	images := in.Images
	if !in.ImagesIsList {
		images = nil
		if u := blankToNil(in.ImageURL); u != nil {
			images = []string{*u}
		}
	}
	p.Images = model.CleanImages(images)
	p.SyncPrimaryImage()

	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func (u *ProductUsecase) AdminCreateProduct(ctx context.Context, in ProductInput) (model.Product, error) {
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	p := model.Product{IsActive: true}
	applyProductInput(&p, in)

	if err := u.products.Create(ctx, &p); err != nil {
		return model.Product{}, toCreateHTTPError(err)
	}
	return p, nil
}

// 更新後はDBから読み直した値を返す
func (u *ProductUsecase) AdminUpdateProduct(ctx context.Context, productID int64, in ProductInput) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	var out model.Product
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cur, err := r.Products().FindByID(ctx, productID)
		if err != nil {
			return err
		}

		applyProductInput(&cur, in)
		if err := r.Products().Save(ctx, &cur); err != nil {
			return err
		}

		out, err = r.Products().FindByID(ctx, productID)
		return err
	})
	if err != nil {
		return model.Product{}, toHTTPError(err, "product not found")
	}
	return out, nil
}

func (u *ProductUsecase) AdminDeleteProduct(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if err := u.products.Delete(ctx, productID); err != nil {
		return toHTTPError(err, "product not found")
	}
	return nil
}
