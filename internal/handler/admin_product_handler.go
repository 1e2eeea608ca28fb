package handler

import (
	"encoding/json"
	"net/http"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// SuccessResponse は { message: string } の形
type SuccessResponse struct {
	Message string `json:"message"`
}

// 作成・更新の入力。imagesは配列以外も来るので生のまま受ける
type ProductRequest struct {
	Name          string           `json:"name" validate:"required,max=255"`
	Slug          string           `json:"slug" validate:"required,max=255,slug"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price" validate:"required"`
	OriginalPrice *decimal.Decimal `json:"original_price"`
	Stock         *int64           `json:"stock" validate:"required,gte=0"`
	SKU           *string          `json:"sku" validate:"omitempty,max=100"`
	ImageURL      *string          `json:"image_url" validate:"omitempty,max=1024"`
	Images        json.RawMessage  `json:"images"`
	CategoryID    *int64           `json:"category_id" validate:"omitempty,gt=0"`
	SubcategoryID *int64           `json:"subcategory_id" validate:"omitempty,gt=0"`
	Specs         model.Specs      `json:"specs"`
	IsActive      *bool            `json:"is_active"`
}

func (r ProductRequest) toInput() usecase.ProductInput {
	images, isList := decodeImages(r.Images)
	return usecase.ProductInput{
		Name:          r.Name,
		Slug:          r.Slug,
		Description:   r.Description,
		Price:         *r.Price,
		OriginalPrice: r.OriginalPrice,
		Stock:         *r.Stock,
		SKU:           r.SKU,
		ImageURL:      r.ImageURL,
		Images:        images,
		ImagesIsList:  isList,
		CategoryID:    r.CategoryID,
		SubcategoryID: r.SubcategoryID,
		Specs:         r.Specs,
		IsActive:      r.IsActive,
	}
}

// 配列なら文字列の要素だけを返す
func decodeImages(raw json.RawMessage) ([]string, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var items []interface{}
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}

// 商品の作成・更新・削除と管理画面用の詳細
type AdminProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewAdminProductHandler(uc *usecase.ProductUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

// guardsには認証とadminチェックを渡す
func (h *AdminProductHandler) RegisterRoutes(g *echo.Group, guards ...echo.MiddlewareFunc) {
	g.POST("/products", h.createProduct, guards...)
	g.PUT("/products/:id", h.updateProduct, guards...)
	g.DELETE("/products/:id", h.deleteProduct, guards...)
	g.GET("/admin/products/:id", h.getProduct, guards...)
}

func (h *AdminProductHandler) bindProduct(c echo.Context) (ProductRequest, error) {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return req, usecase.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *AdminProductHandler) createProduct(c echo.Context) error {
	req, err := h.bindProduct(c)
	if err != nil {
		return writeError(c, err)
	}

	p, err := h.uc.AdminCreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *AdminProductHandler) updateProduct(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	req, err := h.bindProduct(c)
	if err != nil {
		return writeError(c, err)
	}

	p, err := h.uc.AdminUpdateProduct(c.Request().Context(), id, req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *AdminProductHandler) deleteProduct(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.AdminDeleteProduct(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}

func (h *AdminProductHandler) getProduct(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	p, err := h.uc.AdminGetProduct(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}
