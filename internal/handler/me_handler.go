package handler

import (
	"net/http"

	"storefront/internal/catalog"
	"storefront/internal/middleware"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

type UpdateMeRequest struct {
	Name           *string `json:"name" validate:"omitempty,max=255"`
	WhatsappNumber *string `json:"whatsapp_number" validate:"omitempty,max=32"`
}

// /me 以下（ログインユーザー本人）
type MeHandler struct {
	users  *usecase.UserUsecase
	orders *usecase.OrderUsecase
}

func NewMeHandler(users *usecase.UserUsecase, orders *usecase.OrderUsecase) *MeHandler {
	return &MeHandler{users: users, orders: orders}
}

// guardsには認証ミドルウェアを渡す
func (h *MeHandler) RegisterRoutes(g *echo.Group, guards ...echo.MiddlewareFunc) {
	me := g.Group("/me", guards...)
	me.GET("", h.get)
	me.PUT("", h.update)
	me.GET("/orders", h.listOrders)
}

// contextのuser_idを取り出す
func getUserIDFromContext(c echo.Context) (int64, bool) {
	id, ok := c.Get(middleware.CtxUserIDKey).(int64)
	return id, ok && id > 0
}

func (h *MeHandler) get(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	u, err := h.users.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *MeHandler) update(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req UpdateMeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, err)
	}

	u, err := h.users.UpdateProfile(c.Request().Context(), userID, usecase.UpdateProfileInput{
		Name:           req.Name,
		WhatsappNumber: req.WhatsappNumber,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *MeHandler) listOrders(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.orders.ListMyOrders(c.Request().Context(), userID, usecase.ListOrdersInput{
		Page:   catalog.ParsePage(c.QueryParam("page"), c.QueryParam("pageSize")),
		SortBy: c.QueryParam("sortBy"),
		Order:  c.QueryParam("order"),
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
