package middleware

import (
	"context"
	"errors"
	"net/http"

	"storefront/internal/domain/model"
	"storefront/internal/logger"
	"storefront/internal/repository"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type UserFinder interface {
	FindByID(ctx context.Context, userID int64) (model.User, error)
}

// CurrentUser はトークンのユーザーをDBから読み、contextに入れる。
// 削除済みユーザーのトークンはここで401になる
func CurrentUser(users UserFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//AuthJWTが入れたuser_id を取得する
			userID, ok := c.Get(CtxUserIDKey).(int64)
			if !ok || userID <= 0 {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//DBから最新のuserを取得する
			user, err := users.FindByID(c.Request().Context(), userID)
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			if err != nil {
				logger.FromEcho(c).Error("load current user", zap.Int64("user_id", userID), zap.Error(err))
				return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
			}

			// roleはDBの値を正とする
			c.Set(CtxUserKey, user)
			c.Set(CtxUserRoleKey, string(user.Role))

			return next(c)
		}
	}
}
