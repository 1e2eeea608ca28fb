package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/logger"
	"storefront/internal/metrics"
	"storefront/internal/middleware"
	"storefront/internal/validator"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// ルーティングに必要なハンドラ一式
type Handlers struct {
	Health       *handler.HealthHandler
	Product      *handler.ProductHandler
	AdminProduct *handler.AdminProductHandler
	Category     *handler.CategoryHandler
	Me           *handler.MeHandler
}

type Server struct {
	cfg  config.Config
	echo *echo.Echo
	log  *zap.Logger
}

// echoを組み立ててルートを登録する
func New(cfg config.Config, log *zap.Logger, h Handlers, users middleware.UserFinder) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()

	e.Use(echomw.Recover())
	e.Use(logger.Middleware(log))
	e.Use(metrics.Middleware())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization, logger.HeaderRequestID},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))

	h.Health.RegisterRoutes(e)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	//認証: JWT検証 -> DBからユーザー取得
	authed := []echo.MiddlewareFunc{middleware.AuthJWT(cfg), middleware.CurrentUser(users)}
	admin := append(authed[:len(authed):len(authed)], middleware.AdminRoleGuard())

	api := e.Group("/api/v1")
	h.Product.RegisterRoutes(api)
	h.Category.RegisterRoutes(api)
	h.AdminProduct.RegisterRoutes(api, admin...)
	h.Me.RegisterRoutes(api, authed...)

	return &Server{cfg: cfg, echo: e, log: log}
}

func (s *Server) Echo() *echo.Echo { return s.echo }

// PORTは "8080" でも ":8080" でもよい
func listenAddr(port string) string {
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

// ctxがキャンセルされるまで待ち受け、その後graceful shutdownする
func (s *Server) Start(ctx context.Context) error {
	addr := listenAddr(s.cfg.Port)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", addr))
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.echo.Shutdown(shutdownCtx)
}
