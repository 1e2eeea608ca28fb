// Package logger はzapロガーの初期化とリクエスト単位のロガーを扱う。
package logger

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const HeaderRequestID = "X-Request-ID"

type Config struct {
	Level       string
	Environment string
	ServiceName string
	File        string // 空ならファイル出力なし
}

var log = zap.NewNop()

func parseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Init はグローバルロガーを作って差し替える
func Init(cfg Config) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(parseLevel(cfg.Level))
	fields := zap.Fields(
		zap.String("service", cfg.ServiceName),
		zap.String("environment", cfg.Environment),
	)

	var (
		l   *zap.Logger
		err error
	)
	switch {
	case cfg.File != "":
		// ファイルはJSONでローテーション、stdoutはコンソール形式
		rotate := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
		}
		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(rotate),
				level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				level,
			),
		)
		l = zap.New(core, zap.AddCaller(), fields)
	case cfg.Environment == "production" || cfg.Environment == "prod":
		c := zap.NewProductionConfig()
		c.Level = level
		c.EncoderConfig.TimeKey = "timestamp"
		c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		l, err = c.Build(fields)
	default:
		c := zap.NewDevelopmentConfig()
		c.Level = level
		c.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		l, err = c.Build(fields)
	}
	if err != nil {
		return nil, err
	}

	log = l
	zap.ReplaceGlobals(l)
	return l, nil
}

func Get() *zap.Logger {
	return log
}

// Middleware はrequest_id付きのロガーをechoのコンテキストに入れ、アクセスログを出す
func Middleware(base *zap.Logger) echo.MiddlewareFunc {
	if base == nil {
		base = zap.NewNop()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			requestID := c.Request().Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Response().Header().Set(HeaderRequestID, requestID)

			l := base.With(zap.String("request_id", requestID))
			c.Set(loggerKey, l)
			c.SetRequest(c.Request().WithContext(WithContext(c.Request().Context(), l)))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			l.Info("HTTP Request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", c.RealIP()),
			)
			return nil
		}
	}
}
