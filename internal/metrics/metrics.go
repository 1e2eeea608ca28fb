// Package metrics はPrometheus向けの計測値をまとめる。
// Init前の呼び出しは何もしない。
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Registry = prometheus.NewRegistry()

	once sync.Once

	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	catalogQueryDuration *prometheus.HistogramVec
	catalogQueryResults  prometheus.Histogram
)

// Init は prefix 付きでメトリクスを登録する（2回目以降は無視）
func Init(prefix string) {
	once.Do(func() {
		httpRequestsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		)
		httpRequestDuration = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		)
		catalogQueryDuration = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_catalog_query_duration_seconds",
				Help:    "Duration of catalog find-and-count queries in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		catalogQueryResults = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    prefix + "_catalog_query_items",
				Help:    "Number of products returned per catalog page",
				Buckets: []float64{0, 1, 5, 10, 20, 50, 100, 500},
			},
		)

		Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			httpRequestsTotal,
			httpRequestDuration,
			catalogQueryDuration,
			catalogQueryResults,
		)
	})
}

// コネクションプールの統計を公開する
func RegisterDB(db *sql.DB, name string) error {
	return Registry.Register(collectors.NewDBStatsCollector(db, name))
}

func ObserveCatalogQuery(start time.Time, err error, returned int) {
	if catalogQueryDuration == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	catalogQueryDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
	if err == nil {
		catalogQueryResults.Observe(float64(returned))
	}
}

// Middleware はリクエスト数と処理時間を記録する
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if httpRequestsTotal == nil {
				return err
			}

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}
			method := c.Request().Method
			path := c.Path()
			statusStr := strconv.Itoa(status)

			httpRequestsTotal.WithLabelValues(method, path, statusStr).Inc()
			httpRequestDuration.WithLabelValues(method, path, statusStr).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
