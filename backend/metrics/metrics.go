// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PersonsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contacts_persons_created_total",
		Help: "Total number of persons added",
	})
	PersonsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contacts_persons_deleted_total",
		Help: "Total number of persons deleted",
	})
	CountriesCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contacts_countries_created_total",
		Help: "Countries inserted, by source (form or upload)",
	}, []string{"source"})
	Exports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contacts_exports_total",
		Help: "People exports generated, by format",
	}, []string{"format"})
	UsersRegistered = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "contacts_users_registered",
		Help: "Number of accounts in the users table",
	})
	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contacts_logins_total",
		Help: "Login attempts, by result",
	}, []string{"result"})
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "contacts_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// Middleware records request latency per matched route.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		RequestDuration.
			WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
		return err
	}
}
