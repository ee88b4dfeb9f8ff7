// Package metrics содержит Prometheus-коллекторы сервиса
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBQueryErrors     *prometheus.CounterVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec

	BookingsCreated     *prometheus.CounterVec
	BookingRejections   *prometheus.CounterVec
	RealtimeSubscribers *prometheus.GaugeVec
	EmailsSent          *prometheus.CounterVec
}

// New регистрирует метрики в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в указанном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Database query errors",
			ConstLabels: constLabels,
		}, []string{"operation"}),
		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Open database connections",
			ConstLabels: constLabels,
		}, []string{"db"}),
		DBInUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Database connections in use",
			ConstLabels: constLabels,
		}, []string{"db"}),
		DBIdle: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Idle database connections",
			ConstLabels: constLabels,
		}, []string{"db"}),
		BookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Bookings created or extended",
			ConstLabels: constLabels,
		}, []string{"operation"}),
		BookingRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_rejections_total",
			Help:        "Booking attempts rejected by policy or availability checks",
			ConstLabels: constLabels,
		}, []string{"reason"}),
		RealtimeSubscribers: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "realtime_subscribers",
			Help:        "Active booking change feed subscribers",
			ConstLabels: constLabels,
		}, []string{}),
		EmailsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_emails_total",
			Help:        "Booking confirmation emails by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.BookingsCreated,
		m.BookingRejections,
		m.RealtimeSubscribers,
		m.EmailsSent,
	)

	return m
}

// ObserveHTTP записывает метрики одного HTTP запроса
func (m *Metrics) ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// ObserveQuery записывает длительность запроса к БД
func (m *Metrics) ObserveQuery(operation string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
	if err != nil {
		m.DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// BookingSaved увеличивает счетчик успешно сохраненных бронирований
func (m *Metrics) BookingSaved(operation string) {
	if m == nil {
		return
	}
	m.BookingsCreated.WithLabelValues(operation).Inc()
}

// BookingRejected увеличивает счетчик отклоненных попыток бронирования
func (m *Metrics) BookingRejected(reason string) {
	if m == nil {
		return
	}
	m.BookingRejections.WithLabelValues(reason).Inc()
}

// SubscribersChanged сдвигает счетчик активных подписчиков realtime
func (m *Metrics) SubscribersChanged(delta float64) {
	if m == nil {
		return
	}
	m.RealtimeSubscribers.WithLabelValues().Add(delta)
}

// EmailProcessed фиксирует исход отправки письма ("sent", "skipped", "failed")
func (m *Metrics) EmailProcessed(outcome string) {
	if m == nil {
		return
	}
	m.EmailsSent.WithLabelValues(outcome).Inc()
}
