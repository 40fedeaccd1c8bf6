// Package metrics содержит Prometheus метрики сервиса
package metrics

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	// HTTP метрики
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Метрики базы данных
	dbQueryDuration *prometheus.HistogramVec
	dbOpenConns     prometheus.Gauge
	dbInUseConns    prometheus.Gauge
	dbIdleConns     prometheus.Gauge
	dbWaitCount     prometheus.Gauge

	// Бизнес-метрики бронирований
	bookingsCreatedTotal prometheus.Counter
	bookingFailuresTotal *prometheus.CounterVec
	seatsReservedTotal   prometheus.Counter
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"operation"}),

		dbOpenConns: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Current number of open database connections",
			ConstLabels: constLabels,
		}),

		dbInUseConns: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Current number of database connections in use",
			ConstLabels: constLabels,
		}),

		dbIdleConns: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Current number of idle database connections",
			ConstLabels: constLabels,
		}),

		dbWaitCount: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_wait_total",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}),

		bookingsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of confirmed bookings",
			ConstLabels: constLabels,
		}),

		bookingFailuresTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_failures_total",
			Help:        "Total number of failed booking attempts by reason",
			ConstLabels: constLabels,
		}, []string{"reason"}),

		seatsReservedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "seats_reserved_total",
			Help:        "Total number of seats reserved by confirmed bookings",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest фиксирует выполненный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, durationSeconds float64) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(durationSeconds)
}

// ObserveDBQuery фиксирует длительность запроса к базе данных
func (m *Metrics) ObserveDBQuery(operation string, durationSeconds float64) {
	m.dbQueryDuration.WithLabelValues(operation).Observe(durationSeconds)
}

// SetDBPoolStats обновляет gauge-метрики connection pool
func (m *Metrics) SetDBPoolStats(stats sql.DBStats) {
	m.dbOpenConns.Set(float64(stats.OpenConnections))
	m.dbInUseConns.Set(float64(stats.InUse))
	m.dbIdleConns.Set(float64(stats.Idle))
	m.dbWaitCount.Set(float64(stats.WaitCount))
}

// IncBookingCreated увеличивает счетчик успешных бронирований
func (m *Metrics) IncBookingCreated() {
	m.bookingsCreatedTotal.Inc()
}

// IncBookingFailed увеличивает счетчик неуспешных попыток бронирования
func (m *Metrics) IncBookingFailed(reason string) {
	m.bookingFailuresTotal.WithLabelValues(reason).Inc()
}

// AddSeatsReserved увеличивает счетчик зарезервированных мест
func (m *Metrics) AddSeatsReserved(quantity int) {
	m.seatsReservedTotal.Add(float64(quantity))
}
