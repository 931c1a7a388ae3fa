// Package metrics Prometheus-метрики сервиса бронирований
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	// HTTP метрики
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Метрики БД
	dbQueryDuration *prometheus.HistogramVec
	dbConnsOpen     *prometheus.GaugeVec
	dbConnsInUse    *prometheus.GaugeVec
	dbConnsIdle     *prometheus.GaugeVec

	// Бизнес-метрики бронирований
	bookingsCreatedTotal *prometheus.CounterVec
	slotConflictsTotal   prometheus.Counter
	slotsBlockedTotal    *prometheus.CounterVec
}

// New создает и регистрирует метрики сервиса
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
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			ConstLabels: constLabels,
		}, []string{"operation"}),

		dbConnsOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		dbConnsInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Number of database connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		dbConnsIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		bookingsCreatedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of bookings successfully created",
			ConstLabels: constLabels,
		}, []string{"meeting_mode"}),

		slotConflictsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "booking_slot_conflicts_total",
			Help:        "Total number of booking attempts rejected because the slot was already taken",
			ConstLabels: constLabels,
		}),

		slotsBlockedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_slots_blocked_total",
			Help:        "Total number of admin block/unblock slot operations",
			ConstLabels: constLabels,
		}, []string{"action"}),
	}
}

// ObserveHTTPRequest записывает метрики HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDBQuery записывает длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetDBConnStats записывает состояние пула подключений
func (m *Metrics) SetDBConnStats(dbName string, open, inUse, idle int) {
	m.dbConnsOpen.WithLabelValues(dbName).Set(float64(open))
	m.dbConnsInUse.WithLabelValues(dbName).Set(float64(inUse))
	m.dbConnsIdle.WithLabelValues(dbName).Set(float64(idle))
}

// IncBookingCreated инкрементирует счётчик созданных бронирований
// Nil-receiver безопасен: при выключенных метриках обработчики получают nil
func (m *Metrics) IncBookingCreated(meetingMode string) {
	if m == nil {
		return
	}
	m.bookingsCreatedTotal.WithLabelValues(meetingMode).Inc()
}

// IncSlotConflict инкрементирует счётчик конфликтов слотов
func (m *Metrics) IncSlotConflict() {
	if m == nil {
		return
	}
	m.slotConflictsTotal.Inc()
}

// IncSlotBlocked инкрементирует счётчик операций блокировки слотов
func (m *Metrics) IncSlotBlocked(action string) {
	if m == nil {
		return
	}
	m.slotsBlockedTotal.WithLabelValues(action).Inc()
}
