package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "barbershop"

// Metrics agrupa os coletores do serviço num registry próprio.
// Todos os métodos aceitam receiver nil.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	bookingsCreated prometheus.Counter
	bookingsFailed  prometheus.Counter

	totalProfiles     prometheus.Gauge
	totalShops        prometheus.Gauge
	totalAppointments prometheus.Gauge
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,

		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),

		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		bookingsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Appointments created through the booking wizard.",
		}),
		bookingsFailed: f.NewCounter(prometheus.CounterOpts{
			Name: "bookings_failed_total",
			Help: "Booking confirmations that failed at storage.",
		}),

		totalProfiles: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "profiles",
			Help:      "Registered profiles.",
		}),
		totalShops: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "shops",
			Help:      "Registered barbershops.",
		}),
		totalAppointments: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "appointments",
			Help:      "Stored appointments.",
		}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) BookingCreated() {
	if m != nil {
		m.bookingsCreated.Inc()
	}
}

func (m *Metrics) BookingFailed() {
	if m != nil {
		m.bookingsFailed.Inc()
	}
}

func (m *Metrics) SetTotals(profiles, shops, appointments int64) {
	if m == nil {
		return
	}
	m.totalProfiles.Set(float64(profiles))
	m.totalShops.Set(float64(shops))
	m.totalAppointments.Set(float64(appointments))
}
