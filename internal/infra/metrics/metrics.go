package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the bot's counters on an explicit registry, so tests and the
// app construct their own instances instead of sharing process-global state.
type Metrics struct {
	registry *prometheus.Registry

	CheckCycles         prometheus.Counter
	AlertsTriggered     prometheus.Counter
	NotificationsSent   prometheus.Counter
	NotificationsFailed prometheus.Counter
	ActiveAlerts        prometheus.Gauge
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		CheckCycles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mycoinsalert",
			Name:      "check_cycles_total",
			Help:      "Completed alert evaluation cycles.",
		}),
		AlertsTriggered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mycoinsalert",
			Name:      "alerts_triggered_total",
			Help:      "Alerts whose condition was met.",
		}),
		NotificationsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mycoinsalert",
			Name:      "notifications_sent_total",
			Help:      "Consolidated alert messages delivered.",
		}),
		NotificationsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mycoinsalert",
			Name:      "notifications_failed_total",
			Help:      "Alert messages that failed to deliver.",
		}),
		ActiveAlerts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "mycoinsalert",
			Name:      "active_alerts",
			Help:      "Alerts seen by the last evaluation cycle.",
		}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		m.CheckCycles,
		m.AlertsTriggered,
		m.NotificationsSent,
		m.NotificationsFailed,
		m.ActiveAlerts,
	)

	return m
}

// Server returns an HTTP server exposing /metrics and /health on the given
// port. The caller owns its lifecycle.
func (m *Metrics) Server(port int) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	return &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
}
