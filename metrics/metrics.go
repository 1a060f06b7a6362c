package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the dashboard counters
type Metrics struct {
	registry        *prometheus.Registry
	Logins          *prometheus.CounterVec
	RecordsAdded    *prometheus.CounterVec
	RecordsDeleted  *prometheus.CounterVec
	LanguageChanges *prometheus.CounterVec
}

// New registers the dashboard counters on a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "helpdesk_logins_total",
			Help: "Login attempts by result.",
		}, []string{"result"}),
		RecordsAdded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "helpdesk_records_added_total",
			Help: "Records added from the dashboard by kind.",
		}, []string{"kind"}),
		RecordsDeleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "helpdesk_records_deleted_total",
			Help: "Records deleted from the dashboard by kind.",
		}, []string{"kind"}),
		LanguageChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "helpdesk_language_switches_total",
			Help: "Language switches by selected language.",
		}, []string{"lang"}),
	}

	m.registry.MustRegister(m.Logins, m.RecordsAdded, m.RecordsDeleted, m.LanguageChanges)
	return m
}

// Handler returns an http.Handler for Prometheus scraping
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
