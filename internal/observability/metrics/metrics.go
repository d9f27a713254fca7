package metrics

import "github.com/prometheus/client_golang/prometheus"

// PortalMetrics counts dashboard page loads and resource-store round trips.
type PortalMetrics struct {
	pageLoads  *prometheus.CounterVec
	storeCalls *prometheus.CounterVec
}

func NewPortalMetrics(reg prometheus.Registerer) *PortalMetrics {
	m := &PortalMetrics{
		pageLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hospital",
			Subsystem: "portal",
			Name:      "page_loads_total",
			Help:      "Dashboard page loads by view and outcome",
		}, []string{"view", "outcome"}),
		storeCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hospital",
			Subsystem: "portal",
			Name:      "store_calls_total",
			Help:      "Mutations sent to the resource store by action and outcome",
		}, []string{"action", "outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.pageLoads, m.storeCalls)
	return m
}

func (m *PortalMetrics) ObservePageLoad(view, outcome string) {
	if m == nil {
		return
	}
	m.pageLoads.WithLabelValues(view, outcome).Inc()
}

func (m *PortalMetrics) ObserveStoreCall(action string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.storeCalls.WithLabelValues(action, outcome).Inc()
}
