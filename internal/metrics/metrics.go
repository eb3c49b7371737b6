package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	RiskAssessments = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "risk_assessments_total",
			Help: "Total credit-risk assessments computed",
		},
	)
	ProfilesComputed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "profiles_computed_total",
			Help: "Total financial profiles derived from budget history",
		},
	)
	GoalsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "goals_created_total",
			Help: "Total goals persisted through goal planning",
		},
	)
	AdvisorRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_requests_total",
			Help: "Total advisor (LLM) calls",
		},
		[]string{"outcome"}, // ok|error
	)

	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)
)

// /metrics endpoint handler
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RiskAssessments)
	prometheus.MustRegister(ProfilesComputed)
	prometheus.MustRegister(GoalsCreated)
	prometheus.MustRegister(AdvisorRequests)
	prometheus.MustRegister(WorkerQueueDepth)
}
