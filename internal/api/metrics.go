package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	actionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ontrack_client",
			Name:      "gateway_actions_total",
			Help:      "Backend actions that produced an HTTP response.",
		},
		[]string{"group", "action"},
	)

	failuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ontrack_client",
			Name:      "gateway_failures_total",
			Help:      "Backend actions that failed at transport level or returned a non-2xx status.",
		},
		[]string{"group", "action"},
	)
)
