// Package metrics exposes the process-wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ConnectionsLive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "linkup_connections_live",
		Help: "Currently open client connections, announced or not.",
	})
	UsersOnline = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "linkup_users_online",
		Help: "Users with a presence entry.",
	})
	MessagesRelayed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "linkup_messages_relayed_total",
		Help: "Chat messages delivered to a live recipient connection.",
	})
	MessagesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "linkup_messages_dropped_total",
		Help: "Chat messages dropped because the recipient was offline.",
	})
	SignalsRelayed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkup_signals_relayed_total",
		Help: "Call signaling events forwarded, by event.",
	}, []string{"event"})
	SendsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "linkup_sends_dropped_total",
		Help: "Outbound frames dropped on a full or closed send buffer.",
	})
)
