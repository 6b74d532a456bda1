// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type prometheusMetrics struct {
	queueDepth           prometheus.Gauge
	onlinePlayers        prometheus.Gauge
	duelsCreated         prometheus.Counter
	duelsResolved        prometheus.CounterVec
	duelResolveElapsed   prometheus.Histogram
	droppedNotifications prometheus.CounterVec
}

func setupPrometheusMetrics(registry *prometheus.Registry) prometheusMetrics {
	factory := promauto.With(registry)

	queueDepth := factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "duel_arena_queue_depth",
			Help: "Number of players currently waiting in the match queue",
		})

	onlinePlayers := factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "duel_arena_online_players",
			Help: "Number of players with a live transport connection",
		})

	duelsCreated := factory.NewCounter(
		prometheus.CounterOpts{
			Name: "duel_arena_duels_created_total",
			Help: "Total number of duels created by the matcher",
		})

	duelsResolved := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duel_arena_duels_resolved_total",
			Help: "Total number of resolved duels per outcome tag",
		}, []string{"outcome"})

	//nolint:promlinter
	duelResolveElapsed := factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "duel_arena_duel_resolve_elapsed_time_ms",
			Help:    "A histogram of duel creation-to-resolution elapsed time in milliseconds",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10),
		})

	droppedNotifications := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duel_arena_dropped_notifications_total",
			Help: "Total number of notifications dropped because no connection handle was found",
		}, []string{"event"})

	return prometheusMetrics{
		queueDepth:           queueDepth,
		onlinePlayers:        onlinePlayers,
		duelsCreated:         duelsCreated,
		duelsResolved:        *duelsResolved,
		duelResolveElapsed:   duelResolveElapsed,
		droppedNotifications: *droppedNotifications,
	}
}

func (metrics prometheusMetrics) SetQueueDepth(depth int) {
	metrics.queueDepth.Set(float64(depth))
}

func (metrics prometheusMetrics) SetOnlinePlayers(count int) {
	metrics.onlinePlayers.Set(float64(count))
}

func (metrics prometheusMetrics) AddDuelCreated() {
	metrics.duelsCreated.Add(float64(1))
}

func (metrics prometheusMetrics) AddDuelResolved(outcomeTag string) {
	metrics.duelsResolved.With(prometheus.Labels{"outcome": outcomeTag}).Add(float64(1))
}

func (metrics prometheusMetrics) AddDuelResolveElapsedTimeMs(elapsedTime time.Duration) {
	metrics.duelResolveElapsed.Observe(float64(elapsedTime.Milliseconds()))
}

func (metrics prometheusMetrics) AddDroppedNotification(eventType string) {
	metrics.droppedNotifications.With(prometheus.Labels{"event": eventType}).Add(float64(1))
}
