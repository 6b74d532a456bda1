package testsetup

import (
	"time"

	"github.com/duelarena/duel-core/pkg/metrics"
)

type stubMetricsCollection struct{}

func (s stubMetricsCollection) SetQueueDepth(depth int) {
}

func (s stubMetricsCollection) SetOnlinePlayers(count int) {
}

func (s stubMetricsCollection) AddDuelCreated() {
}

func (s stubMetricsCollection) AddDuelResolved(outcomeTag string) {
}

func (s stubMetricsCollection) AddDuelResolveElapsedTimeMs(elapsedTime time.Duration) {
}

func (s stubMetricsCollection) AddDroppedNotification(eventType string) {
}

func NewMetrics() metrics.DuelMetrics {
	return stubMetricsCollection{}
}
