// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type DuelMetrics interface {
	SetQueueDepth(depth int)
	SetOnlinePlayers(count int)
	AddDuelCreated()
	AddDuelResolved(outcomeTag string)
	AddDuelResolveElapsedTimeMs(elapsedTime time.Duration)
	AddDroppedNotification(eventType string)
}

func NewMetrics(registry *prometheus.Registry) DuelMetrics {
	return setupPrometheusMetrics(registry)
}
