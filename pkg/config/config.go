// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import (
	"github.com/caarlos0/env"
)

type Config struct {
	RatingWindow               int `env:"RATING_WINDOW"                  envDefault:"150" envDocs:"maximum rating difference for two queued players to be paired"`
	VoteTimeLimitSecond        int `env:"VOTE_TIME_LIMIT_SECOND"         envDefault:"20"  envDocs:"how long a duel stays in voting before the sweep forces a timeout"`
	RemoveDelaySecond          int `env:"REMOVE_DELAY_SECOND"            envDefault:"10"  envDocs:"grace period a resolved duel stays readable before eviction"`
	SweepIntervalSecond        int `env:"SWEEP_INTERVAL_SECOND"          envDefault:"5"   envDocs:"interval the external scheduler should invoke the timeout sweep on"`
	QueueWaitBaseSecond        int `env:"QUEUE_WAIT_BASE_SECOND"         envDefault:"5"   envDocs:"floor of the estimated queue wait in seconds"`
	QueueWaitPerPositionSecond int `env:"QUEUE_WAIT_PER_POSITION_SECOND" envDefault:"2"   envDocs:"estimated wait added per queue position in seconds"`
}

// FromEnv builds a Config from environment variables, falling back to the
// documented defaults.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
