// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package presence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handle struct {
	connectionID string
}

func TestRegistry_SetOnlineReplacesHandle(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	_, replaced := r.SetOnline("alice", handle{connectionID: "c1"})
	assert.False(t, replaced)

	prev, replaced := r.SetOnline("alice", handle{connectionID: "c2"})
	require.True(t, replaced, "a reconnect replaces the prior handle")
	assert.Equal(t, handle{connectionID: "c1"}, prev)

	current, ok := r.Lookup("alice")
	require.True(t, ok)
	assert.Equal(t, handle{connectionID: "c2"}, current)
	assert.Equal(t, 1, r.OnlineCount(), "at most one live handle per user")
}

func TestRegistry_SetOfflineRemovesHandle(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	r.SetOnline("alice", handle{connectionID: "c1"})
	r.SetOnline("bob", handle{connectionID: "c2"})
	require.Equal(t, 2, r.OnlineCount())

	r.SetOffline("alice")

	_, ok := r.Lookup("alice")
	assert.False(t, ok, "absence is a bool, not an error")
	assert.Equal(t, 1, r.OnlineCount())

	r.SetOffline("alice")
	assert.Equal(t, 1, r.OnlineCount(), "going offline twice is harmless")
}
