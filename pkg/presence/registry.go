// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package presence tracks which users currently have a live transport
// connection. The registry is independently synchronized; it never calls
// into other components.
package presence

import (
	"gopkg.in/typ.v4/sync2"
)

// ConnectionHandle is an opaque transport handle. The core never inspects
// it, it only hands it back to the transport collaborator on delivery.
type ConnectionHandle interface{}

// Registry maps user id to at most one live connection handle.
type Registry struct {
	handles sync2.Map[string, ConnectionHandle]
}

func NewRegistry() *Registry {
	return &Registry{}
}

// SetOnline registers or replaces the live handle for a user. It returns
// the prior handle and whether one existed, so the caller can treat a
// reconnect as an implicit disconnect of the old handle.
func (r *Registry) SetOnline(userID string, handle ConnectionHandle) (ConnectionHandle, bool) {
	prev, existed := r.handles.Load(userID)
	r.handles.Store(userID, handle)

	return prev, existed
}

// SetOffline removes the handle for a user. Dropping the user from the
// match queue is the coordinator's job, called explicitly alongside this.
func (r *Registry) SetOffline(userID string) {
	r.handles.Delete(userID)
}

// Lookup returns the live handle for a user, absent when offline.
func (r *Registry) Lookup(userID string) (ConnectionHandle, bool) {
	return r.handles.Load(userID)
}

// OnlineCount returns the number of users with a live connection.
func (r *Registry) OnlineCount() int {
	count := 0
	r.handles.Range(func(string, ConnectionHandle) bool {
		count++

		return true
	})

	return count
}
