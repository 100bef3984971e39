package domain

import (
	"time"

	"github.com/google/uuid"
)

// StreamIndexSync - stream consumed by the index sync worker
const StreamIndexSync = "stream:index:sync"

// IndexSyncTarget - which index a sync event rebuilds
type IndexSyncTarget string

const (
	SyncBusinesses IndexSyncTarget = "businesses"
	SyncTags       IndexSyncTarget = "tags"
	SyncRegions    IndexSyncTarget = "regions"
)

// IndexSyncEvent - request to rebuild an index from the content source
type IndexSyncEvent struct {
	ID          uuid.UUID       `json:"id" swaggertype:"string" format:"uuid"`
	Target      IndexSyncTarget `json:"target"`
	Reason      string          `json:"reason,omitempty"`
	RequestedAt time.Time       `json:"requested_at"`
}

// NewIndexSyncEvent stamps a new event.
func NewIndexSyncEvent(target IndexSyncTarget, reason string) IndexSyncEvent {
	return IndexSyncEvent{
		ID:          uuid.New(),
		Target:      target,
		Reason:      reason,
		RequestedAt: time.Now().UTC(),
	}
}

// Valid reports whether the target is known.
func (e IndexSyncEvent) Valid() bool {
	switch e.Target {
	case SyncBusinesses, SyncTags, SyncRegions:
		return true
	}
	return false
}

// StreamMessage - message read from a Redis stream
type StreamMessage struct {
	ID   string
	Data string
}
