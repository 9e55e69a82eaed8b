package main

import (
	"github.com/Ko-stant/dungeon-layout-engine/internal/edit"
	"github.com/Ko-stant/dungeon-layout-engine/internal/level"
	"github.com/Ko-stant/dungeon-layout-engine/internal/placement"
	"github.com/Ko-stant/dungeon-layout-engine/internal/session"
)

// Broadcaster interface for WebSocket communication
type Broadcaster interface {
	BroadcastEvent(levelID, eventType string, payload any)
}

// Logger interface for logging abstraction
type Logger interface {
	Printf(format string, v ...interface{})
}

// SequenceGenerator interface for sequence number generation
type SequenceGenerator interface {
	Next() uint64
}

// LevelStore is the part of the session registry the handlers use.
type LevelStore interface {
	Create(raw *level.RawLevel) (*session.Snapshot, error)
	Get(id string) (*session.Snapshot, error)
	Apply(id string, op edit.Op) (*session.Snapshot, error)
	Place(id string, objects []placement.Object) (placement.Result, error)
	List() []session.Summary
}
