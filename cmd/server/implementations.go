package main

import (
	"encoding/json"
	"log"
	"sync/atomic"

	"github.com/Ko-stant/dungeon-layout-engine/internal/protocol"
	"github.com/Ko-stant/dungeon-layout-engine/internal/ws"
)

// BroadcasterImpl implements Broadcaster using WebSocket hub
type BroadcasterImpl struct {
	hub      *ws.Hub
	sequence SequenceGenerator
}

func NewBroadcaster(hub *ws.Hub, sequence SequenceGenerator) *BroadcasterImpl {
	return &BroadcasterImpl{
		hub:      hub,
		sequence: sequence,
	}
}

func (b *BroadcasterImpl) BroadcastEvent(levelID, eventType string, payload any) {
	data, err := json.Marshal(protocol.PatchEnvelope{
		Sequence: b.sequence.Next(),
		Type:     eventType,
		Payload:  payload,
	})
	if err != nil {
		log.Printf("failed to marshal %s: %v", eventType, err)
		return
	}
	log.Printf("broadcasting %s to %d clients of %s", eventType, b.hub.Count(levelID), levelID)
	b.hub.Broadcast(levelID, data)
}

// LoggerImpl implements Logger using standard log package
type LoggerImpl struct{}

func NewLogger() *LoggerImpl {
	return &LoggerImpl{}
}

func (l *LoggerImpl) Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// SequenceGeneratorImpl implements SequenceGenerator using atomic counter
type SequenceGeneratorImpl struct {
	counter uint64
}

func NewSequenceGenerator() *SequenceGeneratorImpl {
	return &SequenceGeneratorImpl{}
}

func (sg *SequenceGeneratorImpl) Next() uint64 {
	return atomic.AddUint64(&sg.counter, 1)
}
