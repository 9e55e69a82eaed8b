package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/Ko-stant/dungeon-layout-engine/internal/level"
	"github.com/Ko-stant/dungeon-layout-engine/internal/placement"
	"github.com/Ko-stant/dungeon-layout-engine/internal/repair"
	"github.com/Ko-stant/dungeon-layout-engine/internal/session"
)

func newTestServer() *Server {
	return NewServer(session.DefaultOptions(), "test")
}

func TestRepairLevel_MissingLevel(t *testing.T) {
	server := newTestServer()
	_, _, err := server.handleRepairLevel(context.Background(), nil, RepairLevelInput{})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestRepairLevel_InsufficientRooms(t *testing.T) {
	server := newTestServer()
	raw := &level.RawLevel{Rooms: []level.RawRoom{{ID: "a", Width: 3, Height: 3}}}
	_, _, err := server.handleRepairLevel(context.Background(), nil, RepairLevelInput{Level: raw})
	if !errors.Is(err, repair.ErrInsufficientRooms) {
		t.Fatalf("expected ErrInsufficientRooms, got %v", err)
	}
}

func TestRepairLevel_Demo(t *testing.T) {
	server := newTestServer()
	_, output, err := server.handleRepairLevel(context.Background(), nil, RepairLevelInput{Level: level.DemoLevel()})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(output.Level.Rooms) != 4 {
		t.Fatalf("expected 4 rooms, got %d", len(output.Level.Rooms))
	}
	if output.Warnings == 0 || len(output.Issues) < output.Warnings {
		t.Fatalf("expected warnings for the demo level, got %d of %d", output.Warnings, len(output.Issues))
	}
}

func TestAssembleLevel(t *testing.T) {
	server := newTestServer()
	_, output, err := server.handleAssembleLevel(context.Background(), nil, AssembleLevelInput{Level: level.DemoLevel()})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(output.Scene.Rooms) != 4 || len(output.Scene.Walls) == 0 {
		t.Fatalf("unexpected scene: %d floors, %d walls", len(output.Scene.Rooms), len(output.Scene.Walls))
	}
	if len(output.Scene.POIMarkers) < 2 {
		t.Fatalf("expected spawn and goal markers, got %d", len(output.Scene.POIMarkers))
	}
}

func TestPlaceObjects(t *testing.T) {
	server := newTestServer()
	_, output, err := server.handlePlaceObjects(context.Background(), nil, PlaceObjectsInput{
		Level: level.DemoLevel(),
		Objects: []placement.Object{
			{ID: "hero", Kind: placement.Protagonist, Ready: true},
			{ID: "idol", Kind: placement.Prop, PlacementTags: []string{"armory"}, Ready: true},
		},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(output.Placed) != 1 || output.Placed[0].RoomID != "hall" {
		t.Fatalf("unexpected placements %+v", output.Placed)
	}
	if len(output.Skipped) != 1 || output.Skipped[0].ObjectID != "idol" {
		t.Fatalf("unexpected skips %+v", output.Skipped)
	}
}
