package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/Ko-stant/dungeon-layout-engine/internal/edit"
	"github.com/Ko-stant/dungeon-layout-engine/internal/level"
)

type IntentEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

const (
	IntentAddRoom        = "RequestAddRoom"
	IntentRemoveRoom     = "RequestRemoveRoom"
	IntentMoveRoom       = "RequestMoveRoom"
	IntentResizeRoom     = "RequestResizeRoom"
	IntentAddCorridor    = "RequestAddCorridor"
	IntentRemoveCorridor = "RequestRemoveCorridor"
	IntentAddPOI         = "RequestAddPOI"
	IntentRemovePOI      = "RequestRemovePOI"
)

type RequestAddRoom struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	GridX  int      `json:"gridX"`
	GridY  int      `json:"gridY"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Tags   []string `json:"tags,omitempty"`
}

type RequestRemoveRoom struct {
	RoomID string `json:"roomId"`
}

type RequestMoveRoom struct {
	RoomID string `json:"roomId"`
	GridX  int    `json:"gridX"`
	GridY  int    `json:"gridY"`
}

type RequestResizeRoom struct {
	RoomID string `json:"roomId"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type RequestAddCorridor struct {
	ID         string `json:"id"`
	FromRoom   string `json:"fromRoom"`
	ToRoom     string `json:"toRoom"`
	WidthCells int    `json:"widthCells"`
}

type RequestRemoveCorridor struct {
	CorridorID string `json:"corridorId"`
}

type RequestAddPOI struct {
	ID      string  `json:"id"`
	Type    string  `json:"type"`
	RoomID  string  `json:"roomId"`
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
}

type RequestRemovePOI struct {
	POIID string `json:"poiId"`
}

// DecodeIntent turns a client intent into the edit it asks for.
func DecodeIntent(env IntentEnvelope) (edit.Op, error) {
	switch env.Type {
	case IntentAddRoom:
		var req RequestAddRoom
		if err := decodePayload(env, &req); err != nil {
			return nil, err
		}
		return edit.AddRoom{Room: level.Room{
			ID: req.ID, Name: req.Name,
			GridX: req.GridX, GridY: req.GridY,
			Width: req.Width, Height: req.Height,
			Tags: req.Tags,
		}}, nil

	case IntentRemoveRoom:
		var req RequestRemoveRoom
		if err := decodePayload(env, &req); err != nil {
			return nil, err
		}
		return edit.RemoveRoom{RoomID: req.RoomID}, nil

	case IntentMoveRoom:
		var req RequestMoveRoom
		if err := decodePayload(env, &req); err != nil {
			return nil, err
		}
		return edit.MoveRoom{RoomID: req.RoomID, GridX: req.GridX, GridY: req.GridY}, nil

	case IntentResizeRoom:
		var req RequestResizeRoom
		if err := decodePayload(env, &req); err != nil {
			return nil, err
		}
		return edit.ResizeRoom{RoomID: req.RoomID, Width: req.Width, Height: req.Height}, nil

	case IntentAddCorridor:
		var req RequestAddCorridor
		if err := decodePayload(env, &req); err != nil {
			return nil, err
		}
		return edit.AddCorridor{ID: req.ID, FromRoom: req.FromRoom, ToRoom: req.ToRoom, WidthCells: req.WidthCells}, nil

	case IntentRemoveCorridor:
		var req RequestRemoveCorridor
		if err := decodePayload(env, &req); err != nil {
			return nil, err
		}
		return edit.RemoveCorridor{CorridorID: req.CorridorID}, nil

	case IntentAddPOI:
		var req RequestAddPOI
		if err := decodePayload(env, &req); err != nil {
			return nil, err
		}
		return edit.AddPOI{POI: level.POI{
			ID: req.ID, Type: level.POIType(req.Type), RoomID: req.RoomID,
			OffsetX: req.OffsetX, OffsetY: req.OffsetY,
		}}, nil

	case IntentRemovePOI:
		var req RequestRemovePOI
		if err := decodePayload(env, &req); err != nil {
			return nil, err
		}
		return edit.RemovePOI{POIID: req.POIID}, nil
	}
	return nil, fmt.Errorf("unknown intent type %q", env.Type)
}

func decodePayload(env IntentEnvelope, v any) error {
	if len(env.Payload) == 0 {
		return fmt.Errorf("%s: missing payload", env.Type)
	}
	if err := json.Unmarshal(env.Payload, v); err != nil {
		return fmt.Errorf("%s: %w", env.Type, err)
	}
	return nil
}
