package protocol

import (
	"github.com/Ko-stant/dungeon-layout-engine/internal/scene"
)

const (
	PatchSceneRebuilt = "SceneRebuilt"
	PatchEditRejected = "EditRejected"
)

type PatchEnvelope struct {
	Sequence uint64 `json:"seq"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

// SceneRebuilt carries the full scene of a new revision. Scenes are always
// re-derived in full, never diffed.
type SceneRebuilt struct {
	LevelID  string      `json:"levelId"`
	Revision int         `json:"revision"`
	Cause    string      `json:"cause"`
	Scene    scene.Scene `json:"scene"`
}

type EditRejected struct {
	LevelID string `json:"levelId"`
	Intent  string `json:"intent"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
