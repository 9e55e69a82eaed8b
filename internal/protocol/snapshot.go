package protocol

import (
	"github.com/Ko-stant/dungeon-layout-engine/internal/level"
	"github.com/Ko-stant/dungeon-layout-engine/internal/repair"
	"github.com/Ko-stant/dungeon-layout-engine/internal/scene"
	"github.com/Ko-stant/dungeon-layout-engine/internal/session"
)

const ProtocolVersion = "v1"

// Snapshot is the first message a stream client receives.
type Snapshot struct {
	LevelID         string         `json:"levelId"`
	Revision        int            `json:"revision"`
	Level           level.Level    `json:"level"`
	Scene           scene.Scene    `json:"scene"`
	Issues          []repair.Issue `json:"issues"`
	ProtocolVersion string         `json:"protocolVersion"`
}

func NewSnapshot(s *session.Snapshot) Snapshot {
	return Snapshot{
		LevelID:         s.ID,
		Revision:        s.Revision,
		Level:           s.Level,
		Scene:           s.Scene,
		Issues:          s.Issues,
		ProtocolVersion: ProtocolVersion,
	}
}
