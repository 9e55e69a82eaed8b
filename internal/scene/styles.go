package scene

import "github.com/Ko-stant/dungeon-layout-engine/internal/level"

type Style struct {
	Name         string `json:"name"`
	FloorColor   string `json:"floorColor"`
	WallColor    string `json:"wallColor"`
	FloorTexture string `json:"floorTexture"`
	WallTexture  string `json:"wallTexture"`
}

const styleDefault = "default"

var roomStyles = map[string]Style{
	level.TagEntry:  {Name: level.TagEntry, FloorColor: "#4a7c59", WallColor: "#2f4f3a", FloorTexture: "moss_flagstone", WallTexture: "mossy_brick"},
	level.TagGoal:   {Name: level.TagGoal, FloorColor: "#b8860b", WallColor: "#6b4e16", FloorTexture: "gilded_tile", WallTexture: "carved_stone"},
	level.TagMid:    {Name: level.TagMid, FloorColor: "#7a7a7a", WallColor: "#4d4d4d", FloorTexture: "cobblestone", WallTexture: "stone_brick"},
	level.TagSecret: {Name: level.TagSecret, FloorColor: "#5b3f7a", WallColor: "#35244a", FloorTexture: "runic_slate", WallTexture: "obsidian"},
	styleDefault:    {Name: styleDefault, FloorColor: "#8b7d6b", WallColor: "#5c5248", FloorTexture: "packed_dirt", WallTexture: "rough_stone"},
}

const corridorColor = "#6e6256"

type markerStyle struct {
	Color string
	Label string
}

var markerStyles = map[level.POIType]markerStyle{
	level.POISpawn:      {Color: "#2ecc71", Label: "Spawn"},
	level.POIGoal:       {Color: "#f1c40f", Label: "Goal"},
	level.POITreasure:   {Color: "#e67e22", Label: "Treasure"},
	level.POICheckpoint: {Color: "#3498db", Label: "Checkpoint"},
}

// ResolveStyle picks the style of the room's first tag that has one, then
// applies any per-room material override on top.
func ResolveStyle(room level.Room) Style {
	style := roomStyles[styleDefault]
	for _, tag := range room.Tags {
		if s, ok := roomStyles[tag]; ok {
			style = s
			break
		}
	}

	if m := room.Material; m != nil {
		if m.FloorColor != "" {
			style.FloorColor = m.FloorColor
		}
		if m.WallColor != "" {
			style.WallColor = m.WallColor
		}
		if m.FloorTexture != "" {
			style.FloorTexture = m.FloorTexture
		}
		if m.WallTexture != "" {
			style.WallTexture = m.WallTexture
		}
	}
	return style
}
