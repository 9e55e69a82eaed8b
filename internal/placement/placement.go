// Package placement positions characters and props inside an assembled level.
package placement

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Ko-stant/dungeon-layout-engine/internal/level"
	"github.com/Ko-stant/dungeon-layout-engine/internal/scene"
)

type Kind string

const (
	Protagonist Kind = "protagonist"
	Antagonist  Kind = "antagonist"
	Secondary   Kind = "secondary"
	Prop        Kind = "prop"
)

func (k Kind) Valid() bool {
	switch k {
	case Protagonist, Antagonist, Secondary, Prop:
		return true
	}
	return false
}

// Object is a placement request. Objects that are not Ready are ignored.
type Object struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Kind          Kind     `json:"kind" yaml:"kind"`
	PlacementTags []string `json:"placementTags,omitempty" yaml:"placementTags,omitempty"`
	Scale         float64  `json:"scale,omitempty" yaml:"scale,omitempty"`
	Ready         bool     `json:"ready" yaml:"ready"`
}

type Placed struct {
	ObjectID  string     `json:"objectId"`
	Name      string     `json:"name"`
	Kind      Kind       `json:"kind"`
	RoomID    string     `json:"roomId"`
	Position  mgl64.Vec3 `json:"position"`
	RotationY float64    `json:"rotationY"`
	Scale     float64    `json:"scale"`
}

// Skipped records an object that had no room to go to.
type Skipped struct {
	ObjectID string `json:"objectId"`
	Reason   string `json:"reason"`
}

type Result struct {
	Placed  []Placed  `json:"placed"`
	Skipped []Skipped `json:"skipped"`
}

type Options struct {
	AntagonistScale float64 `json:"antagonistScale" yaml:"antagonist_scale"`
	SideOffset      float64 `json:"sideOffset" yaml:"side_offset"`
	PropRadius      float64 `json:"propRadius" yaml:"prop_radius"`
}

func DefaultOptions() Options {
	return Options{
		AntagonistScale: 1.5,
		SideOffset:      1.5,
		PropRadius:      1.2,
	}
}

const (
	defaultScale = 1.0
	arcStep      = 60.0
	arcStart     = -30.0
)

// Place resolves a target room for every ready object and returns the world
// positions. Objects whose target cannot be resolved are listed in Skipped.
func Place(lvl level.Level, objects []Object, t scene.Transform, opts Options) Result {
	p := placer{
		lvl:        lvl,
		t:          t,
		opts:       opts,
		midRooms:   lvl.RoomsWithTag(level.TagMid),
		propCounts: map[string]int{},
	}
	res := Result{Placed: []Placed{}, Skipped: []Skipped{}}

	for _, obj := range objects {
		if !obj.Ready {
			continue
		}
		placed, err := p.place(obj)
		if err != nil {
			res.Skipped = append(res.Skipped, Skipped{ObjectID: obj.ID, Reason: err.Error()})
			continue
		}
		res.Placed = append(res.Placed, placed)
	}
	return res
}

type placer struct {
	lvl        level.Level
	t          scene.Transform
	opts       Options
	midRooms   []level.Room
	secondary  int
	propCounts map[string]int
}

func (p *placer) place(obj Object) (Placed, error) {
	out := Placed{
		ObjectID: obj.ID,
		Name:     obj.Name,
		Kind:     obj.Kind,
		Scale:    obj.Scale,
	}
	if out.Scale <= 0 {
		out.Scale = defaultScale
	}

	switch obj.Kind {
	case Protagonist:
		room, err := p.poiRoom(level.POISpawn)
		if err != nil {
			return Placed{}, err
		}
		out.RoomID = room.ID
		out.Position = p.t.RoomCenter(room)

	case Antagonist:
		room, err := p.poiRoom(level.POIGoal)
		if err != nil {
			return Placed{}, err
		}
		if obj.Scale <= 0 {
			out.Scale = p.opts.AntagonistScale
		}
		out.RoomID = room.ID
		out.Position = p.t.RoomCenter(room)
		// face back toward the way in
		out.RotationY = math.Pi

	case Secondary:
		if len(p.midRooms) == 0 {
			return Placed{}, fmt.Errorf("no room tagged %q", level.TagMid)
		}
		room := p.midRooms[p.secondary%len(p.midRooms)]
		p.secondary++
		out.RoomID = room.ID
		out.Position = p.t.RoomCenter(room).Add(mgl64.Vec3{p.opts.SideOffset, 0, 0})

	case Prop:
		tag := level.TagMid
		if len(obj.PlacementTags) > 0 && obj.PlacementTags[0] != "" {
			tag = obj.PlacementTags[0]
		}
		room, ok := p.lvl.FirstRoomWithTag(tag)
		if !ok {
			return Placed{}, fmt.Errorf("no room tagged %q", tag)
		}
		i := p.propCounts[room.ID]
		p.propCounts[room.ID]++

		angle := mgl64.DegToRad(float64(i)*arcStep + arcStart)
		offset := mgl64.Vec3{math.Cos(angle), 0, math.Sin(angle)}.Mul(p.opts.PropRadius)
		out.RoomID = room.ID
		out.Position = p.t.RoomCenter(room).Add(offset)
		out.RotationY = -angle

	default:
		return Placed{}, fmt.Errorf("unknown kind %q", obj.Kind)
	}
	return out, nil
}

func (p *placer) poiRoom(t level.POIType) (level.Room, error) {
	poi, ok := p.lvl.POIOfType(t)
	if !ok {
		return level.Room{}, fmt.Errorf("level has no %s point", t)
	}
	room, ok := p.lvl.RoomByID(poi.RoomID)
	if !ok {
		return level.Room{}, fmt.Errorf("%s point references missing room %q", t, poi.RoomID)
	}
	return room, nil
}
