package placement

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Ko-stant/dungeon-layout-engine/internal/level"
	"github.com/Ko-stant/dungeon-layout-engine/internal/scene"
)

func placementLevel() level.Level {
	return level.Level{
		Grid: level.GridConfig{CellSize: 2, TotalWidth: 64, TotalHeight: 64},
		Rooms: []level.Room{
			{ID: "entry", GridX: 0, GridY: 0, Width: 4, Height: 4, Tags: []string{level.TagEntry}},
			{ID: "hall", GridX: 10, GridY: 0, Width: 4, Height: 4, Tags: []string{level.TagMid}},
			{ID: "crypt", GridX: 20, GridY: 0, Width: 4, Height: 4, Tags: []string{level.TagMid, level.TagSecret}},
			{ID: "boss", GridX: 30, GridY: 0, Width: 6, Height: 6, Tags: []string{level.TagGoal}},
		},
		POIs: []level.POI{
			{ID: "spawn", Type: level.POISpawn, RoomID: "entry"},
			{ID: "goal", Type: level.POIGoal, RoomID: "boss"},
		},
	}
}

func near(a, b mgl64.Vec3) bool {
	return a.ApproxEqualThreshold(b, 1e-9)
}

func TestPlaceCharacters(t *testing.T) {
	lvl := placementLevel()
	tr := scene.TransformFor(lvl)
	opts := DefaultOptions()

	res := Place(lvl, []Object{
		{ID: "hero", Kind: Protagonist, Ready: true},
		{ID: "lich", Kind: Antagonist, Ready: true},
		{ID: "ghost", Kind: Antagonist, Ready: false},
	}, tr, opts)

	if len(res.Skipped) != 0 {
		t.Fatalf("unexpected skips: %+v", res.Skipped)
	}
	if len(res.Placed) != 2 {
		t.Fatalf("expected 2 placed objects, got %d", len(res.Placed))
	}

	hero, lich := res.Placed[0], res.Placed[1]
	if hero.RoomID != "entry" || !near(hero.Position, mgl64.Vec3{4, 0, 4}) || hero.Scale != 1 {
		t.Errorf("hero placed wrong: %+v", hero)
	}
	if lich.RoomID != "boss" || !near(lich.Position, mgl64.Vec3{66, 0, 6}) {
		t.Errorf("antagonist placed wrong: %+v", lich)
	}
	if lich.Scale != opts.AntagonistScale {
		t.Errorf("antagonist scale %v, want %v", lich.Scale, opts.AntagonistScale)
	}
}

func TestPlaceExplicitScaleWins(t *testing.T) {
	lvl := placementLevel()
	res := Place(lvl, []Object{{ID: "lich", Kind: Antagonist, Scale: 0.75, Ready: true}}, scene.TransformFor(lvl), DefaultOptions())
	if res.Placed[0].Scale != 0.75 {
		t.Fatalf("expected explicit scale kept, got %v", res.Placed[0].Scale)
	}
}

func TestPlaceSecondaryRoundRobin(t *testing.T) {
	lvl := placementLevel()
	opts := DefaultOptions()
	res := Place(lvl, []Object{
		{ID: "a", Kind: Secondary, Ready: true},
		{ID: "b", Kind: Secondary, Ready: true},
		{ID: "c", Kind: Secondary, Ready: true},
	}, scene.TransformFor(lvl), opts)

	want := []string{"hall", "crypt", "hall"}
	for i, p := range res.Placed {
		if p.RoomID != want[i] {
			t.Errorf("secondary %d in %s, want %s", i, p.RoomID, want[i])
		}
	}
	if !near(res.Placed[0].Position, mgl64.Vec3{24 + opts.SideOffset, 0, 4}) {
		t.Errorf("secondary not offset from center: %v", res.Placed[0].Position)
	}
}

func TestPlacePropsOnArc(t *testing.T) {
	lvl := placementLevel()
	opts := DefaultOptions()
	res := Place(lvl, []Object{
		{ID: "urn", Kind: Prop, PlacementTags: []string{level.TagSecret}, Ready: true},
		{ID: "chest", Kind: Prop, PlacementTags: []string{level.TagSecret}, Ready: true},
		{ID: "barrel", Kind: Prop, Ready: true},
	}, scene.TransformFor(lvl), opts)

	if len(res.Placed) != 3 {
		t.Fatalf("expected 3 props, got %+v", res)
	}
	center := mgl64.Vec3{44, 0, 4}
	for i, p := range res.Placed[:2] {
		if p.RoomID != "crypt" {
			t.Fatalf("prop %d in %s", i, p.RoomID)
		}
		angle := mgl64.DegToRad(float64(i)*60 - 30)
		want := center.Add(mgl64.Vec3{math.Cos(angle), 0, math.Sin(angle)}.Mul(opts.PropRadius))
		if !near(p.Position, want) {
			t.Errorf("prop %d at %v, want %v", i, p.Position, want)
		}
	}
	if res.Placed[0].Position == res.Placed[1].Position {
		t.Errorf("props stacked on one point")
	}

	// default tag is mid, and the arc index restarts per room
	barrel := res.Placed[2]
	if barrel.RoomID != "hall" {
		t.Fatalf("untagged prop in %s, want hall", barrel.RoomID)
	}
	first := mgl64.DegToRad(-30)
	want := mgl64.Vec3{24, 0, 4}.Add(mgl64.Vec3{math.Cos(first), 0, math.Sin(first)}.Mul(opts.PropRadius))
	if !near(barrel.Position, want) {
		t.Errorf("barrel at %v, want %v", barrel.Position, want)
	}
}

func TestPlaceReportsUnresolvable(t *testing.T) {
	lvl := placementLevel()
	lvl.POIs = nil
	res := Place(lvl, []Object{
		{ID: "hero", Kind: Protagonist, Ready: true},
		{ID: "torch", Kind: Prop, PlacementTags: []string{"armory"}, Ready: true},
		{ID: "odd", Kind: Kind("vehicle"), Ready: true},
	}, scene.TransformFor(lvl), DefaultOptions())

	if len(res.Placed) != 0 {
		t.Fatalf("expected nothing placed, got %+v", res.Placed)
	}
	if len(res.Skipped) != 3 {
		t.Fatalf("expected 3 skips, got %+v", res.Skipped)
	}
	for _, s := range res.Skipped {
		if s.Reason == "" {
			t.Errorf("skip for %s has no reason", s.ObjectID)
		}
	}
}
