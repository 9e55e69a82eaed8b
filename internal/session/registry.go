// Package session keeps the levels a server is working on. Each level is a
// chain of immutable snapshots; edits produce a new snapshot and swap it in.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/Ko-stant/dungeon-layout-engine/internal/edit"
	"github.com/Ko-stant/dungeon-layout-engine/internal/level"
	"github.com/Ko-stant/dungeon-layout-engine/internal/placement"
	"github.com/Ko-stant/dungeon-layout-engine/internal/repair"
	"github.com/Ko-stant/dungeon-layout-engine/internal/scene"
)

type Logger interface {
	Printf(format string, v ...any)
}

var ErrNotFound = errors.New("level not found")

type Options struct {
	Repair    repair.Options
	Scene     scene.Options
	Placement placement.Options
}

func DefaultOptions() Options {
	return Options{
		Repair:    repair.DefaultOptions(),
		Scene:     scene.DefaultOptions(),
		Placement: placement.DefaultOptions(),
	}
}

// Snapshot is one revision of a level with the scene assembled from it. A
// snapshot is never modified after the registry hands it out.
type Snapshot struct {
	ID        string         `json:"id"`
	Revision  int            `json:"revision"`
	Level     level.Level    `json:"level"`
	Scene     scene.Scene    `json:"scene"`
	Issues    []repair.Issue `json:"issues"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type Summary struct {
	ID        string    `json:"id"`
	Revision  int       `json:"revision"`
	Rooms     int       `json:"rooms"`
	Corridors int       `json:"corridors"`
	Warnings  int       `json:"warnings"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Registry struct {
	opts    Options
	logger  Logger
	metrics *Metrics

	mu     sync.RWMutex
	levels map[string]*Snapshot
}

func NewRegistry(opts Options, logger Logger, metrics *Metrics) *Registry {
	if metrics == nil {
		metrics = NewMetrics()
	}
	return &Registry{
		opts:    opts,
		logger:  logger,
		metrics: metrics,
		levels:  make(map[string]*Snapshot),
	}
}

func (r *Registry) Metrics() *Metrics { return r.metrics }

// Create repairs and assembles raw and stores it as revision 1 of a new level.
func (r *Registry) Create(raw *level.RawLevel) (*Snapshot, error) {
	start := time.Now()
	res, err := repair.RepairWith(raw, r.opts.Repair)
	if err != nil {
		return nil, err
	}
	r.metrics.TrackRepair(time.Since(start))

	snap := &Snapshot{
		ID:        generateLevelID(),
		Revision:  1,
		Level:     res.Level,
		Scene:     r.assemble(res.Level),
		Issues:    res.Issues,
		UpdatedAt: time.Now(),
	}

	r.mu.Lock()
	r.levels[snap.ID] = snap
	r.mu.Unlock()

	if r.logger != nil {
		r.logger.Printf("level %s created: %d rooms, %d corridors, %d issues",
			snap.ID, len(snap.Level.Rooms), len(snap.Level.Corridors), len(snap.Issues))
	}
	return snap, nil
}

func (r *Registry) Get(id string) (*Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snap, ok := r.levels[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return snap, nil
}

// Apply runs an edit against the latest revision and, if it succeeds, stores
// the re-assembled result as the next revision. Concurrent edits to the same
// level are serialized.
func (r *Registry) Apply(id string, op edit.Op) (*Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.levels[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	start := time.Now()
	lvl, err := edit.Apply(cur.Level, op)
	r.metrics.TrackEdit(time.Since(start), err != nil)
	if err != nil {
		if r.logger != nil {
			r.logger.Printf("level %s: %s rejected: %v", id, op.Name(), err)
		}
		return nil, err
	}

	next := &Snapshot{
		ID:        id,
		Revision:  cur.Revision + 1,
		Level:     lvl,
		Scene:     r.assemble(lvl),
		Issues:    cur.Issues,
		UpdatedAt: time.Now(),
	}
	r.levels[id] = next
	return next, nil
}

func (r *Registry) Place(id string, objects []placement.Object) (placement.Result, error) {
	snap, err := r.Get(id)
	if err != nil {
		return placement.Result{}, err
	}
	return placement.Place(snap.Level, objects, scene.TransformFor(snap.Level), r.opts.Placement), nil
}

// List returns a summary of every level, ordered by id.
func (r *Registry) List() []Summary {
	r.mu.RLock()
	out := make([]Summary, 0, len(r.levels))
	for _, s := range r.levels {
		out = append(out, Summary{
			ID:        s.ID,
			Revision:  s.Revision,
			Rooms:     len(s.Level.Rooms),
			Corridors: len(s.Level.Corridors),
			Warnings:  len(repair.Warnings(s.Issues)),
			UpdatedAt: s.UpdatedAt,
		})
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b Summary) int { return strings.Compare(a.ID, b.ID) })
	return out
}

func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.levels[id]; !ok {
		return false
	}
	delete(r.levels, id)
	return true
}

func (r *Registry) assemble(lvl level.Level) scene.Scene {
	start := time.Now()
	sc := scene.Assemble(lvl, r.opts.Scene)
	r.metrics.TrackAssemble(time.Since(start))
	return sc
}

func generateLevelID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("level-%d", time.Now().UnixNano())
	}
	return "level-" + hex.EncodeToString(bytes)
}
