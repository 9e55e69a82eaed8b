package main

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/Ko-stant/dungeon-layout-engine/internal/edit"
	"github.com/Ko-stant/dungeon-layout-engine/internal/level"
	"github.com/Ko-stant/dungeon-layout-engine/internal/placement"
	"github.com/Ko-stant/dungeon-layout-engine/internal/protocol"
	"github.com/Ko-stant/dungeon-layout-engine/internal/session"
	"github.com/Ko-stant/dungeon-layout-engine/internal/web/views"
)

const maxLevelBody = 4 << 20

// Handlers serves the HTTP API and applies stream intents.
type Handlers struct {
	store       LevelStore
	broadcaster Broadcaster
	logger      Logger
}

func NewHandlers(store LevelStore, broadcaster Broadcaster, logger Logger) *Handlers {
	return &Handlers{
		store:       store,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

func (h *Handlers) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.handleIndex)
	mux.HandleFunc("GET /demo", h.handleDemo)
	mux.HandleFunc("GET /levels/{id}", h.handleLevelPage)
	mux.HandleFunc("GET /api/levels", h.handleListLevels)
	mux.HandleFunc("POST /api/levels", h.handleCreateLevel)
	mux.HandleFunc("GET /api/levels/{id}", h.handleGetLevel)
	mux.HandleFunc("POST /api/levels/{id}/intents", h.handlePostIntent)
	mux.HandleFunc("POST /api/levels/{id}/place", h.handlePlace)
}

// HandleIntent applies one client intent to a level and tells every client
// of that level about the outcome. It returns the snapshot the intent
// produced.
func (h *Handlers) HandleIntent(levelID string, env protocol.IntentEnvelope) (*session.Snapshot, error) {
	op, err := protocol.DecodeIntent(env)
	if err != nil {
		h.logger.Printf("bad intent for %s: %v", levelID, err)
		return nil, &APIError{Code: "bad_intent", Message: err.Error()}
	}

	snap, err := h.store.Apply(levelID, op)
	if err != nil {
		var ee *edit.EditError
		if errors.As(err, &ee) {
			h.broadcaster.BroadcastEvent(levelID, protocol.PatchEditRejected, protocol.EditRejected{
				LevelID: levelID,
				Intent:  env.Type,
				Code:    ee.Code,
				Message: ee.Message,
			})
		}
		return nil, err
	}

	h.broadcaster.BroadcastEvent(levelID, protocol.PatchSceneRebuilt, protocol.SceneRebuilt{
		LevelID:  snap.ID,
		Revision: snap.Revision,
		Cause:    op.Name(),
		Scene:    snap.Scene,
	})
	return snap, nil
}

// HandleWebSocketMessage decodes a raw stream frame and applies it.
func (h *Handlers) HandleWebSocketMessage(levelID string, data []byte) error {
	var env protocol.IntentEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	_, err := h.HandleIntent(levelID, env)
	return err
}

func (h *Handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	if err := views.IndexPage(h.store.List()).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handlers) handleDemo(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.Create(level.DemoLevel())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/levels/"+snap.ID, http.StatusSeeOther)
}

func (h *Handlers) handleLevelPage(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.Get(r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := views.LevelPage(snap).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handlers) handleListLevels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.List())
}

// handleCreateLevel accepts a raw layout as JSON, or as YAML when the
// request says so in its Content-Type.
func (h *Handlers) handleCreateLevel(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxLevelBody))
	if err != nil {
		writeError(w, &APIError{Code: "bad_body", Message: err.Error()})
		return
	}

	format := level.FormatJSON
	if mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mt == "application/yaml" || mt == "application/x-yaml" || mt == "text/yaml" {
		format = level.FormatYAML
	}
	raw, err := level.DecodeRawLevel(data, format)
	if err != nil {
		writeError(w, &APIError{Code: "bad_level", Message: err.Error()})
		return
	}

	snap, err := h.store.Create(raw)
	if err != nil {
		h.logger.Printf("level rejected: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, protocol.NewSnapshot(snap))
}

func (h *Handlers) handleGetLevel(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, protocol.NewSnapshot(snap))
}

func (h *Handlers) handlePostIntent(w http.ResponseWriter, r *http.Request) {
	var env protocol.IntentEnvelope
	if err := json.NewDecoder(io.LimitReader(r.Body, maxLevelBody)).Decode(&env); err != nil {
		writeError(w, &APIError{Code: "bad_intent", Message: err.Error()})
		return
	}
	snap, err := h.HandleIntent(r.PathValue("id"), env)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, protocol.NewSnapshot(snap))
}

type placeRequest struct {
	Objects []placement.Object `json:"objects"`
}

func (h *Handlers) handlePlace(w http.ResponseWriter, r *http.Request) {
	var req placeRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxLevelBody)).Decode(&req); err != nil {
		writeError(w, &APIError{Code: "bad_objects", Message: err.Error()})
		return
	}
	res, err := h.store.Place(r.PathValue("id"), req.Objects)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
