package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Ko-stant/dungeon-layout-engine/internal/edit"
	"github.com/Ko-stant/dungeon-layout-engine/internal/repair"
	"github.com/Ko-stant/dungeon-layout-engine/internal/session"
)

// APIError is the JSON body of every failed API request.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// classify maps a domain error onto an HTTP status and API error.
func classify(err error) (int, *APIError) {
	var (
		ee *edit.EditError
		le *repair.LayoutError
		ae *APIError
	)
	switch {
	case errors.As(err, &ae):
		return http.StatusBadRequest, ae
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound, &APIError{Code: "not_found", Message: err.Error()}
	case errors.As(err, &ee):
		return http.StatusConflict, &APIError{Code: ee.Code, Message: ee.Message}
	case errors.As(err, &le):
		return http.StatusUnprocessableEntity, &APIError{Code: le.Code, Message: err.Error()}
	}
	return http.StatusInternalServerError, &APIError{Code: "internal", Message: err.Error()}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status, body := classify(err)
	writeJSON(w, status, body)
}
