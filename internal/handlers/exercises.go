package handlers

import (
	"net/http"

	"liftlens/internal/exercises"
)

// ListExercises returns the supported exercise catalog.
func (h *Handlers) ListExercises(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	writeJSON(w, exercises.All())
}

// ListMuscleGroups returns the muscle groups and their exercises.
func (h *Handlers) ListMuscleGroups(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	writeJSON(w, exercises.Groups())
}
