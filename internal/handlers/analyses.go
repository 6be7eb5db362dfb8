package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"liftlens/internal/database"
	"liftlens/internal/exercises"
	"liftlens/internal/logging"
	"liftlens/internal/metrics"
	"liftlens/internal/videotypes"

	"github.com/gorilla/mux"
)

// maxUploadMemory bounds how much of a multipart upload is buffered in
// memory before spilling to a temp file.
const maxUploadMemory = 32 << 20 // 32 MiB

// CreateAnalysis accepts a multipart video upload, runs it through the
// analysis service, persists the result, and returns the stored analysis.
func (h *Handlers) CreateAnalysis(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeJSONError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	exerciseID := r.FormValue("exercise_id")
	if exerciseID == "" {
		writeJSONError(w, "exercise_id is required", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("video")
	if err != nil {
		writeJSONError(w, "video file is required", http.StatusBadRequest)
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			logging.Warn("failed to close uploaded file: %v", err)
		}
	}()

	if !videotypes.IsVideoFile(header.Filename) {
		writeJSONError(w, "unsupported video format", http.StatusBadRequest)
		return
	}

	storedPath, size, err := h.store.Save(file, header.Filename)
	if err != nil {
		logging.Error("Failed to store upload: %v", err)
		writeJSONError(w, "failed to store video", http.StatusInternalServerError)
		return
	}
	logging.Debug("Stored %s (%d bytes) for exercise %s", storedPath, size, exerciseID)

	result, err := h.ml.Analyze(r.Context(), storedPath, exerciseID)
	if err != nil {
		logging.Error("Analysis failed for %s: %v", storedPath, err)
		writeJSONError(w, "analysis service unavailable", http.StatusBadGateway)
		return
	}

	analysis := database.Analysis{
		ExerciseID:        exerciseID,
		MuscleGroup:       exercises.MuscleGroupFor(exerciseID),
		OverallScore:      database.OverallScore(result.OverallScore),
		VideoPath:         storedPath,
		SkeletonVideoPath: result.SkeletonVideoPath,
	}
	for _, item := range result.Feedback {
		analysis.Feedback = append(analysis.Feedback, database.FeedbackItem{
			Aspect:  item.Aspect,
			Status:  database.FeedbackStatus(item.Status),
			Message: item.Message,
		})
	}

	saved, err := h.db.CreateAnalysis(r.Context(), analysis)
	if err != nil {
		logging.Error("Failed to persist analysis: %v", err)
		writeJSONError(w, "failed to save analysis", http.StatusInternalServerError)
		return
	}

	metrics.AnalysesCreatedTotal.WithLabelValues(saved.ExerciseID, string(saved.OverallScore)).Inc()
	logging.Info("Analysis %d created for %s (%s) in %v",
		saved.ID, saved.ExerciseID, saved.OverallScore, time.Since(start))

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, saved)
}

// ListAnalyses returns all analyses, newest first.
func (h *Handlers) ListAnalyses(w http.ResponseWriter, r *http.Request) {
	analyses, err := h.db.ListAnalyses(r.Context())
	if err != nil {
		logging.Error("Failed to list analyses: %v", err)
		writeJSONError(w, "failed to list analyses", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, analyses)
}

// GetAnalysis returns one analysis by id.
func (h *Handlers) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeJSONError(w, "invalid analysis id", http.StatusBadRequest)
		return
	}

	analysis, err := h.db.GetAnalysis(r.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		writeJSONError(w, "analysis not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logging.Error("Failed to get analysis %d: %v", id, err)
		writeJSONError(w, "failed to get analysis", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, analysis)
}
