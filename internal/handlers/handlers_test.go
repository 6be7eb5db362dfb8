package handlers

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"liftlens/internal/database"
	"liftlens/internal/mlclient"
	"liftlens/internal/storage"

	"github.com/gorilla/mux"
)

// stubAnalyzer returns a canned result or error.
type stubAnalyzer struct {
	result mlclient.AnalysisResult
	err    error

	// captured arguments from the last call
	videoPath  string
	exerciseID string
}

func (s *stubAnalyzer) Analyze(_ context.Context, videoPath, exerciseID string) (mlclient.AnalysisResult, error) {
	s.videoPath = videoPath
	s.exerciseID = exerciseID
	if s.err != nil {
		return mlclient.AnalysisResult{}, s.err
	}
	return s.result, nil
}

func newTestHandlers(t *testing.T, ml Analyzer) (*Handlers, *database.Database) {
	t.Helper()

	db, err := database.New(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	return New(db, ml, storage.New(t.TempDir())), db
}

func newTestRouter(h *Handlers) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/analyses", h.CreateAnalysis).Methods("POST")
	r.HandleFunc("/api/analyses", h.ListAnalyses).Methods("GET")
	r.HandleFunc("/api/analyses/{id:[0-9]+}", h.GetAnalysis).Methods("GET")
	r.HandleFunc("/api/analyses/{id:[0-9]+}/skeleton-video", h.StreamSkeletonVideo).Methods("GET")
	r.HandleFunc("/api/exercises", h.ListExercises).Methods("GET")
	r.HandleFunc("/api/muscle-groups", h.ListMuscleGroups).Methods("GET")
	return r
}

var errAnalyzerDown = errors.New("analyzer down")
