package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"liftlens/internal/exercises"
)

func TestHealthCheck(t *testing.T) {
	h, db := newTestHandlers(t, &stubAnalyzer{})

	t.Run("healthy", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/health", nil)
		rec := httptest.NewRecorder()
		h.HealthCheck(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		var resp HealthResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Status != statusHealthy || !resp.Ready {
			t.Errorf("expected healthy/ready, got %+v", resp)
		}
	})

	t.Run("degraded after database close", func(t *testing.T) {
		if err := db.Close(); err != nil {
			t.Fatalf("failed to close database: %v", err)
		}

		req := httptest.NewRequest("GET", "/api/health", nil)
		rec := httptest.NewRecorder()
		h.HealthCheck(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected status 503, got %d", rec.Code)
		}
		var resp HealthResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Status != statusDegraded || resp.Ready {
			t.Errorf("expected degraded/not-ready, got %+v", resp)
		}
	})
}

func TestLivenessCheck(t *testing.T) {
	h, _ := newTestHandlers(t, &stubAnalyzer{})

	req := httptest.NewRequest("GET", "/api/health/live", nil)
	rec := httptest.NewRecorder()
	h.LivenessCheck(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestReadinessCheck(t *testing.T) {
	h, _ := newTestHandlers(t, &stubAnalyzer{})

	req := httptest.NewRequest("GET", "/api/health/ready", nil)
	rec := httptest.NewRecorder()
	h.ReadinessCheck(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestListExercises(t *testing.T) {
	h, _ := newTestHandlers(t, &stubAnalyzer{})
	router := newTestRouter(h)

	req := httptest.NewRequest("GET", "/api/exercises", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var list []exercises.Exercise
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(list) == 0 {
		t.Fatal("expected a non-empty exercise catalog")
	}
	found := false
	for _, e := range list {
		if e.ID == "squat" && e.MuscleGroup == "legs" {
			found = true
		}
	}
	if !found {
		t.Error("expected squat in the exercise catalog")
	}
}

func TestListMuscleGroups(t *testing.T) {
	h, _ := newTestHandlers(t, &stubAnalyzer{})
	router := newTestRouter(h)

	req := httptest.NewRequest("GET", "/api/muscle-groups", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var groups []exercises.MuscleGroup
	if err := json.NewDecoder(rec.Body).Decode(&groups); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(groups) == 0 {
		t.Fatal("expected a non-empty muscle group list")
	}
}
