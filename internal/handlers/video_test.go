package handlers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"liftlens/internal/database"
)

// seedVideo writes size deterministic bytes to disk and records an analysis
// pointing at them, returning the analysis ID and the file's contents.
func seedVideo(t *testing.T, db *database.Database, size int) (int64, []byte) {
	t.Helper()

	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i % 251)
	}
	path := filepath.Join(t.TempDir(), "skeleton.mp4")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write test video: %v", err)
	}

	saved, err := db.CreateAnalysis(context.Background(), database.Analysis{
		ExerciseID:        "squat",
		MuscleGroup:       "legs",
		OverallScore:      database.ScoreGood,
		SkeletonVideoPath: path,
	})
	if err != nil {
		t.Fatalf("failed to seed analysis: %v", err)
	}
	return saved.ID, data
}

func TestStreamSkeletonVideoFull(t *testing.T) {
	h, db := newTestHandlers(t, &stubAnalyzer{})
	router := newTestRouter(h)
	id, data := seedVideo(t, db, 1000)

	req := httptest.NewRequest("GET", fmt.Sprintf("/api/analyses/%d/skeleton-video", id), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Accept-Ranges"); got != "bytes" {
		t.Errorf("expected Accept-Ranges 'bytes', got %q", got)
	}
	if got := rec.Header().Get("Content-Type"); got != "video/mp4" {
		t.Errorf("expected Content-Type video/mp4, got %q", got)
	}
	if got := rec.Header().Get("Content-Length"); got != "1000" {
		t.Errorf("expected Content-Length 1000, got %q", got)
	}
	if got := rec.Header().Get("Content-Range"); got != "" {
		t.Errorf("full response must not carry Content-Range, got %q", got)
	}
	if !bytes.Equal(rec.Body.Bytes(), data) {
		t.Error("full response body does not match file contents")
	}
}

func TestStreamSkeletonVideoRanges(t *testing.T) {
	h, db := newTestHandlers(t, &stubAnalyzer{})
	router := newTestRouter(h)
	id, data := seedVideo(t, db, 1000)

	tests := []struct {
		name         string
		rangeHeader  string
		wantStatus   int
		wantStart    int
		wantEnd      int // inclusive
		wantCtRange  string
		wantCtLength string
	}{
		{
			name:         "bounded range",
			rangeHeader:  "bytes=500-599",
			wantStatus:   http.StatusPartialContent,
			wantStart:    500,
			wantEnd:      599,
			wantCtRange:  "bytes 500-599/1000",
			wantCtLength: "100",
		},
		{
			name:         "open ended range",
			rangeHeader:  "bytes=700-",
			wantStatus:   http.StatusPartialContent,
			wantStart:    700,
			wantEnd:      999,
			wantCtRange:  "bytes 700-999/1000",
			wantCtLength: "300",
		},
		{
			name:         "suffix range",
			rangeHeader:  "bytes=-100",
			wantStatus:   http.StatusPartialContent,
			wantStart:    900,
			wantEnd:      999,
			wantCtRange:  "bytes 900-999/1000",
			wantCtLength: "100",
		},
		{
			name:         "end clipped to size",
			rangeHeader:  "bytes=900-5000",
			wantStatus:   http.StatusPartialContent,
			wantStart:    900,
			wantEnd:      999,
			wantCtRange:  "bytes 900-999/1000",
			wantCtLength: "100",
		},
		{
			name:         "multiple specifiers serve only the first",
			rangeHeader:  "bytes=0-99,200-299",
			wantStatus:   http.StatusPartialContent,
			wantStart:    0,
			wantEnd:      99,
			wantCtRange:  "bytes 0-99/1000",
			wantCtLength: "100",
		},
		{
			name:         "malformed header degrades to full content",
			rangeHeader:  "bytes=abc-def",
			wantStatus:   http.StatusOK,
			wantStart:    0,
			wantEnd:      999,
			wantCtLength: "1000",
		},
		{
			name:         "start beyond size degrades to full content",
			rangeHeader:  "bytes=5000-",
			wantStatus:   http.StatusOK,
			wantStart:    0,
			wantEnd:      999,
			wantCtLength: "1000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", fmt.Sprintf("/api/analyses/%d/skeleton-video", id), nil)
			req.Header.Set("Range", tt.rangeHeader)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if got := rec.Header().Get("Content-Range"); got != tt.wantCtRange {
				t.Errorf("expected Content-Range %q, got %q", tt.wantCtRange, got)
			}
			if got := rec.Header().Get("Content-Length"); got != tt.wantCtLength {
				t.Errorf("expected Content-Length %q, got %q", tt.wantCtLength, got)
			}
			want := data[tt.wantStart : tt.wantEnd+1]
			if !bytes.Equal(rec.Body.Bytes(), want) {
				t.Errorf("body mismatch: got %d bytes, want bytes [%d,%d]",
					rec.Body.Len(), tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestStreamSkeletonVideoNotFound(t *testing.T) {
	h, db := newTestHandlers(t, &stubAnalyzer{})
	router := newTestRouter(h)

	t.Run("unknown analysis", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/analyses/9999/skeleton-video", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Errorf("expected empty body, got %d bytes", rec.Body.Len())
		}
	})

	t.Run("analysis without skeleton video", func(t *testing.T) {
		saved, err := db.CreateAnalysis(context.Background(), database.Analysis{
			ExerciseID:   "deadlift",
			MuscleGroup:  "back",
			OverallScore: database.ScorePoor,
		})
		if err != nil {
			t.Fatalf("failed to seed analysis: %v", err)
		}

		req := httptest.NewRequest("GET", fmt.Sprintf("/api/analyses/%d/skeleton-video", saved.ID), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Errorf("expected empty body, got %d bytes", rec.Body.Len())
		}
	})

	t.Run("file deleted from disk", func(t *testing.T) {
		id, _ := seedVideo(t, db, 100)
		var path string
		var err error
		if path, err = db.GetSkeletonVideoPath(context.Background(), id); err != nil {
			t.Fatalf("failed to look up seeded path: %v", err)
		}
		if err := os.Remove(path); err != nil {
			t.Fatalf("failed to remove test video: %v", err)
		}

		req := httptest.NewRequest("GET", fmt.Sprintf("/api/analyses/%d/skeleton-video", id), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Errorf("expected empty body, got %d bytes", rec.Body.Len())
		}
	})
}
