package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := New(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})
	return db
}

func sampleAnalysis() Analysis {
	return Analysis{
		ExerciseID:        "squat",
		MuscleGroup:       "legs",
		OverallScore:      ScoreNeedsImprovement,
		VideoPath:         "/videos/abc_squat.mp4",
		SkeletonVideoPath: "/videos/abc_squat_skeleton.mp4",
		Feedback: []FeedbackItem{
			{Aspect: "depth", Status: StatusWarning, Message: "Partial depth (100°). Aim for thighs parallel to the floor (≤90°)."},
			{Aspect: "back_position", Status: StatusOK, Message: "Good back position."},
		},
	}
}

func TestCreateAndGetAnalysis(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	created, err := db.CreateAnalysis(ctx, sampleAnalysis())
	if err != nil {
		t.Fatalf("CreateAnalysis failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected non-zero analysis id")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	for _, item := range created.Feedback {
		if item.ID == 0 {
			t.Error("expected non-zero feedback item id")
		}
	}

	got, err := db.GetAnalysis(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetAnalysis failed: %v", err)
	}
	if got.ExerciseID != "squat" || got.MuscleGroup != "legs" {
		t.Errorf("unexpected analysis: %+v", got)
	}
	if got.OverallScore != ScoreNeedsImprovement {
		t.Errorf("OverallScore = %q, want needs_improvement", got.OverallScore)
	}
	if len(got.Feedback) != 2 {
		t.Fatalf("expected 2 feedback items, got %d", len(got.Feedback))
	}
	if got.Feedback[0].Aspect != "depth" || got.Feedback[0].Status != StatusWarning {
		t.Errorf("unexpected first feedback item: %+v", got.Feedback[0])
	}
}

func TestGetAnalysisNotFound(t *testing.T) {
	db := newTestDatabase(t)

	_, err := db.GetAnalysis(context.Background(), 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetAnalysis(9999) error = %v, want ErrNotFound", err)
	}
}

func TestListAnalyses(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	list, err := db.ListAnalyses(ctx)
	if err != nil {
		t.Fatalf("ListAnalyses failed: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d", len(list))
	}

	first, err := db.CreateAnalysis(ctx, sampleAnalysis())
	if err != nil {
		t.Fatalf("CreateAnalysis failed: %v", err)
	}

	second := sampleAnalysis()
	second.ExerciseID = "deadlift"
	second.MuscleGroup = "back"
	if _, err := db.CreateAnalysis(ctx, second); err != nil {
		t.Fatalf("CreateAnalysis failed: %v", err)
	}

	list, err = db.ListAnalyses(ctx)
	if err != nil {
		t.Fatalf("ListAnalyses failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 analyses, got %d", len(list))
	}

	// Newest first: the deadlift was inserted last and ties on created_at
	// are broken by id descending.
	if list[0].ExerciseID != "deadlift" {
		t.Errorf("expected deadlift first, got %q", list[0].ExerciseID)
	}
	if list[1].ID != first.ID {
		t.Errorf("expected squat analysis second, got id %d", list[1].ID)
	}
	if len(list[0].Feedback) != 2 {
		t.Errorf("expected feedback attached to listed analyses, got %d items", len(list[0].Feedback))
	}
}

func TestGetSkeletonVideoPath(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	created, err := db.CreateAnalysis(ctx, sampleAnalysis())
	if err != nil {
		t.Fatalf("CreateAnalysis failed: %v", err)
	}

	path, err := db.GetSkeletonVideoPath(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetSkeletonVideoPath failed: %v", err)
	}
	if path != "/videos/abc_squat_skeleton.mp4" {
		t.Errorf("path = %q", path)
	}

	if _, err := db.GetSkeletonVideoPath(ctx, 12345); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id error = %v, want ErrNotFound", err)
	}
}

func TestCreateAnalysisWithoutFeedback(t *testing.T) {
	db := newTestDatabase(t)

	a := sampleAnalysis()
	a.Feedback = nil

	created, err := db.CreateAnalysis(context.Background(), a)
	if err != nil {
		t.Fatalf("CreateAnalysis failed: %v", err)
	}

	got, err := db.GetAnalysis(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetAnalysis failed: %v", err)
	}
	if len(got.Feedback) != 0 {
		t.Errorf("expected no feedback, got %d items", len(got.Feedback))
	}
}

func TestPing(t *testing.T) {
	db := newTestDatabase(t)

	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}
