package database

import "time"

// OverallScore is the ML service's verdict on an entire lift.
type OverallScore string

const (
	ScoreGood             OverallScore = "good"
	ScoreNeedsImprovement OverallScore = "needs_improvement"
	ScorePoor             OverallScore = "poor"
)

// FeedbackStatus classifies one aspect of a lift.
type FeedbackStatus string

const (
	StatusOK      FeedbackStatus = "ok"
	StatusWarning FeedbackStatus = "warning"
	StatusError   FeedbackStatus = "error"
)

// Analysis is one analyzed workout video with its feedback.
type Analysis struct {
	ID                int64          `json:"id"`
	ExerciseID        string         `json:"exerciseId"`
	MuscleGroup       string         `json:"muscleGroup"`
	OverallScore      OverallScore   `json:"overallScore"`
	VideoPath         string         `json:"videoPath,omitempty"`
	SkeletonVideoPath string         `json:"skeletonVideoPath,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
	Feedback          []FeedbackItem `json:"feedbackItems"`
}

// FeedbackItem is one aspect-level observation about a lift.
type FeedbackItem struct {
	ID      int64          `json:"id"`
	Aspect  string         `json:"aspect"`
	Status  FeedbackStatus `json:"status"`
	Message string         `json:"message"`
}
