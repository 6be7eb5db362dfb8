package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"liftlens/internal/logging"
)

// CreateAnalysis inserts an analysis and its feedback items in one
// transaction and returns the stored record with generated ids.
func (d *Database) CreateAnalysis(ctx context.Context, a Analysis) (Analysis, error) {
	start := time.Now()

	opCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tx, err := d.db.BeginTx(opCtx, nil)
	if err != nil {
		recordQuery("create_analysis", start, err)
		return Analysis{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			logging.Error("failed to roll back analysis insert: %v", err)
		}
	}()

	now := time.Now()
	res, err := tx.ExecContext(opCtx, `
		INSERT INTO analyses (exercise_id, muscle_group, overall_score, video_path, skeleton_video_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.ExerciseID, a.MuscleGroup, string(a.OverallScore), a.VideoPath, a.SkeletonVideoPath, now.Unix(),
	)
	if err != nil {
		recordQuery("create_analysis", start, err)
		return Analysis{}, fmt.Errorf("failed to insert analysis: %w", err)
	}

	analysisID, err := res.LastInsertId()
	if err != nil {
		recordQuery("create_analysis", start, err)
		return Analysis{}, fmt.Errorf("failed to get analysis id: %w", err)
	}

	for i := range a.Feedback {
		item := &a.Feedback[i]
		res, err := tx.ExecContext(opCtx, `
			INSERT INTO feedback_items (analysis_id, aspect, status, message)
			VALUES (?, ?, ?, ?)`,
			analysisID, item.Aspect, string(item.Status), item.Message,
		)
		if err != nil {
			recordQuery("create_analysis", start, err)
			return Analysis{}, fmt.Errorf("failed to insert feedback item: %w", err)
		}
		if item.ID, err = res.LastInsertId(); err != nil {
			recordQuery("create_analysis", start, err)
			return Analysis{}, fmt.Errorf("failed to get feedback item id: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		recordQuery("create_analysis", start, err)
		return Analysis{}, fmt.Errorf("failed to commit analysis: %w", err)
	}

	a.ID = analysisID
	a.CreatedAt = now
	recordQuery("create_analysis", start, nil)
	return a, nil
}

// ListAnalyses returns all analyses, newest first, with feedback attached.
func (d *Database) ListAnalyses(ctx context.Context) ([]Analysis, error) {
	start := time.Now()

	opCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := d.db.QueryContext(opCtx, `
		SELECT id, exercise_id, muscle_group, overall_score, video_path, skeleton_video_path, created_at
		FROM analyses
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		recordQuery("list_analyses", start, err)
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	analyses := []Analysis{}
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			recordQuery("list_analyses", start, err)
			return nil, err
		}
		analyses = append(analyses, a)
	}
	if err := rows.Err(); err != nil {
		recordQuery("list_analyses", start, err)
		return nil, fmt.Errorf("failed to iterate analyses: %w", err)
	}

	for i := range analyses {
		if err := d.attachFeedback(opCtx, &analyses[i]); err != nil {
			recordQuery("list_analyses", start, err)
			return nil, err
		}
	}

	recordQuery("list_analyses", start, nil)
	return analyses, nil
}

// GetAnalysis returns one analysis with feedback, or ErrNotFound.
func (d *Database) GetAnalysis(ctx context.Context, id int64) (Analysis, error) {
	start := time.Now()

	opCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := d.db.QueryRowContext(opCtx, `
		SELECT id, exercise_id, muscle_group, overall_score, video_path, skeleton_video_path, created_at
		FROM analyses
		WHERE id = ?`, id)

	a, err := scanAnalysis(row)
	if errors.Is(err, sql.ErrNoRows) {
		recordQuery("get_analysis", start, nil)
		return Analysis{}, ErrNotFound
	}
	if err != nil {
		recordQuery("get_analysis", start, err)
		return Analysis{}, err
	}

	if err := d.attachFeedback(opCtx, &a); err != nil {
		recordQuery("get_analysis", start, err)
		return Analysis{}, err
	}

	recordQuery("get_analysis", start, nil)
	return a, nil
}

// GetSkeletonVideoPath returns the stored skeleton video location for an
// analysis, or ErrNotFound if the analysis does not exist. An analysis that
// exists but has no skeleton video yields an empty path.
func (d *Database) GetSkeletonVideoPath(ctx context.Context, id int64) (string, error) {
	start := time.Now()

	opCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var path sql.NullString
	err := d.db.QueryRowContext(opCtx,
		`SELECT skeleton_video_path FROM analyses WHERE id = ?`, id).Scan(&path)
	if errors.Is(err, sql.ErrNoRows) {
		recordQuery("get_skeleton_video_path", start, nil)
		return "", ErrNotFound
	}
	if err != nil {
		recordQuery("get_skeleton_video_path", start, err)
		return "", fmt.Errorf("failed to query skeleton video path: %w", err)
	}

	recordQuery("get_skeleton_video_path", start, nil)
	return path.String, nil
}

// scanner matches *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAnalysis(s scanner) (Analysis, error) {
	var (
		a         Analysis
		video     sql.NullString
		skeleton  sql.NullString
		createdAt int64
	)
	err := s.Scan(&a.ID, &a.ExerciseID, &a.MuscleGroup, (*string)(&a.OverallScore), &video, &skeleton, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Analysis{}, err
	}
	if err != nil {
		return Analysis{}, fmt.Errorf("failed to scan analysis: %w", err)
	}
	a.VideoPath = video.String
	a.SkeletonVideoPath = skeleton.String
	a.CreatedAt = time.Unix(createdAt, 0)
	return a, nil
}

func (d *Database) attachFeedback(ctx context.Context, a *Analysis) error {
	rows, err := d.db.QueryContext(ctx, `
		SELECT id, aspect, status, message
		FROM feedback_items
		WHERE analysis_id = ?
		ORDER BY id`, a.ID)
	if err != nil {
		return fmt.Errorf("failed to query feedback items: %w", err)
	}
	defer rows.Close()

	a.Feedback = []FeedbackItem{}
	for rows.Next() {
		var item FeedbackItem
		if err := rows.Scan(&item.ID, &item.Aspect, (*string)(&item.Status), &item.Message); err != nil {
			return fmt.Errorf("failed to scan feedback item: %w", err)
		}
		a.Feedback = append(a.Feedback, item)
	}
	return rows.Err()
}
