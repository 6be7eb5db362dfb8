package mlclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"liftlens/internal/logging"
	"liftlens/internal/metrics"
)

// AnalysisResult is the analysis service's response for one video.
type AnalysisResult struct {
	ExerciseID   string         `json:"exercise_id"`
	OverallScore string         `json:"overall_score"`
	Feedback     []FeedbackItem `json:"feedback"`
	// SkeletonVideoPath is where the service wrote the annotated video.
	SkeletonVideoPath string `json:"skeleton_video_path"`
}

// FeedbackItem is one aspect-level observation from the analysis service.
type FeedbackItem struct {
	Aspect  string `json:"aspect"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Client calls the ML analysis service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the analysis service at baseURL.
// timeout bounds the whole analyze call, upload included; video analysis
// is slow, so this should be generous (minutes, not seconds).
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// Analyze uploads the stored video to the analysis service and returns
// the structured result.
func (c *Client) Analyze(ctx context.Context, videoPath, exerciseID string) (AnalysisResult, error) {
	start := time.Now()

	result, err := c.analyze(ctx, videoPath, exerciseID)

	metrics.MLRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MLRequestsTotal.WithLabelValues("error").Inc()
		return AnalysisResult{}, err
	}
	metrics.MLRequestsTotal.WithLabelValues("success").Inc()

	logging.Debug("Analysis completed for %s (%s) in %v: score=%s, %d feedback items",
		filepath.Base(videoPath), exerciseID, time.Since(start), result.OverallScore, len(result.Feedback))
	return result, nil
}

func (c *Client) analyze(ctx context.Context, videoPath, exerciseID string) (AnalysisResult, error) {
	file, err := os.Open(videoPath)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("failed to open video for analysis: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logging.Warn("failed to close video file %s: %v", videoPath, err)
		}
	}()

	// Stream the multipart body through a pipe so the video is never
	// buffered in memory.
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		err := writeMultipart(mw, file, filepath.Base(videoPath), exerciseID)
		if closeErr := mw.Close(); err == nil {
			err = closeErr
		}
		pw.CloseWithError(err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", pr)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("failed to build analyze request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("analysis service request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.Warn("failed to close analysis response body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return AnalysisResult{}, fmt.Errorf("analysis service returned %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result AnalysisResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return AnalysisResult{}, fmt.Errorf("failed to decode analysis response: %w", err)
	}
	return result, nil
}

func writeMultipart(mw *multipart.Writer, file io.Reader, filename, exerciseID string) error {
	if err := mw.WriteField("exercise_id", exerciseID); err != nil {
		return fmt.Errorf("failed to write exercise_id field: %w", err)
	}

	part, err := mw.CreateFormFile("video", filename)
	if err != nil {
		return fmt.Errorf("failed to create video form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to copy video into request: %w", err)
	}
	return nil
}
