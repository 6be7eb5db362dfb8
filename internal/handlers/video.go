package handlers

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"liftlens/internal/database"
	"liftlens/internal/logging"
	"liftlens/internal/metrics"
	"liftlens/internal/streaming"
	"liftlens/internal/videotypes"

	"github.com/gorilla/mux"
)

// StreamSkeletonVideo serves the skeleton-annotated video for an analysis
// with HTTP Range support. Browsers require partial content here: an HTML5
// <video> element issues a stream of short-lived range requests while the
// user seeks, so both 200 and 206 paths matter, and a client hanging up
// mid-body is normal rather than an error.
func (h *Handlers) StreamSkeletonVideo(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	path, err := h.db.GetSkeletonVideoPath(r.Context(), id)
	if errors.Is(err, database.ErrNotFound) || (err == nil && path == "") {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		logging.Error("Failed to resolve skeleton video for analysis %d: %v", id, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		logging.Warn("Skeleton video missing on disk for analysis %d: %s", id, path)
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		logging.Error("Failed to stat skeleton video %s: %v", path, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		logging.Error("Failed to open skeleton video %s: %v", path, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	// Single release point for every exit path below.
	defer func() {
		if err := f.Close(); err != nil {
			logging.Warn("failed to close skeleton video %s: %v", path, err)
		}
	}()

	rangeReq, hasRange := streaming.ParseRange(r.Header.Get("Range"))
	plan := streaming.Plan(info.Size(), rangeReq, hasRange)

	kind := "full"
	if plan.Partial {
		kind = "partial"
	}

	// Headers are committed here; nothing about the response can change
	// after this point.
	w.Header().Set("Content-Type", videotypes.MimeType(path))
	plan.ApplyHeaders(w.Header())
	w.WriteHeader(plan.Status())

	tw := streaming.NewTimeoutWriter(r.Context(), w, h.streamConfig)
	defer func() {
		if err := tw.Close(); err != nil {
			logging.Warn("failed to close timeout writer: %v", err)
		}
	}()

	written, err := streaming.Stream(tw, f, plan)

	metrics.VideoStreamBytesTotal.Add(float64(written))
	metrics.VideoStreamDuration.Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		metrics.VideoStreamsTotal.WithLabelValues(kind, "completed").Inc()
		logging.Debug("Streamed %d/%d bytes of analysis %d (%s)",
			written, plan.Length(), id, kind)

	case streaming.IsBenignDisconnect(err):
		// Expected during seeking: the browser abandoned this range
		// request. Not an error, not worth log noise above debug.
		metrics.VideoStreamsTotal.WithLabelValues(kind, "disconnect").Inc()
		metrics.VideoStreamDisconnectsTotal.Inc()
		logging.Debug("Client disconnected after %d/%d bytes of analysis %d",
			written, plan.Length(), id)

	default:
		// Headers are already out, so the response cannot be corrected.
		// Stop writing; the deferred close tears the handle down.
		metrics.VideoStreamsTotal.WithLabelValues(kind, "error").Inc()
		logging.Error("Streaming analysis %d failed after %d bytes: %v", id, written, err)
	}
}
