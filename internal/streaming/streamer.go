package streaming

import (
	"fmt"
	"io"
)

// ChunkSize is how much of the resource is held in memory at a time
// while streaming. Large ranges are pushed in chunks of this size so a
// multi-hundred-megabyte video never gets materialized in one allocation.
const ChunkSize = 64 * 1024

// Stream copies plan.Length() bytes from src, starting at plan.Start,
// into dst in bounded chunks.
//
// A short resource ends the copy early without error: if src signals EOF
// before the planned length is reached, whatever was sent stands
// (under-delivery is tolerated, the plan was computed from a possibly
// stale size). A write failure aborts immediately and is returned for
// the caller to classify; read failures are wrapped and returned as-is.
//
// Stream never closes src. The caller owns the handle and must release
// it on every exit path, typically with a single defer.
func Stream(dst io.Writer, src io.ReadSeeker, plan StreamPlan) (int64, error) {
	if plan.Length() <= 0 {
		return 0, nil
	}

	if _, err := src.Seek(plan.Start, io.SeekStart); err != nil {
		return 0, fmt.Errorf("failed to seek to byte %d: %w", plan.Start, err)
	}

	buf := make([]byte, ChunkSize)
	var written int64
	remaining := plan.Length()

	for remaining > 0 {
		n := int64(len(buf))
		if remaining < n {
			n = remaining
		}

		read, readErr := src.Read(buf[:n])
		if read > 0 {
			wrote, writeErr := dst.Write(buf[:read])
			written += int64(wrote)
			if writeErr != nil {
				return written, writeErr
			}
			remaining -= int64(wrote)
		}

		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return written, fmt.Errorf("failed to read resource: %w", readErr)
		}
	}

	return written, nil
}
