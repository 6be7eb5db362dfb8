/*
Package streaming implements HTTP byte-range streaming of stored video
files.

# Overview

Serving a stored video to an HTML5 <video> element requires partial
content support: every browser issues Range requests while the user
scrubs the timeline, abandoning most of them mid-transfer. This package
splits that problem into small, separately testable pieces:

  - ParseRange turns a Range header into at most one ByteRangeRequest.
    Malformed headers are not errors; they downgrade to full content.
  - Plan resolves the requested interval against the resource size into
    a StreamPlan carrying the effective offsets, status, and headers.
  - Stream pushes the planned interval from an open file to the response
    in 64 KiB chunks, never holding the whole file in memory.
  - IsBenignDisconnect decides whether a mid-stream write failure was
    just the peer hanging up (normal during seeking) or a real fault.

# Typical flow

	req, ok := streaming.ParseRange(r.Header.Get("Range"))
	plan := streaming.Plan(size, req, ok)
	plan.ApplyHeaders(w.Header())
	w.WriteHeader(plan.Status())

	f, _ := os.Open(path)
	defer f.Close()

	if _, err := streaming.Stream(w, f, plan); err != nil {
		if !streaming.IsBenignDisconnect(err) {
			// real I/O fault; headers are committed, so just stop
		}
	}

# Timeout protection

TimeoutWriter wraps the response writer with per-write, idle, and total
duration bounds so a stalled client cannot pin a file handle and a
goroutine forever. The video handler layers it between the response and
the chunk loop.

# Error handling

Write failures surface unwrapped so the classifier can inspect their
structured cause (syscall.EPIPE, syscall.ECONNRESET, context.Canceled);
classification never looks at error message text. Read failures are
wrapped with context and always propagate.
*/
package streaming
