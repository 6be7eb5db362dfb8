package streaming

import (
	"fmt"
	"net/http"
	"strconv"
)

// StreamPlan is the resolved byte interval for one response. Start and
// End are inclusive, and once built the plan satisfies
// 0 <= Start <= End <= Size-1 (except for an empty resource, where
// Length() is 0). Partial selects status 206 over 200.
type StreamPlan struct {
	Start   int64
	End     int64
	Size    int64
	Partial bool
}

// Plan resolves an optional range request against the resource size.
//
// Requests that cannot be satisfied — a start at or past the end of the
// resource, or any range against an empty resource — degrade silently to
// a full-content 200 rather than a 416, matching the fail-open handling
// of malformed headers. End offsets past the resource are clipped.
func Plan(size int64, req ByteRangeRequest, hasRange bool) StreamPlan {
	full := StreamPlan{Start: 0, End: size - 1, Size: size, Partial: false}

	if !hasRange || size == 0 {
		return full
	}

	if req.SuffixLen > 0 {
		start := size - req.SuffixLen
		if start < 0 {
			start = 0
		}
		return StreamPlan{Start: start, End: size - 1, Size: size, Partial: true}
	}

	if req.Start >= size {
		return full
	}

	end := req.End
	if end < 0 || end > size-1 {
		end = size - 1
	}
	return StreamPlan{Start: req.Start, End: end, Size: size, Partial: true}
}

// Length returns the number of bytes the plan will send.
func (p StreamPlan) Length() int64 {
	return p.End - p.Start + 1
}

// Status returns the HTTP status the plan calls for.
func (p StreamPlan) Status() int {
	if p.Partial {
		return http.StatusPartialContent
	}
	return http.StatusOK
}

// ContentRange returns the Content-Range header value for a partial plan.
func (p StreamPlan) ContentRange() string {
	return fmt.Sprintf("bytes %d-%d/%d", p.Start, p.End, p.Size)
}

// ApplyHeaders sets the range-related response headers. The caller is
// responsible for Content-Type and for writing the status afterwards;
// no header can change once the status line is out.
func (p StreamPlan) ApplyHeaders(h http.Header) {
	h.Set("Accept-Ranges", "bytes")
	h.Set("Content-Length", strconv.FormatInt(p.Length(), 10))
	if p.Partial {
		h.Set("Content-Range", p.ContentRange())
	}
}
