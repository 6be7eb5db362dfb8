package streaming

import (
	"strconv"
	"strings"
)

// ByteRangeRequest is the parsed form of one Range header specifier.
// Exactly one of the three shapes is populated:
//
//	start-end  → Start and End set
//	start-     → Start set, End == -1
//	-N         → SuffixLen set
type ByteRangeRequest struct {
	Start     int64
	End       int64 // -1 for an open-ended request
	SuffixLen int64 // >0 requests the last SuffixLen bytes
}

// ParseRange parses a Range request header value into zero or one
// ByteRangeRequest. A missing, malformed, or non-bytes header yields
// ok=false, which callers treat as "no range requested" — never as a
// client error, so a bad header degrades to a full-content response.
//
// The header may carry a comma-separated list of specifiers; only the
// first is honored and the rest are silently dropped. Multi-range
// (multipart/byteranges) responses are deliberately not supported.
func ParseRange(header string) (ByteRangeRequest, bool) {
	header = strings.TrimSpace(header)
	if len(header) < len("bytes=") || !strings.EqualFold(header[:len("bytes=")], "bytes=") {
		return ByteRangeRequest{}, false
	}

	spec := header[len("bytes="):]
	// Only the first specifier of a list is honored.
	if i := strings.IndexByte(spec, ','); i >= 0 {
		spec = spec[:i]
	}
	spec = strings.TrimSpace(spec)

	dash := strings.IndexByte(spec, '-')
	if dash < 0 {
		return ByteRangeRequest{}, false
	}

	first, last := spec[:dash], spec[dash+1:]

	// -N: suffix form
	if first == "" {
		n, err := strconv.ParseInt(last, 10, 64)
		if err != nil || n <= 0 {
			return ByteRangeRequest{}, false
		}
		return ByteRangeRequest{End: -1, SuffixLen: n}, true
	}

	start, err := strconv.ParseInt(first, 10, 64)
	if err != nil || start < 0 {
		return ByteRangeRequest{}, false
	}

	// start-: open-ended form
	if last == "" {
		return ByteRangeRequest{Start: start, End: -1}, true
	}

	end, err := strconv.ParseInt(last, 10, 64)
	if err != nil || end < start {
		return ByteRangeRequest{}, false
	}
	return ByteRangeRequest{Start: start, End: end}, true
}
