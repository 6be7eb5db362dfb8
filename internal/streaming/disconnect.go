package streaming

import (
	"context"
	"errors"
	"net"
	"net/http"
	"syscall"
)

// IsBenignDisconnect reports whether a streaming write failure was caused
// by the remote peer going away rather than by a real I/O fault.
//
// Browsers issue many short-lived range requests while a user scrubs a
// video timeline and abandon most of them mid-stream, so broken pipes
// and connection resets are routine here. Classification is done with
// errors.Is against structured error values — never by matching message
// text, which differs across platforms.
//
// Disk read errors, permission failures, and anything else unrecognized
// classify as real and must be propagated by the caller.
func IsBenignDisconnect(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	// The server tears the connection down itself once the request
	// context is canceled by a client disconnect.
	if errors.Is(err, context.Canceled) || errors.Is(err, net.ErrClosed) {
		return true
	}

	// net/http aborts a handler with this value when the connection dies.
	if errors.Is(err, http.ErrAbortHandler) {
		return true
	}

	return errors.Is(err, ErrClientGone)
}
