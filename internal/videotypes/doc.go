// Package videotypes defines the video formats accepted for upload and the
// MIME types used when serving them.
//
// This package exists as a dependency-free foundation that can be imported by
// other packages without creating import cycles. It contains only constants
// and pure utility functions.
//
// # Upload Validation
//
// Use IsVideoFile to check an uploaded filename before storing it:
//
//	if !videotypes.IsVideoFile(header.Filename) {
//	    // Reject the upload
//	}
//
// # MIME Types
//
// Use MimeType to get the Content-Type for HTTP responses:
//
//	w.Header().Set("Content-Type", videotypes.MimeType(path))
package videotypes
