/*
Package mlclient is the HTTP client for the external ML analysis service.

The service accepts a multipart form (exercise_id + video file) on
POST /analyze and returns the overall score, per-aspect feedback, and the
path of the skeleton-annotated video it rendered. The request body is
streamed through an io.Pipe so large uploads are never held in memory.
*/
package mlclient
