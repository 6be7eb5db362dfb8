/*
Package handlers implements the HTTP API of the LiftLens backend.

The analysis endpoints cover upload-and-analyze (POST /api/analyses),
listing and fetching stored analyses, and the exercise catalog. The
skeleton video endpoint (GET /api/analyses/{id}/skeleton-video) serves
the annotated video with full byte-range support via the streaming
package. Health, readiness, version, and Prometheus metrics handlers
round out the operational surface.
*/
package handlers
