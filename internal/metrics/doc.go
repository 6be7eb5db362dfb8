/*
Package metrics defines the Prometheus metrics exported by the LiftLens
backend: HTTP request counts and latencies, database query timings, video
streaming throughput and disconnects, and analysis pipeline activity.

All metrics are registered with the default registry via promauto and
served by the metrics listener configured in main.
*/
package metrics
