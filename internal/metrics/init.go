package metrics

// InitializeMetrics pre-populates expected label combinations so that every
// metric is exported from the first Prometheus scrape.
// Call this once at startup after metric registration.
func InitializeMetrics() {
	for _, kind := range []string{"full", "partial"} {
		for _, status := range []string{"completed", "disconnect", "error"} {
			VideoStreamsTotal.WithLabelValues(kind, status)
		}
	}

	for _, op := range []string{"initialize_schema", "create_analysis", "list_analyses",
		"get_analysis", "get_skeleton_video_path"} {
		DBQueryTotal.WithLabelValues(op, "success")
		DBQueryTotal.WithLabelValues(op, "error")
		DBQueryDuration.WithLabelValues(op)
	}

	MLRequestsTotal.WithLabelValues("success")
	MLRequestsTotal.WithLabelValues("error")
}
