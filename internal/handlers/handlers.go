package handlers

import (
	"context"

	"liftlens/internal/database"
	"liftlens/internal/mlclient"
	"liftlens/internal/storage"
	"liftlens/internal/streaming"
)

// Analyzer is the slice of the ML client the handlers need. Tests swap
// in a stub; production wiring passes *mlclient.Client.
type Analyzer interface {
	Analyze(ctx context.Context, videoPath, exerciseID string) (mlclient.AnalysisResult, error)
}

type Handlers struct {
	db           *database.Database
	ml           Analyzer
	store        *storage.Store
	streamConfig streaming.TimeoutWriterConfig
}

func New(db *database.Database, ml Analyzer, store *storage.Store) *Handlers {
	return &Handlers{
		db:           db,
		ml:           ml,
		store:        store,
		streamConfig: streaming.DefaultTimeoutWriterConfig(),
	}
}
