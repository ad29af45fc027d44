package root

import (
	"context"

	"pathkeeper/internal/engine"
	"pathkeeper/internal/storage"
)

func openService(ctx context.Context) (*engine.Service, func(), error) {
	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return engine.NewService(storage.New(db)), cleanup, nil
}
