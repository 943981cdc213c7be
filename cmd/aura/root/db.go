package root

import (
	"context"
	"database/sql"

	"github.com/soufianesaid-dot/Gymtrackerr/internal/engine"
	"github.com/soufianesaid-dot/Gymtrackerr/internal/storage"
	"github.com/soufianesaid-dot/Gymtrackerr/internal/tip"
)

func openDB(ctx context.Context, g *globals) (*sql.DB, func(), error) {
	path := g.cfg.Store.Path
	if path == "" {
		var err error
		path, err = storage.ResolveDBPath()
		if err != nil {
			return nil, nil, err
		}
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func openService(ctx context.Context, g *globals) (*engine.Service, func(), error) {
	db, cleanup, err := openDB(ctx, g)
	if err != nil {
		return nil, nil, err
	}
	tips := tip.New(ctx, tip.Options{
		Enabled: g.cfg.Tip.Enabled,
		APIKey:  g.cfg.Tip.APIKey,
		Model:   g.cfg.Tip.Model,
		Timeout: g.cfg.TipTimeout(),
	}, g.logger)

	svc, err := engine.NewService(ctx, storage.NewSQLiteKV(db),
		engine.WithTipProvider(tips),
		engine.WithLogger(g.logger),
	)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}
