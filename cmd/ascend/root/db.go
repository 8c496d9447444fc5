package root

import (
	"context"

	"github.com/Elias-Missa/ascendency-rpg/internal/config"
	"github.com/Elias-Missa/ascendency-rpg/internal/engine"
	"github.com/Elias-Missa/ascendency-rpg/internal/storage"
)

func openService(ctx context.Context) (*engine.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	path := cfg.DBPath
	if flagDB != "" {
		path = flagDB
	}
	profile := cfg.ProfileID
	if flagProfile != "" {
		profile = flagProfile
	}

	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return engine.NewService(db, profile), cleanup, nil
}

// parseDateFlag resolves a --date value; empty means today.
func parseDateFlag(s string) (engine.Date, error) {
	if s == "" {
		return engine.Today(), nil
	}
	return engine.ParseDate(s)
}
