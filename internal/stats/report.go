package stats

import (
	"context"

	"github.com/verte-zerg/wordrush/internal/model"
)

// GameLister lists stored games.
type GameLister interface {
	ListGames(ctx context.Context, cfg model.HistoryConfig) ([]model.GameAggregate, error)
}

// Report contains precomputed data for history rendering.
type Report struct {
	Games   []model.GameAggregate
	Summary Summary
}

// BuildReport loads and prepares data for history rendering.
func BuildReport(ctx context.Context, st GameLister, cfg model.HistoryConfig) (Report, error) {
	games, err := st.ListGames(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Games:   games,
		Summary: Summarize(games),
	}, nil
}
