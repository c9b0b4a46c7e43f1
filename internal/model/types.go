// Package model defines shared data structures.
package model

import "time"

// Config defines game settings.
type Config struct {
	Sound     bool
	History   bool
	WordsFile string
}

// HistoryConfig defines filters for listing past games.
type HistoryConfig struct {
	Since *time.Time
	Last  int
}

// GameRecord captures a finished game.
type GameRecord struct {
	StartedAt  time.Time
	EndedAt    time.Time
	Score      int
	Correct    int
	Incorrect  int
	DurationMs int64
}

// GameAggregate is a stored game as read back for reporting.
type GameAggregate struct {
	GameID     int64
	EndedAt    time.Time
	Score      int
	Correct    int
	Incorrect  int
	DurationMs int64
}
