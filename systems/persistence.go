package systems

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/automoto/boomstick/components"
	"github.com/quasilyte/gdata"
)

const statsKey = "stats"

// SavedStats is the lifetime record stored on disk
type SavedStats struct {
	TotalDeaths       int   `json:"totalDeaths"`
	LongestSurvivalMS int64 `json:"longestSurvivalMs"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the gdata store for saved stats
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "boomstick",
	})
	if err != nil {
		return fmt.Errorf("open gdata: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadStats loads the lifetime record. A missing store or item yields zero
// stats.
func LoadStats() (SavedStats, error) {
	if gdataManager == nil {
		return SavedStats{}, nil
	}

	data, err := gdataManager.LoadItem(statsKey)
	if err != nil {
		return SavedStats{}, fmt.Errorf("load stats: %w", err)
	}
	if data == nil {
		return SavedStats{}, nil
	}

	var stats SavedStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return SavedStats{}, fmt.Errorf("parse stats: %w", err)
	}
	return stats, nil
}

// SaveStats writes the lifetime record
func SaveStats(s SavedStats) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	if err := gdataManager.SaveItem(statsKey, data); err != nil {
		return fmt.Errorf("save stats: %w", err)
	}
	return nil
}

// MergeStats folds a finished session into the lifetime record.
func MergeStats(saved SavedStats, session components.StatsData) (SavedStats, components.SessionSummary) {
	survived := time.Duration(session.SurvivedFor * float64(time.Second))

	merged := saved
	merged.TotalDeaths += session.Deaths

	newBest := session.Deaths > 0 && survived.Milliseconds() > saved.LongestSurvivalMS
	if newBest {
		merged.LongestSurvivalMS = survived.Milliseconds()
	}

	return merged, components.SessionSummary{
		Deaths:       session.Deaths,
		SurvivedFor:  session.SurvivedFor,
		TotalDeaths:  merged.TotalDeaths,
		BestSurvival: float64(merged.LongestSurvivalMS) / 1000,
		NewBest:      newBest,
	}
}

// RecordSession merges the session's stats into the saved record and
// persists it. Storage problems are logged and never block the end screen.
func RecordSession(session components.StatsData) components.SessionSummary {
	saved, err := LoadStats()
	if err != nil {
		log.Printf("Warning: Could not load stats: %v", err)
	}

	merged, summary := MergeStats(saved, session)
	if err := SaveStats(merged); err != nil {
		log.Printf("Warning: Could not save stats: %v", err)
	}
	return summary
}
