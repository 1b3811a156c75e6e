package models

// StatsSnapshot is a single reading of the tracked player's stats
type StatsSnapshot struct {
	Rating float64
	Kills  int
	Deaths int

	// KD is derived from Kills and Deaths, see DeriveKD
	KD float64
}

// NewStatsSnapshot builds a snapshot from a fireteam record
func NewStatsSnapshot(record *PlayerRecord) StatsSnapshot {
	return StatsSnapshot{
		Rating: record.Elo,
		Kills:  record.Kills,
		Deaths: record.Deaths,
		KD:     DeriveKD(record.Kills, record.Deaths),
	}
}

// DeriveKD returns kills/deaths. A zero on either side yields 0, so a
// player without data and a player with a true 0.0 ratio look the same.
func DeriveKD(kills, deaths int) float64 {
	if kills == 0 || deaths == 0 {
		return 0
	}
	return float64(kills) / float64(deaths)
}
