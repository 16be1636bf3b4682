package models

// ScoreReport is the eco-credit score with its inputs and display tier.
type ScoreReport struct {
	Score     int            `json:"score"` // 0..1000
	Level     string         `json:"level"`
	Mood      string         `json:"mood"`
	Breakdown CategoryTotals `json:"breakdown"`
}

// RankEntry is one leaderboard row.
type RankEntry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Gamification groups level, badges and the community leaderboard.
type Gamification struct {
	Level       string      `json:"level"`
	Badges      []string    `json:"badges"`
	Leaderboard []RankEntry `json:"leaderboard"`
}
