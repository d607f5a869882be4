package types

// MatchResult counts the numbers a prediction shares with a draw, split by
// main/euro plus their sum. Derived value, never persisted on its own.
type MatchResult struct {
	Main  int `bson:"main" json:"main"`
	Euro  int `bson:"euro" json:"euro"`
	Total int `bson:"total" json:"total"`
}

// MatchedPrediction pairs a stored prediction id with its match counts
// against the latest draw.
type MatchedPrediction struct {
	ID      string      `json:"id"`
	Matches MatchResult `json:"matches"`
}

// LatestInsights is the response of the latest-draw insights computation.
// When HasLatest is false the other fields are meaningless.
type LatestInsights struct {
	HasLatest          bool                `json:"has_latest"`
	LatestDate         string              `json:"latest_date"`
	MatchedPredictions []MatchedPrediction `json:"matched_predictions"`
}
