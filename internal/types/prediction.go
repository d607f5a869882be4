package types

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultMethod is attached to predictions submitted without a method label.
const DefaultMethod = "consensus"

// Prediction is a user-submitted guess at future numbers. Method is a
// free-text label supplied by the caller; nothing is computed from it.
type Prediction struct {
	Main   []int  `bson:"main" json:"main"`
	Euro   []int  `bson:"euro" json:"euro"`
	Seed   string `bson:"seed,omitempty" json:"seed,omitempty"`
	Method string `bson:"method" json:"method"`
	Notes  string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Normalize applies field defaults prior to validation.
func (p *Prediction) Normalize() {
	if strings.TrimSpace(p.Method) == "" {
		p.Method = DefaultMethod
	}
}

// PredictionMatch holds the match snapshot computed once at creation time
// against whatever draw was latest at that moment. It is never recomputed.
type PredictionMatch struct {
	LatestMatch *MatchResult `bson:"latest_match" json:"latest_match"`
}

// StoredPrediction is a Prediction as persisted in the "prediction" collection.
type StoredPrediction struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Prediction `bson:",inline"`
	Matched    PredictionMatch `bson:"matched" json:"matched"`
	Timestamps `bson:",inline"`
}
