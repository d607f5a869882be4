package types

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the calendar date format used for Draw.Date.
const DateLayout = "2006-01-02"

// Draw is one historical EuroJackpot result: 5 main numbers (1..50) and
// 2 euro numbers (1..12) for a specific date.
type Draw struct {
	Date   string `bson:"date" json:"date"`
	Main   []int  `bson:"main" json:"main"`
	Euro   []int  `bson:"euro" json:"euro"`
	Source string `bson:"source,omitempty" json:"source,omitempty"`
}

// StoredDraw is a Draw as persisted in the "draw" collection.
type StoredDraw struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Draw       `bson:",inline"`
	Timestamps `bson:",inline"`
}
