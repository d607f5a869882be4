package types

import "time"

// Timestamps is embedded in every stored document. The store gateway stamps
// both fields at insert time and refreshes UpdatedAt on replace.
type Timestamps struct {
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Stamp sets CreatedAt on first write and always refreshes UpdatedAt.
func (t *Timestamps) Stamp(now time.Time) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
}

// Stamped is satisfied by any document carrying Timestamps.
type Stamped interface {
	Stamp(now time.Time)
}
