package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// timestampLayout is the zone-less second-precision format the catalog
// service uses for every datetime field.
const timestampLayout = "2006-01-02T15:04:05"

// Timestamp wraps time.Time with the service's JSON encoding. Values are
// naive: no zone is transmitted and none is assumed.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.Truncate(time.Second)}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(timestampLayout))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	parsed, err := time.Parse(timestampLayout, s)
	if err != nil {
		return fmt.Errorf("timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}
