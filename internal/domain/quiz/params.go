package quiz

import "github.com/uvquiz/backend/internal/domain/subject"

// Mode is the kind of quiz attempt. Only TEST exists today.
type Mode string

const ModeTest Mode = "TEST"

// Database is the track a test was built for.
type Database string

const (
	DatabaseHelicopter Database = "HELICOPTERE"
	DatabaseAirplane   Database = "AVION"
)

// HelicopterKey is the filter key of the helicopter database.
const HelicopterKey = "H"

// DatabaseFromKey maps a filter key to its database. Any key other than
// HelicopterKey selects the airplane track.
func DatabaseFromKey(key string) Database {
	if key == HelicopterKey {
		return DatabaseHelicopter
	}
	return DatabaseAirplane
}

// Params are the creation parameters of a test, kept on the test so it
// can be retaken.
type Params struct {
	Mode         Mode        `json:"mode"`
	DatabaseKey  string      `json:"database_key"`
	UV           *subject.UV `json:"uv,omitempty"` // nil when the UV is unknown
	Subtopics    []string    `json:"subtopics,omitempty"`
	DesiredCount int         `json:"desired_count"`
}
