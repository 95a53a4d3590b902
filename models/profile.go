package models

import (
	"time"
)

// Profile holds a client's chip balance. The client ID is the random
// per-browser identifier and acts as the capability token for every
// operation; there is no other authentication. Chips are only ever changed
// through the repository's atomic increment.
type Profile struct {
	ClientID  string    `db:"client_id"`
	Chips     int64     `db:"chips"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
