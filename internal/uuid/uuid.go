package uuid

import (
	google_uuid "github.com/google/uuid"
)

// UUID wraps google/uuid so that it can be bound from URI and query
// parameters by gin.
type UUID struct {
	google_uuid.UUID
}

var Nil UUID

// UnmarshalParam implements the uuid.Parse method
// from https://pkg.go.dev/github.com/google/uuid#Parse
// for UUID
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, e := google_uuid.Parse(p)
	if e != nil {
		return e
	}

	*u = UUID{parsed}
	return nil
}
