package models

import (
	"time"

	"github.com/google/uuid"
)

// Person is the owner entity attachments are filed under. The full person
// graph (connections, civil-registry data) lives in its own subsystem; the
// file pipeline only needs identity and existence.
type Person struct {
	PersonID  uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Person model.
func (p Person) TableName() string {
	return "persons"
}
