package models

import (
	"time"

	"github.com/google/uuid"
)

// Record is an incident record ("antecedente") attachments may be linked to.
// Like Person, only identity and existence matter to the file pipeline.
type Record struct {
	RecordID  uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Record model.
func (r Record) TableName() string {
	return "records"
}
