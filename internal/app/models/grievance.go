package models

import (
	"time"

	"github.com/google/uuid"
)

// GrievanceType is the fixed set of grievance categories.
type GrievanceType string

// Grievance type constants
const (
	GrievanceTypeUniform       GrievanceType = "Uniform"
	GrievanceTypeShoes         GrievanceType = "Shoes"
	GrievanceTypeHairCut       GrievanceType = "Hair Cut"
	GrievanceTypeLateArrival   GrievanceType = "Late Arrival"
	GrievanceTypeIDCardMissing GrievanceType = "ID Card Missing"
	GrievanceTypeOther         GrievanceType = "Other"
)

// GrievanceTypes lists every valid type, in display order.
var GrievanceTypes = []GrievanceType{
	GrievanceTypeUniform,
	GrievanceTypeShoes,
	GrievanceTypeHairCut,
	GrievanceTypeLateArrival,
	GrievanceTypeIDCardMissing,
	GrievanceTypeOther,
}

// IsValid reports whether t is one of the known grievance types.
// The enumeration is checked here, at the application boundary, because the
// database column is plain text.
func (t GrievanceType) IsValid() bool {
	for _, known := range GrievanceTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Grievance defines the grievance model based on the 'grievances' table.
// Rows are insert-only: there is no update or delete path anywhere in the API.
type Grievance struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	StudentID   uuid.UUID     `json:"studentId" db:"student_id"`
	Type        GrievanceType `json:"type" db:"type" example:"Uniform"`
	Description *string       `json:"description,omitempty" db:"description"`
	Date        time.Time     `json:"date" db:"date"` // Occurrence date (date precision)
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
	CreatedBy   uuid.UUID     `json:"createdBy" db:"created_by"` // Recording staff member; enforced by row policy

	// Student is the joined projection. It stays nil when the join produced
	// no row, and every consumer must handle that case explicitly.
	Student *Student `json:"student,omitempty"`
}

// StudentName returns the joined student's display name, or "Unknown" when
// the projection is absent.
func (g *Grievance) StudentName() string {
	if g.Student == nil {
		return UnknownStudentName
	}
	return g.Student.Name
}

// UnknownStudentName is the display key used for grievances whose student
// join is missing. A malformed join must never crash a consumer.
const UnknownStudentName = "Unknown"
