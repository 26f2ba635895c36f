package models

import (
	"time"

	"github.com/google/uuid"
)

// Student defines the student model based on the 'students' table.
// Students are provisioned out of band; this API never creates or updates them.
type Student struct {
	ID          uuid.UUID `json:"id" db:"id"`                                        // Internal primary key
	StudentCode string    `json:"studentCode" db:"student_id" example:"STU-2025-041"` // External code printed on the ID card / QR sticker
	Name        string    `json:"name" db:"name" example:"Alice Yilmaz"`
	Class       string    `json:"class" db:"class" example:"8"`
	Section     string    `json:"section" db:"section" example:"B"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
