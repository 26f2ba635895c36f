package models

import (
	"time"

	"github.com/google/uuid"
)

// RoleType defines the staff role type
type RoleType string

const (
	RoleStaff RoleType = "STAFF"
	RoleAdmin RoleType = "ADMIN"
)

// User defines a staff account based on the 'users' table. Every grievance
// row's created_by points at one of these.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email" example:"staff@school.edu.tr"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"fullName" db:"full_name" example:"Mehmet Demir"`
	RoleType     RoleType  `json:"roleType" db:"role" example:"STAFF"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
