package dto

import "github.com/emre/grievancehub/internal/app/models"

// RegisterRequest is the staff registration payload
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"staff@school.edu.tr"`
	Password string `json:"password" binding:"required,min=8" example:"s3cure-pass"`
	FullName string `json:"fullName" binding:"required" example:"Mehmet Demir"`
}

// LoginRequest is the staff login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"staff@school.edu.tr"`
	Password string `json:"password" binding:"required" example:"s3cure-pass"`
}

// TokenResponse carries an issued access token
type TokenResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType" example:"Bearer"`
	ExpiresIn   int          `json:"expiresIn" example:"43200"`
	User        *models.User `json:"user"`
}
