package domain

import "time"

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleTecnico UserRole = "tecnico"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	Nombre       string    `json:"nombre"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
