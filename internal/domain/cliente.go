package domain

import "time"

// Cliente is one entry in the workshop's client directory.
type Cliente struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	Empresa   string    `json:"empresa,omitempty"`
	Telefono  string    `json:"telefono,omitempty"`
	Email     string    `json:"email,omitempty"`
	Ciudad    string    `json:"ciudad,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
