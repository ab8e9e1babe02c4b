package clientes

type CreateClienteRequest struct {
	Nombre   string `json:"nombre" binding:"required"`
	Empresa  string `json:"empresa"`
	Telefono string `json:"telefono"`
	Email    string `json:"email" binding:"omitempty,email"`
	Ciudad   string `json:"ciudad"`
}
