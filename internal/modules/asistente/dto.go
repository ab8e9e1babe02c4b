package asistente

type Mensaje struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type ChatRequest struct {
	Messages []Mensaje `json:"messages" binding:"required,min=1,dive"`
}

type GenerarTareaRequest struct {
	Descripcion string `json:"descripcion" binding:"required"`
}

// Tarea is the structured task the generator returns for the planner view.
type Tarea struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Priority      string   `json:"priority"`
	EstimatedTime string   `json:"estimated_time"`
	Steps         []string `json:"steps"`
}
