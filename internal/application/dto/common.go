package dto

// ErrorResponse cuerpo de error HTTP: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse cuerpo informativo: {"message": "..."} (lo usa el middleware de auth).
type MessageResponse struct {
	Message string `json:"message"`
}

// MensajeResponse respuesta de operaciones de mutación sin cuerpo propio.
type MensajeResponse struct {
	Mensaje string `json:"mensaje"`
}

// CreatedResponse respuesta de creación: ID numérico generado por la base.
type CreatedResponse struct {
	ID      int64  `json:"id"`
	Mensaje string `json:"mensaje"`
}

// Paginacion metadatos comunes de los listados paginados.
type Paginacion struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
}

// NormalizarPagina aplica los valores por defecto del sistema original
// (page=1, limit=10) y devuelve el offset resultante.
func NormalizarPagina(page, limit int) (p, l, offset int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	return page, limit, (page - 1) * limit
}

// TotalPages calcula el número de páginas para un total y un límite dados.
func TotalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
