package dto

// DashboardResumen respuesta de GET /api/dashboard: tres totales independientes,
// recalculados en cada petición (sin caché).
type DashboardResumen struct {
	TotalClientes         int `json:"totalClientes"`
	TotalVehiculos        int `json:"totalVehiculos"`
	ReparacionesEnProceso int `json:"reparacionesEnProceso"`
}
