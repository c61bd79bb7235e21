package health

// Service encapsulates health-related checks.
type Service struct {
	modelsLoaded bool
	catalogSize  int
	dbConnected  bool
}

// NewService constructs a new health service.
func NewService(modelsLoaded bool, catalogSize int, dbConnected bool) *Service {
	return &Service{
		modelsLoaded: modelsLoaded,
		catalogSize:  catalogSize,
		dbConnected:  dbConnected,
	}
}

// Status returns the health payload.
func (s *Service) Status() map[string]any {
	status := "healthy"
	if !s.modelsLoaded || s.catalogSize == 0 {
		status = "degraded"
	}
	return map[string]any{
		"status":             status,
		"models_loaded":      s.modelsLoaded,
		"materials_loaded":   s.catalogSize,
		"database_connected": s.dbConnected,
	}
}
