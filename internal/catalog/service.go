package catalog

import "context"

// Service exposes catalog read operations to the API layer.
type Service struct {
	Catalog *Snapshot
	Repo    Repo
}

// ListCategories returns all known category names.
func (s *Service) ListCategories(ctx context.Context) ([]string, error) {
	return s.Repo.ListCategoryNames(ctx)
}

// ListMaterials returns all material names in catalog order.
func (s *Service) ListMaterials() []string {
	return s.Catalog.Names()
}

// MaterialDetails resolves a material by name and returns its full record.
func (s *Service) MaterialDetails(name string) (MaterialDetails, error) {
	m, err := s.Catalog.MaterialByName(name)
	if err != nil {
		return MaterialDetails{}, err
	}
	return toDetails(m), nil
}
