package catalog

import (
	"context"
	"fmt"
	"strings"
)

// Snapshot is the material catalog loaded once at process start. It is never
// mutated afterwards, so it may be shared across requests without locking.
type Snapshot struct {
	materials []Material
	byName    map[string]int
}

// LoadSnapshot reads the full material catalog from the repo and freezes it.
// The engineered indices are recomputed from the raw attributes so that
// stored values can never drift from the formulas the models were trained on.
func LoadSnapshot(ctx context.Context, repo Repo) (*Snapshot, error) {
	materials, err := repo.ListMaterials(ctx)
	if err != nil {
		return nil, fmt.Errorf("load material catalog: %w", err)
	}
	if len(materials) == 0 {
		return nil, fmt.Errorf("material catalog is empty")
	}
	materials = Engineer(materials)

	byName := make(map[string]int, len(materials))
	for i, m := range materials {
		byName[strings.ToLower(m.Name)] = i
	}
	return &Snapshot{materials: materials, byName: byName}, nil
}

// Materials returns the catalog in stable (material id) order. Callers must
// treat the returned slice as read-only.
func (s *Snapshot) Materials() []Material {
	return s.materials
}

// MaterialByName looks a material up by its name, case-insensitively.
func (s *Snapshot) MaterialByName(name string) (Material, error) {
	i, ok := s.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Material{}, ErrMaterialNotFound
	}
	return s.materials[i], nil
}

// Names returns material names in catalog order.
func (s *Snapshot) Names() []string {
	out := make([]string, len(s.materials))
	for i, m := range s.materials {
		out[i] = m.Name
	}
	return out
}

// Len reports the catalog size.
func (s *Snapshot) Len() int {
	return len(s.materials)
}
