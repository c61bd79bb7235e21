package catalog

import (
	"context"
	"sort"
	"strings"
)

// MemoryRepo serves the embedded seed catalog. Used in dev when no database
// is configured and as a fixture source in tests.
type MemoryRepo struct {
	materials  []Material
	categories map[string]Category
}

// NewMemoryRepo constructs a MemoryRepo from the embedded seed data with the
// engineered indices computed at load.
func NewMemoryRepo() *MemoryRepo {
	return NewMemoryRepoWith(seedMaterials(), seedCategories())
}

// NewMemoryRepoWith constructs a MemoryRepo over caller-supplied reference
// data. Engineered indices are recomputed over the given material set.
func NewMemoryRepoWith(materials []Material, categories []Category) *MemoryRepo {
	engineered := Engineer(materials)
	sort.Slice(engineered, func(i, j int) bool { return engineered[i].ID < engineered[j].ID })

	byName := make(map[string]Category, len(categories))
	for _, c := range categories {
		byName[strings.ToLower(c.Name)] = c
	}
	return &MemoryRepo{materials: engineered, categories: byName}
}

func (r *MemoryRepo) ListMaterials(ctx context.Context) ([]Material, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Material, len(r.materials))
	copy(out, r.materials)
	return out, nil
}

func (r *MemoryRepo) GetCategory(ctx context.Context, name string) (Category, error) {
	if err := ctx.Err(); err != nil {
		return Category{}, err
	}
	c, ok := r.categories[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Category{}, ErrCategoryNotFound
	}
	return c, nil
}

func (r *MemoryRepo) ListCategoryNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c.Name)
	}
	sort.Strings(out)
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
