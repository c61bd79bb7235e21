package catalog

import "context"

// Repo provides the reference data: the material catalog and the product
// category table. Materials are read once at startup; categories are looked
// up per request.
type Repo interface {
	ListMaterials(ctx context.Context) ([]Material, error)
	GetCategory(ctx context.Context, name string) (Category, error)
	ListCategoryNames(ctx context.Context) ([]string, error)
}
