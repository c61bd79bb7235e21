package catalog

import (
	"context"
	"errors"
	"testing"
)

func TestLoadSnapshotFreezesCatalog(t *testing.T) {
	t.Parallel()

	snap, err := LoadSnapshot(context.Background(), NewMemoryRepo())
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if snap.Len() != len(seedMaterials()) {
		t.Fatalf("catalog size = %d, want %d", snap.Len(), len(seedMaterials()))
	}

	materials := snap.Materials()
	for i := 1; i < len(materials); i++ {
		if materials[i-1].ID >= materials[i].ID {
			t.Fatalf("materials not in id order at index %d", i)
		}
	}
	for _, m := range materials {
		if m.EcoScore == 0 && m.CO2ImpactIndex == 0 {
			t.Fatalf("material %d missing engineered indices", m.ID)
		}
	}
}

func TestMaterialByNameCaseInsensitive(t *testing.T) {
	t.Parallel()

	snap, err := LoadSnapshot(context.Background(), NewMemoryRepo())
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}

	for _, name := range []string{"Bubble Wrap", "bubble wrap", "  BUBBLE WRAP  "} {
		m, err := snap.MaterialByName(name)
		if err != nil {
			t.Fatalf("MaterialByName(%q): %v", name, err)
		}
		if m.ID != 3 {
			t.Fatalf("MaterialByName(%q) = material %d, want 3", name, m.ID)
		}
	}

	if _, err := snap.MaterialByName("Vibranium"); !errors.Is(err, ErrMaterialNotFound) {
		t.Fatalf("expected ErrMaterialNotFound, got %v", err)
	}
}

func TestLoadSnapshotRejectsEmptyCatalog(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepoWith(nil, seedCategories())
	if _, err := LoadSnapshot(context.Background(), repo); err == nil {
		t.Fatalf("expected error for empty catalog")
	}
}

func TestMemoryRepoGetCategory(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()

	cat, err := repo.GetCategory(context.Background(), "electronics")
	if err != nil {
		t.Fatalf("GetCategory: %v", err)
	}
	if cat.Name != "Electronics" || cat.FragilityLevel != "high" {
		t.Fatalf("unexpected category: %+v", cat)
	}

	if _, err := repo.GetCategory(context.Background(), "Spacecraft"); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}
