package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoListMaterials(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	rows := sqlmock.NewRows([]string{
		"material_id", "material_name", "material_type", "strength_score", "weight_capacity_kg",
		"biodegradability_score", "moisture_resistance", "co2_emission_kg", "cost_per_kg",
		"recyclability_percent", "co2_impact_index", "cost_efficiency_index", "eco_score",
	}).
		AddRow(1, "Corrugated Cardboard", "paper", 0.7, 12.0, 0.9, 0.3, 0.9, 35.0, 92.0, 0.2, 0.8, 0.85).
		AddRow(3, "Bubble Wrap", "plastic", 0.55, 8.0, 0.05, 0.95, 2.1, 55.0, 40.0, 0.65, 0.1, 0.25)

	mock.ExpectQuery("SELECT material_id, material_name").WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	materials, err := repo.ListMaterials(context.Background())
	if err != nil {
		t.Fatalf("ListMaterials: %v", err)
	}
	if len(materials) != 2 {
		t.Fatalf("expected 2 materials, got %d", len(materials))
	}
	if materials[0].Name != "Corrugated Cardboard" || materials[1].Type != "plastic" {
		t.Fatalf("unexpected materials: %+v", materials)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetCategoryNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT category_id, category_name").
		WithArgs("Spacecraft").
		WillReturnRows(sqlmock.NewRows([]string{
			"category_id", "category_name", "typical_weight_kg", "fragility_level",
			"requires_cushioning", "moisture_sensitive", "temperature_sensitive",
		}))

	repo := &PGRepo{DB: db}
	_, err = repo.GetCategory(context.Background(), "Spacecraft")
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListCategoryNames(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT category_name FROM product_categories").
		WillReturnRows(sqlmock.NewRows([]string{"category_name"}).
			AddRow("Books").
			AddRow("Electronics"))

	repo := &PGRepo{DB: db}
	names, err := repo.ListCategoryNames(context.Background())
	if err != nil {
		t.Fatalf("ListCategoryNames: %v", err)
	}
	if len(names) != 2 || names[0] != "Books" {
		t.Fatalf("unexpected names: %v", names)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
