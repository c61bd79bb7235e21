package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := NewMemoryRepo()
	snap, err := LoadSnapshot(context.Background(), repo)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	handler := NewHandler(&Service{Catalog: snap, Repo: repo})

	r := gin.New()
	handler.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	var payload map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response %s: %v", resp.Body.String(), err)
	}
	return resp, payload
}

func TestListCategories(t *testing.T) {
	r := newTestRouter(t)

	resp, payload := doJSON(t, r, http.MethodGet, "/api/v1/categories", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if payload["status"] != "success" {
		t.Fatalf("expected status success, got %v", payload["status"])
	}
	if payload["count"].(float64) != 8 {
		t.Fatalf("expected 8 categories, got %v", payload["count"])
	}
}

func TestListMaterials(t *testing.T) {
	r := newTestRouter(t)

	resp, payload := doJSON(t, r, http.MethodGet, "/api/v1/materials", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if payload["count"].(float64) != 10 {
		t.Fatalf("expected 10 materials, got %v", payload["count"])
	}
}

func TestMaterialDetailsNotFound(t *testing.T) {
	r := newTestRouter(t)

	resp, payload := doJSON(t, r, http.MethodGet, "/api/v1/materials/Vibranium", "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	errBody := payload["error"].(map[string]any)
	if errBody["code"] != "not_found" {
		t.Fatalf("expected not_found, got %v", errBody["code"])
	}
}

func TestEcoScoreEndpoint(t *testing.T) {
	r := newTestRouter(t)

	resp, payload := doJSON(t, r, http.MethodPost, "/api/v1/eco-score", `{"material_name":"Mushroom Packaging"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", resp.Code, payload)
	}
	if payload["material_name"] != "Mushroom Packaging" {
		t.Fatalf("unexpected material_name: %v", payload["material_name"])
	}
	scores := payload["environmental_scores"].(map[string]any)
	for _, key := range []string{"eco_score", "co2_emission_kg", "co2_impact_index", "biodegradability_score", "recyclability_percent"} {
		if _, ok := scores[key]; !ok {
			t.Fatalf("missing score field %s", key)
		}
	}
}

func TestEcoScoreMissingMaterialName(t *testing.T) {
	r := newTestRouter(t)

	resp, _ := doJSON(t, r, http.MethodPost, "/api/v1/eco-score", `{}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
