package catalog

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/shared/server/respond"
)

// Handler wires catalog HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", h.listCategories)
	rg.GET("/materials", h.listMaterials)
	rg.GET("/materials/:name", h.materialDetails)
	rg.POST("/eco-score", h.ecoScore)
}

func (h *Handler) listCategories(c *gin.Context) {
	categories, err := h.Svc.ListCategories(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list categories", nil)
		return
	}
	respond.OK(c, gin.H{
		"status":     "success",
		"count":      len(categories),
		"categories": categories,
	})
}

func (h *Handler) listMaterials(c *gin.Context) {
	materials := h.Svc.ListMaterials()
	respond.OK(c, gin.H{
		"status":    "success",
		"count":     len(materials),
		"materials": materials,
	})
}

func (h *Handler) materialDetails(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))

	details, err := h.Svc.MaterialDetails(name)
	if err != nil {
		if errors.Is(err, ErrMaterialNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "material '"+name+"' not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch material", nil)
		return
	}

	respond.OK(c, gin.H{
		"status":   "success",
		"material": details,
	})
}

type ecoScoreRequest struct {
	MaterialName string `json:"material_name"`
}

func (h *Handler) ecoScore(c *gin.Context) {
	var req ecoScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.MaterialName) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Missing required field: material_name", nil)
		return
	}

	details, err := h.Svc.MaterialDetails(req.MaterialName)
	if err != nil {
		if errors.Is(err, ErrMaterialNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "material '"+req.MaterialName+"' not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch material", nil)
		return
	}

	respond.OK(c, gin.H{
		"status":        "success",
		"material_name": details.Name,
		"environmental_scores": gin.H{
			"eco_score":              details.EcoScore,
			"co2_emission_kg":        details.CO2EmissionKg,
			"co2_impact_index":       details.CO2ImpactIndex,
			"biodegradability_score": details.BiodegradabilityScore,
			"recyclability_percent":  details.RecyclabilityPercent,
		},
	})
}
