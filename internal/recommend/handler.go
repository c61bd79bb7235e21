package recommend

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/catalog"
	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/features"
	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/shared/metrics"
	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/shared/server/respond"
	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/shared/telemetry"
)

const (
	maxProductWeightKg = 500
	minTopN            = 1
	maxTopN            = 25
)

// Handler wires the recommendation endpoints to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches recommendation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/recommend", h.recommend)
	rg.POST("/compare", h.compare)
}

type recommendRequest struct {
	Category          string   `json:"category"`
	Weight            *float64 `json:"weight"`
	TopN              *int     `json:"top_n"`
	FragilityOverride string   `json:"fragility_override"`
	BudgetLimit       *float64 `json:"budget_limit"`
	CurrentMaterial   string   `json:"current_material"`
}

func (r *recommendRequest) validate() []string {
	var errs []string
	if strings.TrimSpace(r.Category) == "" {
		errs = append(errs, "Missing required field: category")
	}
	if r.Weight == nil {
		errs = append(errs, "Missing required field: weight")
	} else {
		if *r.Weight <= 0 {
			errs = append(errs, "weight must be a positive number")
		}
		if *r.Weight > maxProductWeightKg {
			errs = append(errs, "weight exceeds maximum limit (500 kg)")
		}
	}
	if r.TopN != nil && (*r.TopN < minTopN || *r.TopN > maxTopN) {
		errs = append(errs, "top_n must be between 1 and 25")
	}
	if r.FragilityOverride != "" {
		switch r.FragilityOverride {
		case "auto", "low", "medium", "high":
		default:
			errs = append(errs, "fragility_override must be one of: auto, low, medium, high")
		}
	}
	if r.BudgetLimit != nil && *r.BudgetLimit <= 0 {
		errs = append(errs, "budget_limit must be a positive number")
	}
	return errs
}

func (h *Handler) recommend(c *gin.Context) {
	start := time.Now()
	metrics.IncRecommendRequested()

	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncRecommendFailed()
		respond.Error(c, http.StatusBadRequest, "validation_error", "Request body must be JSON", nil)
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		metrics.IncRecommendFailed()
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request", errs)
		return
	}

	topN := 0
	if req.TopN != nil {
		topN = *req.TopN
	}
	svcReq := RecommendRequest{
		Category:          req.Category,
		ProductWeightKg:   *req.Weight,
		TopN:              topN,
		FragilityOverride: req.FragilityOverride,
		BudgetLimit:       req.BudgetLimit,
		CurrentMaterial:   strings.TrimSpace(req.CurrentMaterial),
	}

	results, err := h.Svc.Recommend(c.Request.Context(), svcReq)
	if err != nil {
		metrics.IncRecommendFailed()
		h.writeError(c, err)
		return
	}

	telemetry.Info("recommend.complete", map[string]any{
		"category":     req.Category,
		"weight_kg":    *req.Weight,
		"count":        len(results),
		"top_material": results[0].MaterialName,
	})

	h.Svc.RecordHistory(c.Request.Context(), svcReq, results[0], nil)

	metrics.IncRecommendCompleted()
	metrics.ObserveRecommendDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)

	respond.OK(c, gin.H{
		"status":            "success",
		"category":          req.Category,
		"product_weight_kg": *req.Weight,
		"count":             len(results),
		"recommendations":   results,
	})
}

type compareRequest struct {
	Category        string   `json:"category"`
	Weight          *float64 `json:"weight"`
	CurrentMaterial string   `json:"current_material"`
}

func (r *compareRequest) validate() []string {
	var errs []string
	if strings.TrimSpace(r.Category) == "" {
		errs = append(errs, "Missing required field: category")
	}
	if r.Weight == nil {
		errs = append(errs, "Missing required field: weight")
	} else if *r.Weight <= 0 {
		errs = append(errs, "weight must be a positive number")
	}
	if strings.TrimSpace(r.CurrentMaterial) == "" {
		errs = append(errs, "Missing required field: current_material")
	}
	return errs
}

func (h *Handler) compare(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Request body must be JSON", nil)
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request", errs)
		return
	}

	comparison, err := h.Svc.Compare(c.Request.Context(), CompareRequest{
		Category:        req.Category,
		ProductWeightKg: *req.Weight,
		CurrentMaterial: strings.TrimSpace(req.CurrentMaterial),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	telemetry.Info("compare.complete", map[string]any{
		"category":          req.Category,
		"current_material":  comparison.CurrentMaterial,
		"reduction_percent": comparison.CO2ReductionPercent,
	})

	h.Svc.RecordHistory(c.Request.Context(), RecommendRequest{
		Category:        req.Category,
		ProductWeightKg: *req.Weight,
		CurrentMaterial: comparison.CurrentMaterial,
	}, Recommendation{
		MaterialName:     comparison.RecommendedMaterial,
		PredictedCO2Kg:   comparison.RecommendedCO2Kg,
		PredictedCostINR: comparison.RecommendedCostINR,
		EcoScore:         comparison.RecommendedEcoScore,
	}, &comparison)

	respond.OK(c, gin.H{
		"status":     "success",
		"comparison": comparison,
	})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrCategoryNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "category not found", nil)
	case errors.Is(err, catalog.ErrMaterialNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "material not found", nil)
	case errors.Is(err, ErrNoMaterialsWithinBudget):
		respond.Error(c, http.StatusNotFound, "no_materials_within_budget", err.Error(), nil)
	case errors.Is(err, features.ErrUnknownCategoryValue):
		respond.Error(c, http.StatusUnprocessableEntity, "unknown_category_value", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute recommendations", nil)
	}
}
