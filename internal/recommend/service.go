package recommend

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/catalog"
	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/shared/telemetry"
)

const (
	// packagingFactor is the fixed packaging-weight to product-weight ratio.
	// The training data generator used the same value; the two must not
	// diverge or comparison savings become meaningless.
	packagingFactor = 0.15

	// overweightPenalty halves the suitability of a material whose rated
	// capacity is below the product weight. The material stays in the
	// results, downranked; excluding it would change observable result
	// counts.
	overweightPenalty = 0.5

	defaultTopN = 5
)

// CategoryLookup resolves a product category by name.
type CategoryLookup interface {
	GetCategory(ctx context.Context, name string) (catalog.Category, error)
}

// Service runs the recommendation and comparison pipelines over the shared
// Engine. All operations are read-only over immutable state; concurrent
// requests need no coordination.
type Service struct {
	Engine     *Engine
	Categories CategoryLookup
	History    HistoryRepo // optional; nil disables persistence
}

func validFragility(level string) bool {
	switch level {
	case "low", "medium", "high":
		return true
	default:
		return false
	}
}

// Recommend scores every catalog material for the request and returns the
// top candidates sorted by suitability.
func (s *Service) Recommend(ctx context.Context, req RecommendRequest) ([]Recommendation, error) {
	cat, err := s.Categories.GetCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	fragility := cat.FragilityLevel
	if validFragility(req.FragilityOverride) {
		fragility = req.FragilityOverride
	}

	suitability, co2, cost, err := s.Engine.scoreAll(cat, req.ProductWeightKg, fragility)
	if err != nil {
		return nil, err
	}

	materials := s.Engine.Catalog.Materials()
	results := make([]Recommendation, 0, len(materials))
	for i, m := range materials {
		canHandle := m.WeightCapacityKg >= req.ProductWeightKg
		score := suitability[i]
		if !canHandle {
			score *= overweightPenalty
		}
		results = append(results, Recommendation{
			MaterialID:            m.ID,
			MaterialName:          m.Name,
			MaterialType:          m.Type,
			SuitabilityScore:      roundTo(score, 3),
			PredictedCO2Kg:        roundTo(co2[i], 4),
			PredictedCostINR:      roundTo(cost[i], 2),
			EcoScore:              roundTo(m.EcoScore, 3),
			BiodegradabilityScore: roundTo(m.BiodegradabilityScore, 2),
			CanHandleWeight:       canHandle,
			WeightCapacityKg:      m.WeightCapacityKg,
		})
	}

	// Suitability descending; ties broken by material id so ordering does
	// not depend on incidental catalog order.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].SuitabilityScore != results[j].SuitabilityScore {
			return results[i].SuitabilityScore > results[j].SuitabilityScore
		}
		return results[i].MaterialID < results[j].MaterialID
	})

	if req.BudgetLimit != nil {
		filtered := results[:0]
		for _, r := range results {
			if r.PredictedCostINR <= *req.BudgetLimit {
				filtered = append(filtered, r)
			}
		}
		results = filtered
		if len(results) == 0 {
			return nil, ErrNoMaterialsWithinBudget
		}
	}

	topN := req.TopN
	if topN <= 0 {
		topN = defaultTopN
	}
	if len(results) > topN {
		results = results[:topN]
	}
	return results, nil
}

// Compare scores the request, takes the single best recommendation, and
// reports the CO2/cost delta against the caller's current material.
func (s *Service) Compare(ctx context.Context, req CompareRequest) (Comparison, error) {
	recs, err := s.Recommend(ctx, RecommendRequest{
		Category:        req.Category,
		ProductWeightKg: req.ProductWeightKg,
		TopN:            1,
	})
	if err != nil {
		return Comparison{}, err
	}
	best := recs[0]

	current, err := s.Engine.Catalog.MaterialByName(req.CurrentMaterial)
	if err != nil {
		return Comparison{}, err
	}

	packagingWeight := req.ProductWeightKg * packagingFactor
	currentCO2 := current.CO2EmissionKg * packagingWeight
	currentCost := current.CostPerKg * packagingWeight

	co2Savings := currentCO2 - best.PredictedCO2Kg
	costDifference := currentCost - best.PredictedCostINR
	reductionPct := 0.0
	if currentCO2 > 0 {
		reductionPct = co2Savings / currentCO2 * 100
	}

	return Comparison{
		CurrentMaterial:     current.Name,
		CurrentCO2Kg:        roundTo(currentCO2, 4),
		CurrentCostINR:      roundTo(currentCost, 2),
		RecommendedMaterial: best.MaterialName,
		RecommendedCO2Kg:    roundTo(best.PredictedCO2Kg, 4),
		RecommendedCostINR:  roundTo(best.PredictedCostINR, 2),
		RecommendedEcoScore: roundTo(best.EcoScore, 3),
		CO2SavingsKg:        roundTo(co2Savings, 4),
		CO2ReductionPercent: roundTo(reductionPct, 1),
		CostDifferenceINR:   roundTo(costDifference, 2),
	}, nil
}

// RecordHistory persists a recommendation best-effort. Failures are logged
// and swallowed: history is telemetry, not part of the recommendation
// contract, and must never fail the request that produced it.
func (s *Service) RecordHistory(ctx context.Context, req RecommendRequest, best Recommendation, comparison *Comparison) {
	if s.History == nil {
		return
	}

	record := HistoryRecord{
		ID:                      uuid.NewString(),
		CategoryName:            req.Category,
		ProductWeightKg:         req.ProductWeightKg,
		FragilityLevel:          req.FragilityOverride,
		BudgetLimit:             req.BudgetLimit,
		CurrentMaterialName:     req.CurrentMaterial,
		RecommendedMaterialName: best.MaterialName,
		RecommendedMaterialType: best.MaterialType,
		SuitabilityScore:        best.SuitabilityScore,
		PredictedCostINR:        best.PredictedCostINR,
		PredictedCO2Kg:          best.PredictedCO2Kg,
		EcoScore:                best.EcoScore,
		CreatedAt:               time.Now().UTC(),
	}
	if comparison != nil {
		co2Savings := comparison.CO2SavingsKg
		costSavings := comparison.CostDifferenceINR
		record.CO2SavingsKg = &co2Savings
		record.CostSavingsINR = &costSavings
	}

	if err := s.History.Save(ctx, record); err != nil {
		telemetry.Warn("recommend.history_save_failed", map[string]any{
			"category": req.Category,
			"material": best.MaterialName,
			"error":    err.Error(),
		})
	}
}

func roundTo(value float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(value*shift) / shift
}
