package api

import (
	"basketdesk/internal/domain"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type constraintSetJson struct {
	WeightTarget     decimal.Decimal            `json:"weightTarget"`
	WeightTolerance  decimal.Decimal            `json:"weightTolerance"`
	ClassCaps        map[string]decimal.Decimal `json:"classCaps"`
	RegionCaps       map[string]decimal.Decimal `json:"regionCaps"`
	MaxHoldings      *int32                     `json:"maxHoldings,omitempty"`
	MinHoldingWeight *decimal.Decimal           `json:"minHoldingWeight,omitempty"`
}

func (m ApiHandler) getConstraints(c *gin.Context) {
	basketID, err := uuid.Parse(c.Param("basketId"))
	if err != nil {
		returnErrorJson(fmt.Errorf("invalid basket id: %w", err), c)
		return
	}

	constraints, err := m.BasketService.GetConstraints(c.Request.Context(), basketID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	classCaps := map[string]decimal.Decimal{}
	for class, cap := range constraints.ClassCaps {
		classCaps[string(class)] = cap
	}

	c.JSON(200, constraintSetJson{
		WeightTarget:     constraints.WeightTarget,
		WeightTolerance:  constraints.WeightTolerance,
		ClassCaps:        classCaps,
		RegionCaps:       constraints.RegionCaps,
		MaxHoldings:      constraints.MaxHoldings,
		MinHoldingWeight: constraints.MinHoldingWeight,
	})
}

func (m ApiHandler) saveConstraints(c *gin.Context) {
	basketID, err := uuid.Parse(c.Param("basketId"))
	if err != nil {
		returnErrorJson(fmt.Errorf("invalid basket id: %w", err), c)
		return
	}

	var req constraintSetJson
	if err := c.BindJSON(&req); err != nil {
		returnErrorJson(fmt.Errorf("failed to parse request: %w", err), c)
		return
	}

	classCaps := map[domain.AssetClass]decimal.Decimal{}
	for class, cap := range req.ClassCaps {
		assetClass, err := domain.NewAssetClass(class)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		classCaps[*assetClass] = cap
	}
	regionCaps := req.RegionCaps
	if regionCaps == nil {
		regionCaps = map[string]decimal.Decimal{}
	}

	constraints := domain.ConstraintSet{
		WeightTarget:     req.WeightTarget,
		WeightTolerance:  req.WeightTolerance,
		ClassCaps:        classCaps,
		RegionCaps:       regionCaps,
		MaxHoldings:      req.MaxHoldings,
		MinHoldingWeight: req.MinHoldingWeight,
	}
	if constraints.WeightTarget.IsZero() {
		defaults := domain.DefaultConstraints()
		constraints.WeightTarget = defaults.WeightTarget
	}
	if constraints.WeightTolerance.IsZero() {
		defaults := domain.DefaultConstraints()
		constraints.WeightTolerance = defaults.WeightTolerance
	}

	err = m.BasketService.SaveConstraints(c.Request.Context(), basketID, constraints)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"message": "ok"})
}
