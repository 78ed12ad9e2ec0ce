package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type updatePricesRequest struct {
	SnapshotID uuid.UUID `json:"snapshotId"`
}

func (m ApiHandler) updatePrices(c *gin.Context) {
	var req updatePricesRequest
	if err := c.BindJSON(&req); err != nil {
		returnErrorJson(fmt.Errorf("failed to parse request: %w", err), c)
		return
	}

	result, err := m.PriceService.SyncSnapshotPrices(c.Request.Context(), req.SnapshotID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"synced":  result.Synced,
		"skipped": result.Skipped,
	})
}

type updateMacroRequest struct {
	SeriesIDs []string `json:"seriesIds"`
}

func (m ApiHandler) updateMacro(c *gin.Context) {
	var req updateMacroRequest
	if err := c.BindJSON(&req); err != nil {
		returnErrorJson(fmt.Errorf("failed to parse request: %w", err), c)
		return
	}

	result, err := m.PriceService.SyncMacro(c.Request.Context(), req.SeriesIDs)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"synced":  result.Synced,
		"skipped": result.Skipped,
	})
}

func (m ApiHandler) getYieldCurve(c *gin.Context) {
	date := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		var err error
		date, err = time.Parse(time.DateOnly, raw)
		if err != nil {
			returnErrorJson(fmt.Errorf("invalid date: %w", err), c)
			return
		}
	}

	curve, err := m.PriceService.YieldCurve(c.Request.Context(), date)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, curve)
}
