package api

import (
	"basketdesk/internal/domain"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// compareVersions diffs two versions of a basket. With withScores=true the
// current signal scores are computed and the composite delta between the two
// sets is included.
func (m ApiHandler) compareVersions(c *gin.Context) {
	basketID, err := uuid.Parse(c.Param("basketId"))
	if err != nil {
		returnErrorJson(fmt.Errorf("invalid basket id: %w", err), c)
		return
	}
	fromVersion, err := strconv.ParseInt(c.Query("from"), 10, 32)
	if err != nil {
		returnErrorJson(fmt.Errorf("invalid from version: %w", err), c)
		return
	}
	toVersion, err := strconv.ParseInt(c.Query("to"), 10, 32)
	if err != nil {
		returnErrorJson(fmt.Errorf("invalid to version: %w", err), c)
		return
	}

	var scores []domain.SignalScore
	if c.Query("withScores") == "true" {
		basket, err := m.BasketService.GetBasket(c.Request.Context(), basketID)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		scores, err = m.SignalService.ComputeScores(c.Request.Context(), basket.SnapshotID, time.Now().UTC())
		if err != nil {
			returnErrorJson(err, c)
			return
		}
	}

	diff, err := m.BasketService.Compare(c.Request.Context(), basketID, int32(fromVersion), int32(toVersion), scores)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, diff)
}
