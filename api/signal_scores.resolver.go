package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type signalScoresRequest struct {
	SnapshotID uuid.UUID `json:"snapshotId"`
	// optional; defaults to now
	AsOf *time.Time `json:"asOf"`
}

func (m ApiHandler) signalScores(c *gin.Context) {
	var req signalScoresRequest
	if err := c.BindJSON(&req); err != nil {
		returnErrorJson(fmt.Errorf("failed to parse request: %w", err), c)
		return
	}

	asOf := time.Now().UTC()
	if req.AsOf != nil {
		asOf = *req.AsOf
	}

	scores, err := m.SignalService.ComputeScores(c.Request.Context(), req.SnapshotID, asOf)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"asOf":   asOf,
		"scores": scores,
	})
}
