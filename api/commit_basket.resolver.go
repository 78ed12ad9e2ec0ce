package api

import (
	"basketdesk/internal/service"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type commitBasketRequest struct {
	Holdings    []holdingJson `json:"holdings"`
	Note        *string       `json:"note"`
	BaseVersion int32         `json:"baseVersion"`
}

type basketVersionResponse struct {
	BasketID      string        `json:"basketId"`
	VersionNumber int32         `json:"versionNumber"`
	Note          *string       `json:"note,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	Holdings      []holdingJson `json:"holdings"`
}

func (m ApiHandler) commitBasket(c *gin.Context) {
	basketID, err := uuid.Parse(c.Param("basketId"))
	if err != nil {
		returnErrorJson(fmt.Errorf("invalid basket id: %w", err), c)
		return
	}

	var req commitBasketRequest
	if err := c.BindJSON(&req); err != nil {
		returnErrorJson(fmt.Errorf("failed to parse request: %w", err), c)
		return
	}

	version, err := m.BasketService.Commit(c.Request.Context(), service.CommitInput{
		BasketID:    basketID,
		Holdings:    holdingsFromJson(req.Holdings),
		Note:        req.Note,
		BaseVersion: req.BaseVersion,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, basketVersionResponse{
		BasketID:      version.BasketID.String(),
		VersionNumber: version.VersionNumber,
		Note:          version.Note,
		CreatedAt:     version.CreatedAt,
		Holdings:      holdingsToJson(version.Holdings),
	})
}
