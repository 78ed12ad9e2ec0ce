package api

import (
	"basketdesk/internal/domain"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type suggestRequest struct {
	// optional; defaults to now
	AsOf *time.Time `json:"asOf"`
}

func (m ApiHandler) suggest(c *gin.Context) {
	basketID, err := uuid.Parse(c.Param("basketId"))
	if err != nil {
		returnErrorJson(fmt.Errorf("invalid basket id: %w", err), c)
		return
	}

	req := suggestRequest{}
	// an empty body is fine
	_ = c.BindJSON(&req)

	asOf := time.Now().UTC()
	if req.AsOf != nil {
		asOf = *req.AsOf
	}

	suggestion, err := m.BasketService.Suggest(c.Request.Context(), basketID, asOf)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, suggestion)
}

type applySuggestionRequest struct {
	BaseVersion int32                    `json:"baseVersion"`
	Actions     []domain.SuggestedAction `json:"actions"`
}

// applySuggestion materializes a previously returned suggestion and commits
// it. The commit path re-validates everything, so a suggestion generated
// against a stale version is rejected rather than applied blindly.
func (m ApiHandler) applySuggestion(c *gin.Context) {
	basketID, err := uuid.Parse(c.Param("basketId"))
	if err != nil {
		returnErrorJson(fmt.Errorf("invalid basket id: %w", err), c)
		return
	}

	var req applySuggestionRequest
	if err := c.BindJSON(&req); err != nil {
		returnErrorJson(fmt.Errorf("failed to parse request: %w", err), c)
		return
	}

	version, err := m.BasketService.ApplySuggestion(c.Request.Context(), domain.Suggestion{
		BasketID:    basketID,
		BaseVersion: req.BaseVersion,
		Actions:     req.Actions,
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
