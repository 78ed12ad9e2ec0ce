package api

import (
	"basketdesk/internal/domain"
	"basketdesk/internal/service"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type holdingJson struct {
	InstrumentID string          `json:"instrumentId"`
	Weight       decimal.Decimal `json:"weight"`
}

func holdingsFromJson(in []holdingJson) []domain.Holding {
	out := make([]domain.Holding, 0, len(in))
	for _, h := range in {
		out = append(out, domain.Holding{
			InstrumentID: h.InstrumentID,
			Weight:       h.Weight,
		})
	}
	return out
}

func holdingsToJson(in []domain.Holding) []holdingJson {
	out := make([]holdingJson, 0, len(in))
	for _, h := range in {
		out = append(out, holdingJson{
			InstrumentID: h.InstrumentID,
			Weight:       h.Weight,
		})
	}
	return out
}

type createBasketRequest struct {
	SnapshotID  uuid.UUID `json:"snapshotId"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
}

type basketResponse struct {
	BasketID    string    `json:"basketId"`
	SnapshotID  string    `json:"snapshotId"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (m ApiHandler) createBasket(c *gin.Context) {
	var req createBasketRequest
	if err := c.BindJSON(&req); err != nil {
		returnErrorJson(fmt.Errorf("failed to parse request: %w", err), c)
		return
	}
	if req.Name == "" {
		returnErrorJson(fmt.Errorf("basket name is required"), c)
		return
	}

	basket, err := m.BasketService.CreateBasket(c.Request.Context(), service.CreateBasketInput{
		SnapshotID:  req.SnapshotID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, basketResponse{
		BasketID:    basket.BasketID.String(),
		SnapshotID:  basket.SnapshotID.String(),
		Name:        basket.Name,
		Description: basket.Description,
		CreatedAt:   basket.CreatedAt,
	})
}

func (m ApiHandler) listBaskets(c *gin.Context) {
	baskets, err := m.BasketService.ListBaskets(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []basketResponse{}
	for _, b := range baskets {
		out = append(out, basketResponse{
			BasketID:    b.BasketID.String(),
			SnapshotID:  b.SnapshotID.String(),
			Name:        b.Name,
			Description: b.Description,
			CreatedAt:   b.CreatedAt,
		})
	}

	c.JSON(200, out)
}

func (m ApiHandler) getBasket(c *gin.Context) {
	basketID, err := uuid.Parse(c.Param("basketId"))
	if err != nil {
		returnErrorJson(fmt.Errorf("invalid basket id: %w", err), c)
		return
	}

	basket, err := m.BasketService.GetBasket(c.Request.Context(), basketID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, basketResponse{
		BasketID:    basket.BasketID.String(),
		SnapshotID:  basket.SnapshotID.String(),
		Name:        basket.Name,
		Description: basket.Description,
		CreatedAt:   basket.CreatedAt,
	})
}
