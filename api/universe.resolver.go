package api

import (
	"basketdesk/internal/domain"
	"fmt"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type universeSnapshotResponse struct {
	SnapshotID      string    `json:"snapshotId"`
	Source          string    `json:"source"`
	Note            *string   `json:"note,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	InstrumentCount int       `json:"instrumentCount"`
}

// importUniverse accepts a universe CSV (multipart "file" field or raw body)
// and creates a brand new immutable snapshot from it.
func (m ApiHandler) importUniverse(c *gin.Context) {
	source := c.Query("source")
	if source == "" {
		source = "api upload"
	}
	var note *string
	if n := c.Query("note"); n != "" {
		note = strPtr(n)
	}

	body := c.Request.Body
	if file, _, err := c.Request.FormFile("file"); err == nil {
		defer file.Close()
		body = file
	}

	snapshot, err := m.UniverseService.ImportUniverse(c.Request.Context(), body, source, note)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, universeSnapshotResponse{
		SnapshotID:      snapshot.SnapshotID.String(),
		Source:          snapshot.Source,
		Note:            snapshot.Note,
		CreatedAt:       snapshot.CreatedAt,
		InstrumentCount: len(snapshot.Instruments),
	})
}

func (m ApiHandler) listUniverseSnapshots(c *gin.Context) {
	snapshots, err := m.UniverseService.ListSnapshots(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []universeSnapshotResponse{}
	for _, s := range snapshots {
		out = append(out, universeSnapshotResponse{
			SnapshotID: s.SnapshotID.String(),
			Source:     s.Source,
			Note:       s.Note,
			CreatedAt:  s.CreatedAt,
		})
	}

	c.JSON(200, out)
}

type instrumentResponse struct {
	InstrumentID string  `json:"instrumentId"`
	Ticker       string  `json:"ticker"`
	Name         string  `json:"name"`
	AssetClass   string  `json:"assetClass"`
	Region       string  `json:"region"`
	Currency     string  `json:"currency"`
	Eligible     bool    `json:"eligible"`
	Isin         *string `json:"isin,omitempty"`
	MinWeight    *string `json:"minWeight,omitempty"`
	MaxWeight    *string `json:"maxWeight,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

func (m ApiHandler) getUniverseSnapshot(c *gin.Context) {
	snapshotID, err := uuid.Parse(c.Param("snapshotId"))
	if err != nil {
		returnErrorJson(fmt.Errorf("invalid snapshot id: %w", err), c)
		return
	}

	snapshot, err := m.UniverseService.GetSnapshot(c.Request.Context(), snapshotID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	instruments := []instrumentResponse{}
	for _, instrument := range sortedInstruments(*snapshot) {
		row := instrumentResponse{
			InstrumentID: instrument.InstrumentID,
			Ticker:       instrument.Ticker,
			Name:         instrument.Name,
			AssetClass:   string(instrument.AssetClass),
			Region:       instrument.Region,
			Currency:     instrument.Currency,
			Eligible:     instrument.Eligible,
			Isin:         instrument.Isin,
			Notes:        instrument.Notes,
		}
		if instrument.MinWeight != nil {
			row.MinWeight = strPtr(instrument.MinWeight.String())
		}
		if instrument.MaxWeight != nil {
			row.MaxWeight = strPtr(instrument.MaxWeight.String())
		}
		instruments = append(instruments, row)
	}

	c.JSON(200, gin.H{
		"snapshotId":  snapshot.SnapshotID.String(),
		"source":      snapshot.Source,
		"note":        snapshot.Note,
		"createdAt":   snapshot.CreatedAt,
		"instruments": instruments,
	})
}

func (m ApiHandler) getDataHealth(c *gin.Context) {
	snapshotID, err := uuid.Parse(c.Param("snapshotId"))
	if err != nil {
		returnErrorJson(fmt.Errorf("invalid snapshot id: %w", err), c)
		return
	}

	health, err := m.PriceService.DataHealth(c.Request.Context(), snapshotID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, health)
}

func sortedInstruments(snapshot domain.UniverseSnapshot) []domain.Instrument {
	out := []domain.Instrument{}
	for _, instrument := range snapshot.Instruments {
		out = append(out, instrument)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].InstrumentID < out[j].InstrumentID
	})
	return out
}
