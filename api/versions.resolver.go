package api

import (
	"basketdesk/internal/domain"
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (m ApiHandler) listVersions(c *gin.Context) {
	basketID, err := uuid.Parse(c.Param("basketId"))
	if err != nil {
		returnErrorJson(fmt.Errorf("invalid basket id: %w", err), c)
		return
	}

	versions, err := m.BasketService.ListVersions(c.Request.Context(), basketID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []gin.H{}
	for _, v := range versions {
		out = append(out, gin.H{
			"versionNumber": v.VersionNumber,
			"note":          v.Note,
			"createdAt":     v.CreatedAt,
		})
	}

	c.JSON(200, out)
}

func (m ApiHandler) getVersion(c *gin.Context) {
	basketID, versionNumber, err := basketVersionParams(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	version, err := m.BasketService.GetVersion(c.Request.Context(), basketID, versionNumber)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"basketId":      version.BasketID.String(),
		"versionNumber": version.VersionNumber,
		"note":          version.Note,
		"createdAt":     version.CreatedAt,
		"holdings":      holdingsToJson(version.Holdings),
		"summary":       domain.SummarizeHoldings(version.Holdings),
	})
}

func (m ApiHandler) exportVersion(c *gin.Context) {
	basketID, versionNumber, err := basketVersionParams(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	buf := &bytes.Buffer{}
	err = m.BasketService.ExportVersionCsv(c.Request.Context(), buf, basketID, versionNumber)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(
		"attachment; filename=basket-%s-v%d.csv", basketID, versionNumber,
	))
	c.Data(200, "text/csv", buf.Bytes())
}

// importHoldings commits a holdings CSV as the next version of the basket.
// The baseVersion query param guards against clobbering a concurrent commit.
func (m ApiHandler) importHoldings(c *gin.Context) {
	basketID, err := uuid.Parse(c.Param("basketId"))
	if err != nil {
		returnErrorJson(fmt.Errorf("invalid basket id: %w", err), c)
		return
	}
	baseVersion, err := strconv.ParseInt(c.Query("baseVersion"), 10, 32)
	if err != nil {
		returnErrorJson(fmt.Errorf("invalid baseVersion: %w", err), c)
		return
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

	version, err := m.BasketService.ImportHoldingsCsv(c.Request.Context(), basketID, body, note, int32(baseVersion))
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

// versionPerformance prices the committed weights over stored history. The
// range defaults to the trailing year.
func (m ApiHandler) versionPerformance(c *gin.Context) {
	basketID, versionNumber, err := basketVersionParams(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	end := time.Now().UTC()
	if raw := c.Query("end"); raw != "" {
		end, err = time.Parse(time.DateOnly, raw)
		if err != nil {
			returnErrorJson(fmt.Errorf("invalid end date: %w", err), c)
			return
		}
	}
	start := end.AddDate(-1, 0, 0)
	if raw := c.Query("start"); raw != "" {
		start, err = time.Parse(time.DateOnly, raw)
		if err != nil {
			returnErrorJson(fmt.Errorf("invalid start date: %w", err), c)
			return
		}
	}

	result, err := m.BasketService.VersionPerformance(c.Request.Context(), basketID, versionNumber, start, end)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, result)
}

func basketVersionParams(c *gin.Context) (uuid.UUID, int32, error) {
	basketID, err := uuid.Parse(c.Param("basketId"))
	if err != nil {
		return uuid.Nil, 0, fmt.Errorf("invalid basket id: %w", err)
	}
	versionNumber, err := strconv.ParseInt(c.Param("version"), 10, 32)
	if err != nil {
		return uuid.Nil, 0, fmt.Errorf("invalid version number: %w", err)
	}
	return basketID, int32(versionNumber), nil
}
