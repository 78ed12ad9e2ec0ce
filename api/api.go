package api

import (
	"basketdesk/internal"
	"basketdesk/internal/domain"
	"basketdesk/internal/logger"
	"basketdesk/internal/service"
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	Db              *sql.DB
	UniverseService service.UniverseService
	PriceService    service.PriceService
	SignalService   service.SignalService
	BasketService   service.BasketService
}

func strPtr(s string) *string {
	return &s
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to basketdesk"})
	})

	router.POST("/universes", m.importUniverse)
	router.GET("/universes", m.listUniverseSnapshots)
	router.GET("/universes/:snapshotId", m.getUniverseSnapshot)
	router.GET("/universes/:snapshotId/dataHealth", m.getDataHealth)

	router.POST("/updatePrices", m.updatePrices)
	router.POST("/updateMacro", m.updateMacro)
	router.GET("/yieldCurve", m.getYieldCurve)
	router.POST("/signalScores", m.signalScores)

	router.POST("/baskets", m.createBasket)
	router.GET("/baskets", m.listBaskets)
	router.GET("/baskets/:basketId", m.getBasket)
	router.POST("/baskets/:basketId/commit", m.commitBasket)
	router.GET("/baskets/:basketId/versions", m.listVersions)
	router.GET("/baskets/:basketId/versions/:version", m.getVersion)
	router.GET("/baskets/:basketId/versions/:version/export", m.exportVersion)
	router.GET("/baskets/:basketId/versions/:version/performance", m.versionPerformance)
	router.POST("/baskets/:basketId/import", m.importHoldings)
	router.GET("/baskets/:basketId/compare", m.compareVersions)
	router.GET("/baskets/:basketId/constraints", m.getConstraints)
	router.POST("/baskets/:basketId/constraints", m.saveConstraints)
	router.POST("/baskets/:basketId/suggest", m.suggest)
	router.POST("/baskets/:basketId/applySuggestion", m.applySuggestion)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

// returnErrorJson maps the error taxonomy onto status codes: schema and
// constraint failures are the caller's problem (400) and carry the full
// violation list, unknown resources are 404, stale base versions are 409,
// everything else is a 500.
func returnErrorJson(err error, c *gin.Context) {
	logger.FromContext(c.Request.Context()).Warnf("request failed: %v", err)

	var schemaErr domain.SchemaError
	if errors.As(err, &schemaErr) {
		c.AbortWithStatusJSON(400, gin.H{
			"error":      schemaErr.Error(),
			"violations": schemaErr.Violations,
		})
		return
	}
	var constraintErr domain.ConstraintViolationError
	if errors.As(err, &constraintErr) {
		c.AbortWithStatusJSON(400, gin.H{
			"error":      constraintErr.Error(),
			"violations": constraintErr.Result.Violations,
		})
		return
	}
	var notFoundErr domain.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.AbortWithStatusJSON(404, gin.H{
			"error": notFoundErr.Error(),
		})
		return
	}
	var concurrentErr domain.ConcurrentModificationError
	if errors.As(err, &concurrentErr) {
		c.AbortWithStatusJSON(409, gin.H{
			"error":         concurrentErr.Error(),
			"latestVersion": concurrentErr.LatestVersion,
		})
		return
	}

	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	log := logger.New()
	profile := &internal.PerformanceProfile{}
	profile.Add("request start")

	reqCtx := context.WithValue(ctx.Request.Context(), logger.ContextKey, log)
	reqCtx = context.WithValue(reqCtx, "performanceProfile", profile)
	ctx.Request = ctx.Request.WithContext(reqCtx)

	start := time.Now().UTC()
	ctx.Next()

	log.Infow("request",
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"ip", ctx.ClientIP(),
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}
