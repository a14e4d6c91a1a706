package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arcwell-robotics/planeval/pkg/evaluator"
)

// RegisterRoutes wires the evaluator's HTTP surface onto engine.
func RegisterRoutes(engine *gin.Engine, seed int64, log *slog.Logger) {
	engine.GET("/v1/healthz", healthzHandler)
	engine.POST("/v1/evaluate", evaluateHandler(seed, log))
}

func healthzHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// evaluateRequest carries the two raw documents as-is so adapter.Normalize
// and evaluator.DecodePlan see exactly the shape they expect, rather than a
// shape reconstituted from gin's own binding structs.
type evaluateRequest struct {
	GroundTruth json.RawMessage `json:"ground_truth" binding:"required"`
	Plan        json.RawMessage `json:"plan" binding:"required"`
}

func evaluateHandler(seed int64, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req evaluateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		verdict, err := evaluator.RunFromJSON(req.GroundTruth, req.Plan, seed, log)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, verdict)
	}
}
