package controller

import (
	"learn_track_backend/internal/repository"
	"learn_track_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	LearnerRepo *repository.LearnerRepository
}

func NewHealthController(learnerRepo *repository.LearnerRepository) *HealthController {
	return &HealthController{LearnerRepo: learnerRepo}
}

// HealthCheck godoc
// @Summary Service health
// @Tags system
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"store": gin.H{
				"status":   "up",
				"learners": c.LearnerRepo.Count(),
			},
		},
	})
}
