package controller

import (
	"errors"
	"learn_track_backend/internal/service"
	"learn_track_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TrainerController struct {
	Dashboard *service.DashboardService
	Failure   *service.FailureService
	Recovery  *service.RecoveryService
}

func NewTrainerController(
	dashboard *service.DashboardService,
	failure *service.FailureService,
	recovery *service.RecoveryService,
) *TrainerController {
	return &TrainerController{
		Dashboard: dashboard,
		Failure:   failure,
		Recovery:  recovery,
	}
}

// GetDashboard godoc
// @Summary Trainer overview of all students
// @Description One analyzed row per student plus tier counts.
// @Tags trainer
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.TrainerDashboard}
// @Router /api/trainer/dashboard [get]
func (c *TrainerController) GetDashboard(ctx *gin.Context) {
	dashboard, err := c.Dashboard.GetTrainerDashboard()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, dashboard)
}

// GetStudentDetail godoc
// @Summary Detailed view of one student
// @Tags trainer
// @Produce json
// @Security ApiKeyAuth
// @Param learnerId path string true "learner id"
// @Success 200 {object} util.Response{data=service.StudentDetail}
// @Failure 404 {object} util.Response
// @Router /api/trainer/student/{learnerId} [get]
func (c *TrainerController) GetStudentDetail(ctx *gin.Context) {
	detail, err := c.Dashboard.GetStudentDetail(ctx.Param("learnerId"))
	if err != nil {
		if errors.Is(err, util.ErrLearnerNotFound) {
			util.NotFound(ctx, "Student not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}

// GetStudentSummary godoc
// @Summary Compact performance summary of one student
// @Tags trainer
// @Produce json
// @Security ApiKeyAuth
// @Param learnerId path string true "learner id"
// @Success 200 {object} util.Response{data=service.StudentSummary}
// @Failure 404 {object} util.Response
// @Router /api/trainer/student/{learnerId}/summary [get]
func (c *TrainerController) GetStudentSummary(ctx *gin.Context) {
	summary, err := c.Dashboard.GetStudentSummary(ctx.Param("learnerId"))
	if err != nil {
		if errors.Is(err, util.ErrLearnerNotFound) {
			util.NotFound(ctx, "Student not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}

// GetRecoveryStrategies godoc
// @Summary Recovery strategies for one student
// @Description Strategy list keyed by the student's current risk tier, with lagging topics appended.
// @Tags trainer
// @Produce json
// @Security ApiKeyAuth
// @Param learnerId path string true "learner id"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Router /api/trainer/student/{learnerId}/strategies [get]
func (c *TrainerController) GetRecoveryStrategies(ctx *gin.Context) {
	analysis, err := c.Failure.Analyze(ctx.Param("learnerId"))
	if err != nil {
		if errors.Is(err, util.ErrLearnerNotFound) {
			util.NotFound(ctx, "Student not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	strategies := c.Recovery.GetRecoveryStrategies(analysis.RiskLevel, analysis.LaggingTopics)
	util.Success(ctx, gin.H{"strategies": strategies})
}
