package controller

import (
	"errors"
	"learn_track_backend/internal/service"
	"learn_track_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type StudentController struct {
	Dashboard *service.DashboardService
	Activity  *service.ActivityService
	DailyTest *service.DailyTestService
	Topics    *service.TopicService
}

func NewStudentController(
	dashboard *service.DashboardService,
	activity *service.ActivityService,
	dailyTest *service.DailyTestService,
	topics *service.TopicService,
) *StudentController {
	return &StudentController{
		Dashboard: dashboard,
		Activity:  activity,
		DailyTest: dailyTest,
		Topics:    topics,
	}
}

// renderSubmissionError maps the three failure kinds onto distinct statuses:
// validation 400, cadence 409, unknown learner 404.
func renderSubmissionError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrValidation):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrTestAlreadyTaken):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrLearnerNotFound):
		util.NotFound(ctx, "Student not found")
	default:
		util.LogInternalError(ctx, err)
	}
}

// GetDashboard godoc
// @Summary Student dashboard
// @Description Analysis, test trend, guidance, today's test availability, recent activities and the topic list.
// @Tags student
// @Produce json
// @Security ApiKeyAuth
// @Param learnerId path string true "learner id"
// @Success 200 {object} util.Response{data=service.StudentDashboard}
// @Failure 404 {object} util.Response
// @Router /api/student/dashboard/{learnerId} [get]
func (c *StudentController) GetDashboard(ctx *gin.Context) {
	dashboard, err := c.Dashboard.GetStudentDashboard(ctx.Param("learnerId"))
	if err != nil {
		if errors.Is(err, util.ErrLearnerNotFound) {
			util.NotFound(ctx, "Student not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, dashboard)
}

// AddActivity godoc
// @Summary Log a practice session
// @Tags student
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param learnerId path string true "learner id"
// @Param body body service.ActivitySubmission true "practice session"
// @Success 200 {object} util.Response{data=model.Activity}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/student/activity/{learnerId} [post]
func (c *StudentController) AddActivity(ctx *gin.Context) {
	var req service.ActivitySubmission
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	activity, err := c.Activity.AddActivity(ctx.Param("learnerId"), req)
	if err != nil {
		renderSubmissionError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"success": true, "activity": activity})
}

// SubmitDailyTest godoc
// @Summary Submit today's self-test
// @Description Rejected with 409 if a test already exists for today's calendar date.
// @Tags student
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param learnerId path string true "learner id"
// @Param body body service.DailyTestSubmission true "daily test"
// @Success 200 {object} util.Response{data=model.DailyTest}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/student/daily-test/{learnerId} [post]
func (c *StudentController) SubmitDailyTest(ctx *gin.Context) {
	var req service.DailyTestSubmission
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	test, err := c.DailyTest.SubmitTest(ctx.Param("learnerId"), req)
	if err != nil {
		renderSubmissionError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"success": true, "test": test})
}

// CanTakeTest godoc
// @Summary Check today's test availability
// @Tags student
// @Produce json
// @Security ApiKeyAuth
// @Param learnerId path string true "learner id"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Router /api/student/can-take-test/{learnerId} [get]
func (c *StudentController) CanTakeTest(ctx *gin.Context) {
	canTake, err := c.DailyTest.CanTakeTest(ctx.Param("learnerId"))
	if err != nil {
		util.NotFound(ctx, "Student not found")
		return
	}
	util.Success(ctx, gin.H{"canTakeTest": canTake})
}

// GetTestHistory godoc
// @Summary Daily test history
// @Description Tests from the last `days` days (default 30), most recent first.
// @Tags student
// @Produce json
// @Security ApiKeyAuth
// @Param learnerId path string true "learner id"
// @Param days query int false "window in days" default(30)
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Router /api/student/test-history/{learnerId} [get]
func (c *StudentController) GetTestHistory(ctx *gin.Context) {
	days, err := strconv.Atoi(ctx.DefaultQuery("days", "30"))
	if err != nil || days < 1 {
		util.BadRequest(ctx, "invalid days parameter")
		return
	}

	history, err := c.DailyTest.GetTestHistory(ctx.Param("learnerId"), days)
	if err != nil {
		util.NotFound(ctx, "Student not found")
		return
	}
	util.Success(ctx, gin.H{"history": history})
}

// GetActivities godoc
// @Summary All logged practice sessions
// @Tags student
// @Produce json
// @Security ApiKeyAuth
// @Param learnerId path string true "learner id"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Router /api/student/activities/{learnerId} [get]
func (c *StudentController) GetActivities(ctx *gin.Context) {
	activities, err := c.Activity.GetActivities(ctx.Param("learnerId"))
	if err != nil {
		util.NotFound(ctx, "Student not found")
		return
	}
	util.Success(ctx, gin.H{"activities": activities})
}

type AddTopicRequest struct {
	Topic string `json:"topic" binding:"required"`
}

// AddTopic godoc
// @Summary Register a custom topic
// @Tags student
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body AddTopicRequest true "topic name"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/student/topic [post]
func (c *StudentController) AddTopic(ctx *gin.Context) {
	var req AddTopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Topic name is required")
		return
	}

	topic, ok := c.Topics.AddTopic(req.Topic)
	if !ok {
		util.BadRequest(ctx, "Invalid topic name")
		return
	}
	util.Success(ctx, gin.H{"success": true, "topic": topic})
}
