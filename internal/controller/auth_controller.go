package controller

import (
	"learn_track_backend/internal/model"
	"learn_track_backend/internal/service"
	"learn_track_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// LoginRequest identifies a learner by name, id and role. There is no
// password; the id is the identity.
type LoginRequest struct {
	Name string `json:"name" binding:"required"`
	ID   string `json:"id" binding:"required"`
	Role string `json:"role" binding:"required,oneof=student trainer"`
}

// Login godoc
// @Summary Log in or register a learner
// @Description Creates the learner on first login, refreshes name and role afterwards, and returns a token.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "learner identity"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, learner, err := c.AuthService.Login(req.ID, req.Name, model.LearnerRole(req.Role))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"token": token,
		"user": gin.H{
			"id":   learner.ID,
			"name": learner.Name,
			"role": learner.Role,
		},
	})
}

// GetUser godoc
// @Summary Get learner info
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "learner id"
// @Success 200 {object} util.Response{data=model.Learner}
// @Failure 404 {object} util.Response
// @Router /api/auth/user/{id} [get]
func (c *AuthController) GetUser(ctx *gin.Context) {
	learner, err := c.AuthService.GetLearner(ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx, "User not found")
		return
	}

	util.Success(ctx, gin.H{
		"user": gin.H{
			"id":   learner.ID,
			"name": learner.Name,
			"role": learner.Role,
		},
	})
}
