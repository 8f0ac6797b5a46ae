package controller

import (
	"net/http"

	"aventura-gamer-service/internal/dto"
	"aventura-gamer-service/internal/service"

	"github.com/gin-gonic/gin"
)

type GamificationController struct {
	Service *service.GamificationService
}

func NewGamificationController(s *service.GamificationService) *GamificationController {
	return &GamificationController{Service: s}
}

// GET /gamification/progress — datos del panel de progreso del usuario
func (ctl *GamificationController) GetProgress(c *gin.Context) {
	profile, progress, err := ctl.Service.Progress(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profile":  profile,
		"progress": progress,
	})
}

// GET /gamification/achievements — logros con progreso y estado de reclamo
func (ctl *GamificationController) GetAchievements(c *gin.Context) {
	progress, err := ctl.Service.EvaluateAchievements(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// POST /gamification/achievements/claim — reclamo único por (user, logro)
func (ctl *GamificationController) ClaimAchievement(c *gin.Context) {
	var req dto.ClaimAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome, err := ctl.Service.ClaimAchievement(c.Request.Context(), c.GetString("userID"), req.AchievementID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}
