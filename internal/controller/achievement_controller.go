package controller

import (
	"net/http"

	"aventura-gamer-service/internal/dto"
	"aventura-gamer-service/internal/model"
	"aventura-gamer-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AchievementController es el CRUD de definiciones de logros (solo admin).
type AchievementController struct {
	Repo service.AchievementRepository
}

func NewAchievementController(repo service.AchievementRepository) *AchievementController {
	return &AchievementController{Repo: repo}
}

// GET /achievements — definiciones activas, visibles para todos
func (ctl *AchievementController) List(c *gin.Context) {
	defs, err := ctl.Repo.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	var out []*model.Achievement
	for _, d := range defs {
		if d.Active {
			out = append(out, d)
		}
	}
	c.JSON(http.StatusOK, out)
}

// GET /admin/achievements — todas, incluidas las inactivas
func (ctl *AchievementController) ListAll(c *gin.Context) {
	defs, err := ctl.Repo.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, defs)
}

// POST /admin/achievements
func (ctl *AchievementController) Create(c *gin.Context) {
	var req dto.AchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a := &model.Achievement{
		AchievementID:  uuid.NewString(),
		Title:          req.Title,
		Description:    req.Description,
		Icon:           req.Icon,
		ConditionType:  req.ConditionType,
		ConditionValue: req.ConditionValue,
		XPReward:       req.XPReward,
		Active:         req.Active,
	}
	if err := ctl.Repo.Save(c.Request.Context(), a); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// PUT /admin/achievements/:achievementId
func (ctl *AchievementController) Update(c *gin.Context) {
	id := c.Param("achievementId")

	existing, err := ctl.Repo.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.AchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing.Title = req.Title
	existing.Description = req.Description
	existing.Icon = req.Icon
	existing.ConditionType = req.ConditionType
	existing.ConditionValue = req.ConditionValue
	existing.XPReward = req.XPReward
	existing.Active = req.Active

	if err := ctl.Repo.Save(c.Request.Context(), existing); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, existing)
}

// DELETE /admin/achievements/:achievementId — solo superadmin
func (ctl *AchievementController) Delete(c *gin.Context) {
	if err := ctl.Repo.Delete(c.Request.Context(), c.Param("achievementId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "achievement deleted"})
}
