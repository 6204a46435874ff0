package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
)

type AchievementHandler struct {
	achievementUC domain.AchievementUsecase
}

type createAchievementRequest struct {
	Title         string     `json:"title"`
	Issuer        string     `json:"issuer"`
	Date          *time.Time `json:"date"`
	Description   string     `json:"description"`
	CredentialURL string     `json:"credentialUrl" binding:"url_or_empty"`
	ImageURL      string     `json:"imageUrl" binding:"url_or_empty"`
	Order         int        `json:"order"`
}

func NewAchievementHandler(public, protected *gin.RouterGroup, achievementUC domain.AchievementUsecase) {
	handler := &AchievementHandler{achievementUC: achievementUC}

	public.GET("/achievements", handler.List)
	public.GET("/achievements/:id", handler.Get)

	protected.POST("/achievements", handler.Create)
	protected.PUT("/achievements/:id", handler.Update)
	protected.DELETE("/achievements/:id", handler.Delete)
}

// List godoc
// @Summary      List Achievements
// @Description  Return achievements ordered by display order, then date.
// @Tags         achievements
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Achievement}
// @Router       /achievements [get]
func (h *AchievementHandler) List(c *gin.Context) {
	achievements, err := h.achievementUC.ListAchievements(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.List(c, http.StatusOK, len(achievements), achievements)
}

// Get godoc
// @Summary      Get Achievement
// @Tags         achievements
// @Produce      json
// @Param        id   path      string  true  "Achievement ID"
// @Success      200  {object}  response.Response{data=domain.Achievement}
// @Failure      404  {object}  response.Response
// @Router       /achievements/{id} [get]
func (h *AchievementHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if err := requireUUID(id, "Invalid achievement id"); err != nil {
		c.Error(err)
		return
	}

	achievement, err := h.achievementUC.GetAchievement(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "", achievement)
}

// Create godoc
// @Summary      Create Achievement
// @Tags         achievements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        achievement  body      createAchievementRequest  true  "Achievement"
// @Success      201          {object}  response.Response{data=domain.Achievement}
// @Failure      400          {object}  response.Response
// @Router       /achievements [post]
func (h *AchievementHandler) Create(c *gin.Context) {
	var req createAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	achievement := domain.Achievement{
		Title:         req.Title,
		Issuer:        req.Issuer,
		Date:          req.Date,
		Description:   req.Description,
		CredentialURL: req.CredentialURL,
		ImageURL:      req.ImageURL,
		Order:         req.Order,
	}

	if err := h.achievementUC.CreateAchievement(c.Request.Context(), &achievement); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Achievement created", achievement)
}

// Update godoc
// @Summary      Update Achievement
// @Description  Apply a sparse patch. A replaced image is deleted from the media host.
// @Tags         achievements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      string                   true  "Achievement ID"
// @Param        achievement  body      domain.AchievementPatch  true  "Fields to update"
// @Success      200          {object}  response.Response{data=domain.Achievement}
// @Failure      400          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Router       /achievements/{id} [put]
func (h *AchievementHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if err := requireUUID(id, "Invalid achievement id"); err != nil {
		c.Error(err)
		return
	}

	var patch domain.AchievementPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(bindError(err))
		return
	}

	achievement, err := h.achievementUC.UpdateAchievement(c.Request.Context(), id, patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Achievement updated", achievement)
}

// Delete godoc
// @Summary      Delete Achievement
// @Description  Delete an achievement and its hosted image.
// @Tags         achievements
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Achievement ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /achievements/{id} [delete]
func (h *AchievementHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := requireUUID(id, "Invalid achievement id"); err != nil {
		c.Error(err)
		return
	}

	if err := h.achievementUC.DeleteAchievement(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Achievement deleted", nil)
}
