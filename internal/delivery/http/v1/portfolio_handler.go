package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
)

type PortfolioHandler struct {
	portfolioUC domain.PortfolioUsecase
}

type addSkillRequest struct {
	Name     string `json:"name"`
	Category string `json:"category" binding:"omitempty,oneof=Frontend Backend Database DevOps Mobile Other"`
}

// NewPortfolioHandler registers portfolio routes. Reading is public; every
// mutation requires the owner token.
func NewPortfolioHandler(public, protected *gin.RouterGroup, portfolioUC domain.PortfolioUsecase) {
	handler := &PortfolioHandler{portfolioUC: portfolioUC}

	public.GET("/portfolio", handler.Get)

	protected.PUT("/portfolio", handler.Update)
	protected.POST("/portfolio/skills", handler.AddSkill)
	protected.DELETE("/portfolio/skills/:id", handler.RemoveSkill)
}

// Get godoc
// @Summary      Get Portfolio
// @Description  Return the portfolio document, creating the placeholder on first access.
// @Tags         portfolio
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Portfolio}
// @Router       /portfolio [get]
func (h *PortfolioHandler) Get(c *gin.Context) {
	portfolio, err := h.portfolioUC.GetPortfolio(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "", portfolio)
}

// Update godoc
// @Summary      Update Portfolio
// @Description  Apply a sparse patch to the portfolio. Omitted fields are left untouched.
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        portfolio  body      domain.PortfolioPatch  true  "Fields to update"
// @Success      200        {object}  response.Response{data=domain.Portfolio}
// @Failure      400        {object}  response.Response
// @Router       /portfolio [put]
func (h *PortfolioHandler) Update(c *gin.Context) {
	var patch domain.PortfolioPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(bindError(err))
		return
	}

	portfolio, err := h.portfolioUC.UpdatePortfolio(c.Request.Context(), patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Portfolio updated", portfolio)
}

// AddSkill godoc
// @Summary      Add Skill
// @Description  Add a named skill. Names are unique case-insensitively.
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        skill  body      addSkillRequest  true  "Skill to add"
// @Success      201    {object}  response.Response{data=[]domain.Skill}
// @Failure      400    {object}  response.Response
// @Router       /portfolio/skills [post]
func (h *PortfolioHandler) AddSkill(c *gin.Context) {
	var req addSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	skills, err := h.portfolioUC.AddSkill(c.Request.Context(), req.Name, req.Category)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Skill added", skills)
}

// RemoveSkill godoc
// @Summary      Remove Skill
// @Description  Remove a skill by ID. Removing an unknown ID is a no-op.
// @Tags         portfolio
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Skill ID"
// @Success      200  {object}  response.Response{data=[]domain.Skill}
// @Router       /portfolio/skills/{id} [delete]
func (h *PortfolioHandler) RemoveSkill(c *gin.Context) {
	skills, err := h.portfolioUC.RemoveSkill(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill removed", skills)
}
