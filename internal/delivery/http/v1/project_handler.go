package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
)

type ProjectHandler struct {
	projectUC domain.ProjectUsecase
}

type createProjectRequest struct {
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	TechStack    []string           `json:"techStack"`
	Images       []string           `json:"images"`
	DemoVideoURL string             `json:"demoVideoUrl" binding:"url_or_empty"`
	DemoVideos   []string           `json:"demoVideos"`
	GithubURL    string             `json:"githubUrl" binding:"url_or_empty"`
	LiveURL      string             `json:"liveUrl" binding:"url_or_empty"`
	Source       string             `json:"source"`
	Featured     bool               `json:"featured"`
	Order        int                `json:"order"`
	GithubMeta   *domain.GithubMeta `json:"githubMeta"`
}

type reorderRequest struct {
	OrderedIDs []string `json:"orderedIds"`
}

// NewProjectHandler registers project routes. The reorder route is declared
// before the parameterized ones so "reorder" is never parsed as an ID.
func NewProjectHandler(public, protected *gin.RouterGroup, projectUC domain.ProjectUsecase) {
	handler := &ProjectHandler{projectUC: projectUC}

	public.GET("/projects", handler.List)
	public.GET("/projects/:id", handler.Get)

	protected.POST("/projects", handler.Create)
	protected.PUT("/projects/reorder", handler.Reorder)
	protected.PUT("/projects/:id", handler.Update)
	protected.DELETE("/projects/:id", handler.Delete)
}

// List godoc
// @Summary      List Projects
// @Description  Return projects ordered by display order, then recency. Pass featured=true to filter.
// @Tags         projects
// @Produce      json
// @Param        featured  query     bool  false  "Only featured projects"
// @Success      200       {object}  response.Response{data=[]domain.Project}
// @Router       /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	featuredOnly := c.Query("featured") == "true"

	projects, err := h.projectUC.ListProjects(c.Request.Context(), featuredOnly)
	if err != nil {
		c.Error(err)
		return
	}
	response.List(c, http.StatusOK, len(projects), projects)
}

// Get godoc
// @Summary      Get Project
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  response.Response{data=domain.Project}
// @Failure      404  {object}  response.Response
// @Router       /projects/{id} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if err := requireUUID(id, "Invalid project id"); err != nil {
		c.Error(err)
		return
	}

	project, err := h.projectUC.GetProject(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "", project)
}

// Create godoc
// @Summary      Create Project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        project  body      createProjectRequest  true  "Project"
// @Success      201      {object}  response.Response{data=domain.Project}
// @Failure      400      {object}  response.Response
// @Router       /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	project := domain.Project{
		Title:        req.Title,
		Description:  req.Description,
		TechStack:    req.TechStack,
		Images:       req.Images,
		DemoVideoURL: req.DemoVideoURL,
		DemoVideos:   req.DemoVideos,
		GithubURL:    req.GithubURL,
		LiveURL:      req.LiveURL,
		Source:       req.Source,
		Featured:     req.Featured,
		Order:        req.Order,
		GithubMeta:   req.GithubMeta,
	}

	if err := h.projectUC.CreateProject(c.Request.Context(), &project); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Project created", project)
}

// Reorder godoc
// @Summary      Reorder Projects
// @Description  Renumber projects to match the given ID sequence. Unknown IDs are skipped.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        order  body      reorderRequest  true  "Ordered project IDs"
// @Success      200    {object}  response.Response{data=[]domain.Project}
// @Failure      400    {object}  response.Response
// @Router       /projects/reorder [put]
func (h *ProjectHandler) Reorder(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	projects, err := h.projectUC.ReorderProjects(c.Request.Context(), req.OrderedIDs)
	if err != nil {
		c.Error(err)
		return
	}
	response.List(c, http.StatusOK, len(projects), projects)
}

// Update godoc
// @Summary      Update Project
// @Description  Apply a sparse patch. Images dropped from the list are deleted from the media host.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string               true  "Project ID"
// @Param        project  body      domain.ProjectPatch  true  "Fields to update"
// @Success      200      {object}  response.Response{data=domain.Project}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /projects/{id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if err := requireUUID(id, "Invalid project id"); err != nil {
		c.Error(err)
		return
	}

	var patch domain.ProjectPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(bindError(err))
		return
	}

	project, err := h.projectUC.UpdateProject(c.Request.Context(), id, patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project updated", project)
}

// Delete godoc
// @Summary      Delete Project
// @Description  Delete a project and its hosted images.
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := requireUUID(id, "Invalid project id"); err != nil {
		c.Error(err)
		return
	}

	if err := h.projectUC.DeleteProject(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project deleted", nil)
}
