package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
)

type UploadHandler struct {
	uploadUC domain.UploadUsecase
	importUC domain.ImportUsecase
}

type uploadImageRequest struct {
	Image  string `json:"image"`
	Folder string `json:"folder"`
}

type deleteImageRequest struct {
	PublicID string `json:"publicId"`
}

type importRepoRequest struct {
	GithubURL string `json:"githubUrl"`
}

// NewUploadHandler registers media upload and GitHub import routes. All of
// them are owner-only; the image upload route carries its own limiter on top
// of the global one.
func NewUploadHandler(protected *gin.RouterGroup, uploadUC domain.UploadUsecase, importUC domain.ImportUsecase, cfg *config.Config) {
	handler := &UploadHandler{uploadUC: uploadUC, importUC: importUC}

	protected.GET("/upload/signature", handler.Signature)
	protected.POST("/upload/image", middleware.UploadRateLimit(cfg), handler.UploadImage)
	protected.DELETE("/upload/image", handler.DeleteImage)
	protected.POST("/upload/github", handler.ImportRepo)
	protected.GET("/upload/github/repos/:username", handler.ListUserRepos)
}

// Signature godoc
// @Summary      Get Upload Signature
// @Description  Return signed parameters for a direct browser-to-Cloudinary upload.
// @Tags         upload
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=domain.UploadSignature}
// @Failure      500  {object}  response.Response
// @Router       /upload/signature [get]
func (h *UploadHandler) Signature(c *gin.Context) {
	signature, err := h.uploadUC.GetUploadSignature(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "", signature)
}

// UploadImage godoc
// @Summary      Upload Image
// @Description  Upload a base64 data URI or remote URL through the server.
// @Tags         upload
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        image  body      uploadImageRequest  true  "Image payload"
// @Success      200    {object}  response.Response{data=domain.UploadResult}
// @Failure      400    {object}  response.Response
// @Router       /upload/image [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	var req uploadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	result, err := h.uploadUC.UploadImage(c.Request.Context(), req.Image, req.Folder)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Image uploaded", result)
}

// DeleteImage godoc
// @Summary      Delete Image
// @Description  Delete a hosted image by its public ID (body or ?publicId=).
// @Tags         upload
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        image  body      deleteImageRequest  false  "Public ID"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Router       /upload/image [delete]
func (h *UploadHandler) DeleteImage(c *gin.Context) {
	var req deleteImageRequest
	// Body is optional; the ID may come as a query parameter instead.
	_ = c.ShouldBindJSON(&req)
	if req.PublicID == "" {
		req.PublicID = c.Query("publicId")
	}

	if err := h.uploadUC.DeleteImage(c.Request.Context(), req.PublicID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Image deleted", nil)
}

// ImportRepo godoc
// @Summary      Import GitHub Repository
// @Description  Fetch repository metadata and return a prefilled project payload. Nothing is persisted.
// @Tags         upload
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        repo  body      importRepoRequest  true  "Repository URL"
// @Success      200   {object}  response.Response{data=domain.RepoImport}
// @Failure      400   {object}  response.Response
// @Router       /upload/github [post]
func (h *UploadHandler) ImportRepo(c *gin.Context) {
	var req importRepoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	payload, err := h.importUC.ImportRepo(c.Request.Context(), req.GithubURL)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Repository imported", payload)
}

// ListUserRepos godoc
// @Summary      List User Repositories
// @Description  List a GitHub user's public repositories for the import picker.
// @Tags         upload
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true   "GitHub username"
// @Param        sort      query     string  false  "Sort order (updated, created, pushed, full_name)"
// @Param        per_page  query     int     false  "Page size (default 10)"
// @Success      200       {object}  response.Response{data=[]domain.RepoSummary}
// @Failure      400       {object}  response.Response
// @Router       /upload/github/repos/{username} [get]
func (h *UploadHandler) ListUserRepos(c *gin.Context) {
	perPage, _ := strconv.Atoi(c.Query("per_page"))

	repos, err := h.importUC.ListUserRepos(c.Request.Context(), c.Param("username"), c.Query("sort"), perPage)
	if err != nil {
		c.Error(err)
		return
	}
	response.List(c, http.StatusOK, len(repos), repos)
}
