package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type hashRequest struct {
	Password string `json:"password" binding:"required"`
}

// NewAuthHandler registers the owner authentication routes. Login sits behind
// the strict per-IP limiter; the hash helper is only exposed outside
// production.
func NewAuthHandler(public, protected *gin.RouterGroup, authUC domain.AuthUsecase, cfg *config.Config) {
	handler := &AuthHandler{authUC: authUC}

	public.POST("/auth/login", middleware.LoginRateLimit(cfg), handler.Login)
	protected.GET("/auth/verify", handler.Verify)

	if !cfg.IsProduction() {
		public.POST("/auth/hash", handler.Hash)
	}
}

// Login godoc
// @Summary      Owner Login
// @Description  Exchange the owner credentials for a 24h bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      loginRequest  true  "Owner Credentials"
// @Success      200          {object}  response.Response
// @Failure      400          {object}  response.Response
// @Failure      401          {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	token, user, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

// Verify godoc
// @Summary      Verify Token
// @Description  Confirm the presented token is still valid and return the owner identity.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	email := c.GetString(string(domain.KeyUserEmail))
	role := c.GetString(string(domain.KeyUserRole))

	response.Success(c, http.StatusOK, "Token is valid", gin.H{
		"user": domain.AuthUser{Email: email, Role: role},
	})
}

// Hash godoc
// @Summary      Hash Password
// @Description  Generate a bcrypt hash for OWNER_PASSWORD_HASH. Disabled in production.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        password  body      hashRequest  true  "Password to hash"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Router       /auth/hash [post]
func (h *AuthHandler) Hash(c *gin.Context) {
	var req hashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	hash, err := h.authUC.HashPassword(req.Password)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Password hashed", gin.H{"hash": hash})
}
