package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
)

type RouterDeps struct {
	PortfolioUC   domain.PortfolioUsecase
	ProjectUC     domain.ProjectUsecase
	AchievementUC domain.AchievementUsecase
	AuthUC        domain.AuthUsecase
	UploadUC      domain.UploadUsecase
	ImportUC      domain.ImportUsecase
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.GlobalRateLimit(deps.Config))
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Root index so a bare /api hit shows something useful
	api.GET("", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "Portfolio API", gin.H{
			"endpoints": []string{
				"/api/portfolio",
				"/api/projects",
				"/api/achievements",
				"/api/auth/login",
			},
		})
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config))
	{
		NewAuthHandler(api, protected, deps.AuthUC, deps.Config)
		NewPortfolioHandler(api, protected, deps.PortfolioUC)
		NewProjectHandler(api, protected, deps.ProjectUC)
		NewAchievementHandler(api, protected, deps.AchievementUC)
		NewUploadHandler(protected, deps.UploadUC, deps.ImportUC, deps.Config)
	}

	return r
}
