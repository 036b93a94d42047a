package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/controllers"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	contactController *controllers.ContactController,
	directoryController *controllers.DirectoryController,
	referenceController *controllers.ReferenceController,
	recommendationController *controllers.RecommendationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		profile := authenticated.Group("/profile")
		{
			profile.GET("", profileController.GetMyProfile)
			profile.PUT("", profileController.UpdateMyProfile)
		}

		contacts := authenticated.Group("/contacts")
		{
			contacts.GET("", contactController.GetMyContact)
			contacts.PUT("", contactController.SaveMyContact)
		}

		authenticated.GET("/directory", directoryController.ListMembers)

		// Reference lookups that populate the profile forms
		authenticated.GET("/industries", referenceController.ListIndustries)
		authenticated.GET("/job-locations", referenceController.ListJobLocations)
		authenticated.GET("/degree-concentrations", referenceController.ListDegreeConcentrations)

		authenticated.POST("/recommendations", recommendationController.GenerateRecommendations)
	}

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
