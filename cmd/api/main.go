package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/launchjobs/jobboard-api/internal/auth"
	"github.com/launchjobs/jobboard-api/internal/database"
	"github.com/launchjobs/jobboard-api/internal/handlers"
	"github.com/launchjobs/jobboard-api/internal/services"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	// 2. Database Connection
	db := database.Connect()

	// 3. Initialize Core Services (Dependencies)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)
	transformer := services.NewTransformer(nil)

	// 4. Initialize Handlers
	jobHandler := handlers.NewJobHandler(jobService, transformer)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	authHandler := handlers.NewAuthHandler(db)

	// 5. Setup Router & CORS
	r := gin.Default()
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // For development only
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	// 6. Define Routes
	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		// Auth Routes
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/me", auth.Middleware(), authHandler.Me)

		// Job Routes
		jobs := api.Group("/jobs")
		{
			jobs.GET("", jobHandler.GetJobs)
			jobs.GET("/:id", jobHandler.GetJob)
			jobs.POST("", auth.Middleware(), jobHandler.CreateJob)
			jobs.PUT("/:id", auth.Middleware(), jobHandler.UpdateJob)
			jobs.DELETE("/:id", auth.Middleware(), jobHandler.DeleteJob)

			// User job management routes
			jobs.GET("/user/my-jobs", auth.Middleware(), jobHandler.GetMyJobs)
			jobs.GET("/user/my-jobs-with-applications", auth.Middleware(), jobHandler.GetMyJobsWithApplications)

			// Application Routes
			jobs.POST("/:id/apply", applicationHandler.Apply)
			jobs.GET("/:id/applications", auth.Middleware(), applicationHandler.GetApplications)
			jobs.PUT("/:id/applications/:applicationId/status", auth.Middleware(), applicationHandler.UpdateStatus)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
