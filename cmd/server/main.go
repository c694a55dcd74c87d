package main

import (
	"log"

	"github.com/Michiaki-Hirayama/bounenkai-jeopardy/internal/config"
	"github.com/Michiaki-Hirayama/bounenkai-jeopardy/internal/database"
	"github.com/Michiaki-Hirayama/bounenkai-jeopardy/internal/game"
	"github.com/Michiaki-Hirayama/bounenkai-jeopardy/internal/handlers"
	"github.com/Michiaki-Hirayama/bounenkai-jeopardy/internal/middleware"
	"github.com/Michiaki-Hirayama/bounenkai-jeopardy/internal/services"
	"github.com/Michiaki-Hirayama/bounenkai-jeopardy/internal/ws"

	_ "github.com/Michiaki-Hirayama/bounenkai-jeopardy/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Bounenkai Jeopardy API
// @version         1.0
// @description     Jeopardy-style party trivia board with an administrative editor
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)
	database.SeedAdmin(db, cfg)

	hub := ws.NewHub()

	authService := services.NewAuthService(db, cfg.JWTSecret)
	contentService := services.NewContentService(db)
	mediaService := services.NewMediaService(db)
	backupService := services.NewBackupService(db)
	boardService := game.NewBoardService(db)
	sessionManager := game.NewSessionManager()

	authHandler := handlers.NewAuthHandler(authService)
	categoryHandler := handlers.NewCategoryHandler(contentService)
	questionHandler := handlers.NewQuestionHandler(contentService)
	mediaHandler := handlers.NewMediaHandler(mediaService)
	backupHandler := handlers.NewBackupHandler(backupService)
	gameHandler := handlers.NewGameHandler(boardService, sessionManager, hub)
	wsHandler := handlers.NewWSHandler(hub, sessionManager)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/board/:id", wsHandler.HandleBoardSocket)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}

		categories := api.Group("/categories")
		categories.Use(middleware.JWTAuth(authService))
		{
			categories.GET("", categoryHandler.ListCategories)
			categories.POST("", categoryHandler.CreateCategory)
			categories.POST("/reorder", categoryHandler.ReorderCategories)
			categories.PUT("/:id", categoryHandler.RenameCategory)
			categories.DELETE("/:id", categoryHandler.DeleteCategory)
		}

		questions := api.Group("/questions")
		questions.Use(middleware.JWTAuth(authService))
		{
			questions.GET("", questionHandler.ListQuestions)
			questions.POST("", questionHandler.CreateQuestion)
			questions.GET("/:id", questionHandler.GetQuestion)
			questions.PUT("/:id", questionHandler.UpdateQuestion)
			questions.DELETE("/:id", questionHandler.DeleteQuestion)
		}

		media := api.Group("/media")
		media.Use(middleware.JWTAuth(authService))
		{
			media.POST("", mediaHandler.Upload)
			media.GET("/:id", mediaHandler.GetMedia)
			media.DELETE("/:id", mediaHandler.DeleteMedia)
		}

		backup := api.Group("/backup")
		backup.Use(middleware.JWTAuth(authService))
		{
			backup.GET("/export", backupHandler.Export)
			backup.POST("/import", backupHandler.Import)
			backup.POST("/reset", backupHandler.Reset)
		}

		api.GET("/board", middleware.JWTAuth(authService), gameHandler.GetBoard)

		sessions := api.Group("/game/sessions")
		sessions.Use(middleware.JWTAuth(authService))
		{
			sessions.POST("", gameHandler.CreateSession)
			sessions.GET("/:id/board", gameHandler.GetSessionBoard)
			sessions.POST("/:id/pick", gameHandler.PickCell)
			sessions.POST("/:id/reveal", gameHandler.RevealAnswer)
			sessions.POST("/:id/reset", gameHandler.ResetSession)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
