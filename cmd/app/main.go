package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	catalogfx "caelio/cmd/fx/catalog_fx"
	"caelio/cmd/fx/controllers_fx"
	quizfx "caelio/cmd/fx/quiz_fx"
	sessionfx "caelio/cmd/fx/session_fx"
	"caelio/internal/api/controllers"
	"caelio/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		catalogfx.Module,
		quizfx.Module,
		sessionfx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8000"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	metaController *controllers.MetaController,
	questionsController *controllers.QuestionsController,
	personalityController *controllers.PersonalityController,
	recommendationController *controllers.RecommendationController,
	sessionController *controllers.SessionController,
	booksController *controllers.BooksController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		metaController,
		questionsController,
		personalityController,
		recommendationController,
		sessionController,
		booksController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	metaController *controllers.MetaController,
	questionsController *controllers.QuestionsController,
	personalityController *controllers.PersonalityController,
	recommendationController *controllers.RecommendationController,
	sessionController *controllers.SessionController,
	booksController *controllers.BooksController) {

	r.GET("/", metaController.Root)
	r.GET("/health", metaController.Health)
	r.GET("/groups", metaController.Groups)
	r.GET("/stats", metaController.Stats)

	r.GET("/questions", questionsController.ListQuestions)
	r.GET("/questions/:id", questionsController.GetQuestion)

	r.POST("/analyze", personalityController.Analyze)
	r.POST("/analyze-professional", personalityController.AnalyzeProfessional)

	r.POST("/recommend", recommendationController.Recommend)
	r.POST("/discover", recommendationController.Discover)
	r.POST("/professional", recommendationController.Professional)

	r.GET("/books/:id", booksController.GetBook)

	sessionsGroup := r.Group("/sessions")
	sessionsGroup.POST("", sessionController.StartSession)
	sessionsGroup.GET("/:id", sessionController.GetSession)
	sessionsGroup.POST("/:id/answers", sessionController.SubmitAnswer)
	sessionsGroup.GET("/:id/result", sessionController.Result)
}
