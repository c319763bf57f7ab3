package app

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"english_edu_backend/docs"
	"english_edu_backend/internal/middleware"
	"english_edu_backend/pkg/monitoring"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		api.POST("/learners", c.learner.Create)
		api.GET("/learners", c.learner.List)
	}

	// 以学习者为维度的接口，统一校验学习者存在
	learner := api.Group("/learners/:learnerId")
	learner.Use(middleware.LearnerMiddleware(repos.learner))
	{
		learner.GET("", c.learner.Get)
		learner.PUT("", c.learner.Update)
		learner.GET("/records", c.learner.ListRecords)

		// 能力评估
		learner.GET("/assessment", c.assessment.GetProficiency)
		learner.GET("/assessment/overview", c.assessment.GetOverview)
		learner.GET("/assessment/history", c.assessment.GetHistory)
		learner.GET("/assessment/modules/:module", c.assessment.GetModuleAssessment)

		// 练习
		practice := learner.Group("/practice")
		{
			practice.POST("/records", c.practice.SubmitRecord)
			practice.POST("/speaking/score", c.practice.ScoreSpeaking)
			practice.POST("/speaking/audio", c.practice.UploadAudio)
			practice.POST("/writing/score", c.practice.ScoreWriting)
		}

		// 生词本
		vocabulary := learner.Group("/vocabulary")
		{
			vocabulary.POST("", c.vocabulary.AddWord)
			vocabulary.GET("", c.vocabulary.ListWords)
			vocabulary.GET("/review-queue", c.vocabulary.GetReviewQueue)
			vocabulary.GET("/:id", c.vocabulary.GetWord)
			vocabulary.POST("/:id/review", c.vocabulary.SubmitReview)
		}
	}
}
