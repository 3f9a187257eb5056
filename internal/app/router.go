package app

import (
	"xiuxian_game_backend/docs"
	"xiuxian_game_backend/internal/config"
	"xiuxian_game_backend/internal/middleware"
	"xiuxian_game_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 配置注入，认证中间件从上下文取JWT密钥
	router.Use(func(ctx *gin.Context) {
		ctx.Set("config", cfg)
		ctx.Next()
	})

	// 公共路由（无需登录）
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/sects", c.character.Sects)
		public.GET("/realms", c.character.Realms)
		public.GET("/leaderboard", c.leaderboard.Top)
		public.GET("/leaderboard/realms", c.leaderboard.Distribution)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware())
	{
		authGroup.GET("/profile", c.auth.Profile)
		authGroup.POST("/profile/avatar", c.auth.UploadAvatar)

		authGroup.POST("/characters", c.character.Create)
		authGroup.GET("/characters", c.character.List)

		ch := authGroup.Group("/characters/:id")
		{
			ch.GET("", c.character.Get)
			ch.DELETE("", c.character.Delete)
			ch.GET("/level", c.character.LevelProgress)
			ch.GET("/experience", c.character.ExpStatistics)
			ch.POST("/daily-login", c.character.DailyLogin)
			ch.GET("/rank", c.leaderboard.Rank)

			ch.GET("/cultivation", c.cultivation.Progress)
			ch.POST("/cultivation/start", c.cultivation.Start)
			ch.POST("/cultivation/stop", c.cultivation.Stop)
			ch.GET("/cultivation/offline", c.cultivation.Offline)
			ch.POST("/cultivation/offline/claim", c.cultivation.ClaimOffline)
			ch.GET("/cultivation/sessions", c.cultivation.Sessions)

			ch.GET("/breakthrough", c.breakthrough.Check)
			ch.POST("/breakthrough", c.breakthrough.Attempt)
			ch.GET("/breakthrough/history", c.breakthrough.History)

			ch.GET("/skills", c.skill.Tree)
			ch.GET("/skills/points", c.skill.Points)
			ch.GET("/skills/effects", c.skill.Effects)
			ch.POST("/skills/:skillId/unlock", c.skill.Unlock)
			ch.POST("/skills/:skillId/upgrade", c.skill.Upgrade)
		}
	}
}
