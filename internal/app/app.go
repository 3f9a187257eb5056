package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"xiuxian_game_backend/internal/config"
	"xiuxian_game_backend/internal/controller"
	"xiuxian_game_backend/internal/repository"
	"xiuxian_game_backend/internal/service"
	"xiuxian_game_backend/pkg/database"
	"xiuxian_game_backend/pkg/logger"
	"xiuxian_game_backend/pkg/monitoring"
	"xiuxian_game_backend/pkg/security"
	"xiuxian_game_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	stopBackground  chan struct{}
	configCallbacks []func(*config.Config)
}

type repositories struct {
	player       *repository.PlayerRepository
	character    *repository.CharacterRepository
	session      *repository.SessionRepository
	breakthrough *repository.BreakthroughRepository
	skill        *repository.SkillRepository
}

type services struct {
	auth         *service.AuthService
	storage      *service.StorageService
	character    *service.CharacterService
	cultivation  *service.CultivationService
	experience   *service.ExperienceService
	breakthrough *service.BreakthroughService
	skill        *service.SkillService
	leaderboard  *service.LeaderboardService
}

type controllers struct {
	auth         *controller.AuthController
	character    *controller.CharacterController
	cultivation  *controller.CultivationController
	breakthrough *controller.BreakthroughController
	skill        *controller.SkillController
	leaderboard  *controller.LeaderboardController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// OnConfigReload 配置热更新入口。只覆盖可以安全动态调整的项，
// 数据库、端口等需要重启才生效。
func (a *App) OnConfigReload(newCfg *config.Config) {
	a.Config.Game = newCfg.Game
	a.Config.RateLimit = newCfg.RateLimit
	a.Config.CORS = newCfg.CORS
	for _, cb := range a.configCallbacks {
		cb(newCfg)
	}
	logger.Log.Info("config reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		player:       repository.NewPlayerRepository(db),
		character:    repository.NewCharacterRepository(db),
		session:      repository.NewSessionRepository(db),
		breakthrough: repository.NewBreakthroughRepository(db),
		skill:        repository.NewSkillRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) (*services, error) {
	s := &services{}

	provider, err := service.NewStorageProvider(&cfg.Storage)
	if err != nil {
		return nil, err
	}
	s.storage = service.NewStorageService(provider, repos.player)

	s.auth = service.NewAuthService(repos.player, cfg)
	s.leaderboard = service.NewLeaderboardService(repos.character, rdb)
	s.character = service.NewCharacterService(repos.character, s.leaderboard)
	s.experience = service.NewExperienceService(repos.character, s.leaderboard, rdb)
	s.cultivation = service.NewCultivationService(repos.character, repos.session, s.experience, rdb)
	s.skill = service.NewSkillService(repos.character, repos.skill)
	s.breakthrough = service.NewBreakthroughService(
		repos.character,
		repos.breakthrough,
		repos.skill,
		s.experience,
		s.leaderboard,
		service.NewRandomSource(),
	)

	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth, s.storage),
		character:    controller.NewCharacterController(s.character, s.experience),
		cultivation:  controller.NewCultivationController(s.character, s.cultivation),
		breakthrough: controller.NewBreakthroughController(s.character, s.breakthrough),
		skill:        controller.NewSkillController(s.character, s.skill),
		leaderboard:  controller.NewLeaderboardController(s.character, s.leaderboard),
		health:       controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startBackgroundTasks 周期性结算所有修炼中角色的修为
func (a *App) startBackgroundTasks(s *services, cfg *config.Config) {
	interval := time.Duration(cfg.Game.CheckpointIntervalSeconds) * time.Second

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := s.cultivation.CheckpointAllCultivating(); err != nil {
					logger.Log.Error("cultivation checkpoint sweep failed", zap.Error(err))
				}
			case <-a.stopBackground:
				return
			}
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.Init(cfg.Server.Mode)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	// release 模式下默认不自动迁移，需显式传 -migrate
	migrate := cfg.ForceMigrate || cfg.Server.Mode != "release"
	db, err := database.InitDB(&cfg.Database, migrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config:         cfg,
		DB:             db,
		Redis:          rdb,
		stopBackground: make(chan struct{}),
	}

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	app.services = services
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		_, err := tracing.InitTracer("xiuxian-game", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	close(a.stopBackground)

	// 停服前结算一次，避免丢失修炼中角色的未落库收益
	if err := a.services.cultivation.CheckpointAllCultivating(); err != nil {
		logger.Log.Error("final cultivation checkpoint failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
