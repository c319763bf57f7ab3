package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"english_edu_backend/internal/config"
	"english_edu_backend/internal/controller"
	"english_edu_backend/internal/repository"
	"english_edu_backend/internal/service"
	"english_edu_backend/pkg/database"
	"english_edu_backend/pkg/logger"
	"english_edu_backend/pkg/monitoring"
	"english_edu_backend/pkg/security"
	"english_edu_backend/pkg/tracing"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	learner    *repository.LearnerRepository
	record     *repository.ActivityRecordRepository
	vocabulary *repository.VocabularyRepository
	snapshot   *repository.AssessmentSnapshotRepository
}

type services struct {
	storage    *service.StorageService
	learner    *service.LearnerService
	assessment *service.AssessmentService
	practice   *service.PracticeService
	vocabulary *service.VocabularyService
}

type controllers struct {
	learner    *controller.LearnerController
	assessment *controller.AssessmentController
	practice   *controller.PracticeController
	vocabulary *controller.VocabularyController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 热更新可在线调整的配置（评估门槛表、统计窗口等）
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config.Assessment = cfg.Assessment
	a.Config.RateLimit = cfg.RateLimit
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("配置热更新完成")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		learner:    repository.NewLearnerRepository(db),
		record:     repository.NewActivityRecordRepository(db),
		vocabulary: repository.NewVocabularyRepository(db),
		snapshot:   repository.NewAssessmentSnapshotRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.learner = service.NewLearnerService(repos.learner, repos.record)
	s.assessment = service.NewAssessmentService(repos.record, repos.snapshot, rdb, cfg)
	s.practice = service.NewPracticeService(repos.record, repos.learner, s.storage, s.assessment, cfg)
	s.vocabulary = service.NewVocabularyService(repos.vocabulary, db)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		learner:    controller.NewLearnerController(s.learner),
		assessment: controller.NewAssessmentController(s.assessment),
		practice:   controller.NewPracticeController(s.practice),
		vocabulary: controller.NewVocabularyController(s.vocabulary),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 10000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("english-learning-platform", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
