package main

import (
	"fmt"
	"net/http"
	"time"

	"pata-go/internal/api/handler"
	"pata-go/internal/api/middleware"
	"pata-go/internal/api/router"
	"pata-go/internal/config"
	"pata-go/internal/infra/database"
	infraES "pata-go/internal/infra/elasticsearch"
	infraKafka "pata-go/internal/infra/kafka"
	"pata-go/internal/infra/mailer"
	infraMinio "pata-go/internal/infra/minio"
	infraRedis "pata-go/internal/infra/redis"
	"pata-go/internal/model"
	"pata-go/internal/repository"
	"pata-go/internal/service"
	"pata-go/pkg/geo"
	"pata-go/pkg/logger"

	_ "pata-go/api/openapi"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title Pata-Go API
// @version 1.0
// @description 宠物领养平台 API 服务
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@pata.app

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host 127.0.0.1:8000
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 输入格式: Bearer {token}

func main() {
	// 加载配置文件
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 初始化日志系统
	if err := logger.Init(
		cfg.Log.Level,
		cfg.Log.Format,
		cfg.Log.Output,
		cfg.Log.FilePath,
	); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 初始化数据库
	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	// 自动迁移数据库表
	if err := database.AutoMigrate(
		&model.User{},
		&model.PetType{},
		&model.BreedType{},
		&model.Animal{},
		&model.Favorite{},
	); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	// 初始化Redis（验证码存储）
	if err := infraRedis.Init(&cfg.Redis); err != nil {
		logger.Fatal("Failed to init redis", zap.Error(err))
	}
	defer infraRedis.Close()

	// 初始化MinIO（宠物图片存储）
	if err := infraMinio.Init(&cfg.MinIO); err != nil {
		logger.Fatal("Failed to init minio", zap.Error(err))
	}

	// 初始化Kafka生产者（宠物变更事件）
	if err := infraKafka.InitProducer(&cfg.Kafka); err != nil {
		logger.Fatal("Failed to init kafka producer", zap.Error(err))
	}
	defer infraKafka.CloseProducer()

	// 初始化 Elasticsearch（可选，失败则联想查询降级到 DB）
	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Warn("Elasticsearch init failed, suggest will fallback to DB", zap.Error(err))
	} else {
		defer infraES.Close()
		if err := infraES.InitIndexes(); err != nil {
			logger.Warn("Elasticsearch index init failed", zap.Error(err))
		}
	}

	// 设置Gin模式
	gin.SetMode(cfg.App.Mode)

	// 创建Gin路由器（不使用默认中间件）
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())

	// 距离注解参考点，从配置读取，缺省用默认值
	origin := geo.DefaultOrigin
	if cfg.Geo.OriginLat != 0 || cfg.Geo.OriginLng != 0 {
		origin = geo.Point{Lat: cfg.Geo.OriginLat, Lng: cfg.Geo.OriginLng}
	}

	// 初始化依赖（Repository -> Service -> Handler）
	db := database.Get()
	userRepo := repository.NewUserRepository(db)
	animalRepo := repository.NewAnimalRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	taxonomyRepo := repository.NewTaxonomyRepository(db)

	var publisher service.EventPublisher
	if topic, ok := cfg.Kafka.Topics["animal_events"]; ok {
		publisher = infraKafka.NewPublisher(topic)
	}

	otpStore := infraRedis.NewOTPStore(infraRedis.Get())
	otpMailer := mailer.New(&cfg.Mail)

	authService := service.NewAuthService(userRepo, otpStore, otpMailer)
	animalService := service.NewAnimalService(animalRepo, favoriteRepo, taxonomyRepo, publisher, origin)
	favoriteService := service.NewFavoriteService(favoriteRepo, animalRepo)
	taxonomyService := service.NewTaxonomyService(taxonomyRepo)
	searchService := service.NewSearchService(animalRepo)

	authHandler := handler.NewAuthHandler(authService)
	animalHandler := handler.NewAnimalHandler(animalService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService, animalService)
	taxonomyHandler := handler.NewTaxonomyHandler(taxonomyService)
	searchHandler := handler.NewSearchHandler(searchService)

	// 注册基础路由
	r.GET("/healthz", healthCheckHandler)
	r.GET("/", rootHandler)

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册业务路由
	router.Setup(r, authHandler, animalHandler, favoriteHandler, taxonomyHandler, searchHandler)

	// 启动HTTP服务器
	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
	)
	logger.Info("Configuration loaded",
		zap.String("database", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)),
		zap.String("redis", cfg.Redis.Addr()),
		zap.String("minio", cfg.MinIO.Endpoint),
		zap.Float64("origin_lat", origin.Lat),
		zap.Float64("origin_lng", origin.Lng),
	)

	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// healthCheckHandler 健康检查接口
func healthCheckHandler(c *gin.Context) {
	cfg := config.Get()

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Service is healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   cfg.App.Name,
		"version":   cfg.App.Version,
		"mode":      cfg.App.Mode,
	})
}

// rootHandler 根路径处理器
func rootHandler(c *gin.Context) {
	cfg := config.Get()

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome to %s API", cfg.App.Name),
		"project": cfg.App.Name,
		"version": cfg.App.Version,
		"mode":    cfg.App.Mode,
		"docs":    fmt.Sprintf("http://localhost:%d/swagger/index.html", cfg.App.Port),
	})
}
