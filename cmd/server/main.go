// Package main 是应用程序的入口点。
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"internhub-go/internal/config"
	"internhub-go/internal/handler"
	"internhub-go/internal/middleware"
	"internhub-go/internal/model"
	"internhub-go/internal/repository"
	"internhub-go/internal/seed"
	"internhub-go/internal/service"
	"internhub-go/pkg/database"
	"internhub-go/pkg/es"
	"internhub-go/pkg/events"
	"internhub-go/pkg/kafka"
	"internhub-go/pkg/log"
	"internhub-go/pkg/storage"
	"internhub-go/pkg/token"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. 初始化配置
	config.Init("./configs/config.yaml")
	cfg := config.Conf

	// 2. 初始化日志记录器
	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync() // 确保在程序退出时刷新所有缓冲的日志条目
	log.Info("日志记录器初始化成功")

	// 3. 初始化数据库和 Redis
	database.InitMySQL(cfg.Database.MySQL.DSN)
	database.InitRedis(cfg.Database.Redis.Addr, cfg.Database.Redis.Password, cfg.Database.Redis.DB)
	storage.InitMinIO(cfg.MinIO)
	if err := es.InitES(cfg.Elasticsearch); err != nil {
		log.Errorf("es 初始化失败 %s", err)
		return
	}
	kafka.InitProducer(cfg.Kafka)

	// 4. 选择持久化后端并初始化 Repository
	var kv repository.KVStore
	switch cfg.Storage.Backend {
	case "mysql":
		gormKV, err := repository.NewGormKVStore(database.DB)
		if err != nil {
			log.Fatal("初始化 MySQL 持久化后端失败", err)
		}
		kv = gormKV
	default:
		kv = repository.NewRedisKVStore(database.RDB)
	}
	sessionRepo := repository.NewSessionRepository(kv)
	internshipRepo := repository.NewInternshipRepository(kv)
	courseRepo := repository.NewCourseRepository(kv)
	resumeRepo := repository.NewResumeRepository(kv)
	notificationRepo := repository.NewNotificationRepository(database.RDB)

	// 5. 初始化 Service (依赖注入)
	jwtManager := token.NewJWTManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpireHours, cfg.JWT.RefreshTokenExpireDays)
	delay := time.Duration(cfg.Platform.SimulatedLatencyMS) * time.Millisecond
	previewExpiry := time.Duration(cfg.Platform.PreviewExpireMinutes) * time.Minute

	accountService := service.NewAccountService(sessionRepo, jwtManager, delay)
	searchService := service.NewSearchService(es.ESClient, cfg.Elasticsearch.IndexName, es.IndexInternship)

	publish := service.EventPublisher(func(evt events.PlatformEvent) error {
		return kafka.ProduceEvent(evt)
	})
	internshipService, err := service.NewInternshipService(internshipRepo, publish, searchService)
	if err != nil {
		log.Fatal("初始化岗位目录失败", err)
	}
	courseService, err := service.NewCourseService(courseRepo, publish)
	if err != nil {
		log.Fatal("初始化课程目录失败", err)
	}

	// 助手的用户群体跟随恢复出的会话身份
	audience, name := seed.AudienceGuest, ""
	if user := accountService.CurrentUser(); user != nil {
		name = user.Name
		if user.Role == model.RoleEmployer {
			audience = seed.AudienceEmployer
		} else {
			audience = seed.AudienceStudent
		}
	}
	assistantService := service.NewAssistantService(audience, name, delay, seed.MatchReply)

	previewStore := service.NewMinioPreviewStore(cfg.MinIO, previewExpiry)
	resumeService := service.NewResumeService(resumeRepo, previewStore)
	interviewService := service.NewInterviewService()
	notificationService := service.NewNotificationService(notificationRepo)

	// 6. 启动后台 Kafka 消费者，将平台事件转化为用户通知
	go kafka.StartConsumer(cfg.Kafka, notificationService)

	// 启动时把完整目录刷进搜索索引，保证索引与目录一致
	go func() {
		ctx := context.Background()
		for _, internship := range internshipService.ListInternships() {
			if err := searchService.IndexInternship(ctx, internship); err != nil {
				log.Warnf("启动索引刷新失败: %s, error: %v", internship.ID, err)
			}
		}
	}()

	// 7. 设置 Gin 模式并创建路由引擎
	gin.SetMode(cfg.Server.Mode)
	r := gin.New() // 使用 New() 创建一个不带默认中间件的引擎
	// 添加我们自定义的日志中间件和 Gin 的 Recovery 中间件
	r.Use(middleware.RequestLogger(), gin.Recovery())

	// 8. 注册路由
	accountHandler := handler.NewAccountHandler(accountService, assistantService, jwtManager)
	internshipHandler := handler.NewInternshipHandler(internshipService, searchService)
	courseHandler := handler.NewCourseHandler(courseService)
	assistantHandler := handler.NewAssistantHandler(assistantService, jwtManager)
	resumeHandler := handler.NewResumeHandler(resumeService)
	interviewHandler := handler.NewInterviewHandler(interviewService)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	apiV1 := r.Group("/api/v1")
	{
		// Auth 路由组
		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", accountHandler.Login)
			auth.POST("/register", accountHandler.Register)
			auth.POST("/refreshToken", accountHandler.RefreshToken)

			authed := auth.Group("/")
			authed.Use(middleware.AuthMiddleware(jwtManager))
			{
				authed.POST("/logout", accountHandler.Logout)
				authed.GET("/me", accountHandler.Me)
			}
		}

		// Internship 路由组：目录与搜索公开，其余需要认证
		internships := apiV1.Group("/internships")
		{
			internships.GET("", internshipHandler.List)
			internships.GET("/filters", internshipHandler.Filters)
			internships.GET("/search", internshipHandler.Search)
			internships.GET("/:id", internshipHandler.Get)

			student := internships.Group("/")
			student.Use(middleware.AuthMiddleware(jwtManager), middleware.RequireRole("student"))
			{
				student.POST("/:id/apply", internshipHandler.Apply)
				student.POST("/:id/save", internshipHandler.Save)
				student.DELETE("/:id/save", internshipHandler.Unsave)
			}

			employer := internships.Group("/")
			employer.Use(middleware.AuthMiddleware(jwtManager), middleware.RequireRole("employer"))
			{
				employer.POST("", internshipHandler.Create)
				employer.GET("/:id/applications", internshipHandler.InternshipApplications)
			}
		}

		// 学生视角的关联数据
		me := apiV1.Group("/me")
		me.Use(middleware.AuthMiddleware(jwtManager))
		{
			me.GET("/applications", internshipHandler.Applications)
			me.GET("/saved-internships", internshipHandler.Saved)
			me.GET("/internships", internshipHandler.EmployerInternships)
			me.GET("/enrolled-courses", courseHandler.Enrolled)
			me.GET("/completed-courses", courseHandler.Completed)
			me.GET("/notifications", notificationHandler.List)
		}

		// Application 状态更新（雇主）
		applications := apiV1.Group("/applications")
		applications.Use(middleware.AuthMiddleware(jwtManager), middleware.RequireRole("employer"))
		{
			applications.PUT("/:id/status", internshipHandler.UpdateApplicationStatus)
		}

		// Course 路由组
		courses := apiV1.Group("/courses")
		{
			courses.GET("", courseHandler.List)
			courses.GET("/:id", courseHandler.Get)

			authed := courses.Group("/")
			authed.Use(middleware.AuthMiddleware(jwtManager))
			{
				authed.POST("/:id/enroll", courseHandler.Enroll)
				authed.POST("/:id/complete", courseHandler.Complete)
			}
		}

		// Assistant 路由组
		assistant := apiV1.Group("/assistant")
		{
			assistant.GET("/messages", assistantHandler.Messages)
			assistant.POST("/messages", assistantHandler.Send)
			assistant.POST("/reset", assistantHandler.Reset)
			assistant.POST("/toggle", assistantHandler.Toggle)
		}
		r.GET("/assistant/:token", assistantHandler.Handle)

		// Resume 路由组，需要认证
		resume := apiV1.Group("/resume")
		resume.Use(middleware.AuthMiddleware(jwtManager))
		{
			resume.PUT("", resumeHandler.Upload)
			resume.GET("", resumeHandler.Get)
			resume.DELETE("", resumeHandler.Delete)
		}

		// Interview 路由组，需要认证
		interviews := apiV1.Group("/interviews")
		interviews.Use(middleware.AuthMiddleware(jwtManager))
		{
			interviews.POST("", interviewHandler.Generate)
			interviews.GET("/:id", interviewHandler.Get)
			interviews.POST("/:id/answers", interviewHandler.SubmitAnswer)
			interviews.POST("/:id/complete", interviewHandler.Complete)
		}
	}

	// 启动 HTTP 服务器并实现优雅停机
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("服务启动于 %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("服务启动失败", err)
		}
	}()

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("收到停机信号，正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("服务关闭失败", err)
	}

	// 释放简历预览句柄
	if err := resumeService.Close(); err != nil {
		log.Error("释放简历预览句柄失败", err)
	}
	log.Info("服务已退出")
}
