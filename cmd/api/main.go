package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/corplearn/training-admin-api/api/swagger"
	"github.com/corplearn/training-admin-api/internal/handler"
	"github.com/corplearn/training-admin-api/internal/middleware"
	"github.com/corplearn/training-admin-api/internal/repository"
	"github.com/corplearn/training-admin-api/internal/service"
	"github.com/corplearn/training-admin-api/pkg/cache"
	"github.com/corplearn/training-admin-api/pkg/config"
	"github.com/corplearn/training-admin-api/pkg/database"
	"github.com/corplearn/training-admin-api/pkg/logger"
	"github.com/corplearn/training-admin-api/pkg/mailer"
	corsmiddleware "github.com/corplearn/training-admin-api/pkg/middleware/cors"
	reqidmiddleware "github.com/corplearn/training-admin-api/pkg/middleware/requestid"
)

// @title Training Admin API
// @version 0.1.0
// @description Corporate training administration backend
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	rdb, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to redis", "error", err)
	}
	defer rdb.Close()

	validate := validator.New()
	mail := mailer.New(cfg.Mail)

	studentRepo := repository.NewStudentRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	sessions := service.NewSessionStore(rdb, cfg.Session.TTL)
	catalogEvents := service.NewCatalogEvents(rdb)
	dashboardCache := service.NewDashboardCache(rdb, cfg.Dashboard.CacheTTL)

	metricsSvc := service.NewMetricsService()
	studentSvc := service.NewStudentService(studentRepo, validate, logr)
	attendanceSvc := service.NewAttendanceService(studentRepo, validate, logr)
	marksSvc := service.NewMarksService(studentRepo, logr)
	catalogSvc := service.NewCatalogService(courseRepo, catalogEvents, validate, logr)
	summarySvc := service.NewSummaryService(companyRepo, studentRepo, mail, logr)
	dashboardSvc := service.NewDashboardService(studentRepo, companyRepo, noteRepo, dashboardCache, logr)
	noteSvc := service.NewNoteService(noteRepo, cfg.Notes, logr)

	studentHandler := handler.NewStudentHandler(studentSvc, dashboardSvc)
	attendanceHandler := handler.NewAttendanceHandler(attendanceSvc, dashboardSvc)
	marksHandler := handler.NewMarksHandler(marksSvc, dashboardSvc)
	catalogHandler := handler.NewCatalogHandler(catalogSvc, catalogEvents)
	summaryHandler := handler.NewSummaryHandler(summarySvc, metricsSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc, noteSvc, metricsSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.WithResponseMeta())
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "postgres": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	company := middleware.Company(middleware.CompanyResolver{
		Companies:  companyRepo,
		Sessions:   sessions,
		CookieName: cfg.Session.CookieName,
		CookieTTL:  int(cfg.Session.TTL.Seconds()),
	})

	admin := api.Group("", company)
	{
		admin.GET("/students", studentHandler.List)
		admin.GET("/students/:id", studentHandler.Get)
		admin.PUT("/students/:id", studentHandler.Save)
		admin.DELETE("/students/:id", studentHandler.Delete)

		admin.GET("/attendance/sheet", attendanceHandler.Sheet)
		admin.POST("/attendance", attendanceHandler.Save)

		admin.GET("/marks/columns", marksHandler.Columns)
		admin.POST("/marks/columns/next", marksHandler.NextColumn)
		admin.GET("/marks/sheet", marksHandler.Sheet)
		admin.PUT("/marks/students/:id", marksHandler.Save)

		admin.GET("/catalog/courses", catalogHandler.ListCourses)
		admin.POST("/catalog/courses", catalogHandler.CreateCourse)
		admin.GET("/catalog/courses/:courseId/modules", catalogHandler.ListModules)
		admin.POST("/catalog/courses/:courseId/modules", catalogHandler.CreateModule)
		admin.PUT("/catalog/courses/:courseId/modules/:moduleId", catalogHandler.UpdateModule)
		admin.DELETE("/catalog/courses/:courseId/modules/:moduleId", catalogHandler.DeleteModule)
		admin.GET("/catalog/watch", catalogHandler.Watch)

		admin.POST("/summaries/attendance/share", summaryHandler.ShareAttendance)
		admin.POST("/summaries/marks/share", summaryHandler.ShareMarks)
		admin.GET("/summaries/attendance/preview", summaryHandler.PreviewAttendance)
		admin.GET("/summaries/marks/preview", summaryHandler.PreviewMarks)
		admin.GET("/summaries/attendance/export", summaryHandler.ExportAttendance)
		admin.GET("/summaries/marks/export", summaryHandler.ExportMarks)
	}

	// Dashboard routes identify the tenant in the path so read-only links
	// work without a session.
	api.GET("/dashboard/:companyCode/students/:studentId", dashboardHandler.Get)
	api.GET("/dashboard/:companyCode/notes/:noteId/view", dashboardHandler.ViewNote)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
