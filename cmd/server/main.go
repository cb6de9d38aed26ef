package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-reception-backend/internal/config"
	"hospital-reception-backend/internal/database"
	"hospital-reception-backend/internal/dataset"
	"hospital-reception-backend/internal/handler"
	"hospital-reception-backend/internal/logger"
	"hospital-reception-backend/internal/metrics"
	"hospital-reception-backend/internal/middleware"
	"hospital-reception-backend/internal/repository"
	"hospital-reception-backend/internal/tools"
	"hospital-reception-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const serviceName = "hospital-reception-backend"

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()

	// 2. Initialize logger
	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, serviceName)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()
	log.Info("Configuration loaded successfully")

	// 3. Initialize service token utilities
	utils.InitJWT(cfg.Auth.ServiceTokenSecret, cfg.Auth.ServiceTokenExpiry)
	if !cfg.Auth.Enabled() {
		log.Warn("No service credentials configured, API is open")
	}

	// 4. Load datasets into repositories
	mapping, err := dataset.LoadLocationMapping(cfg.Data.LocationMappingPath)
	if err != nil {
		if mapping == nil {
			log.Fatal("Failed to load location mapping", zap.Error(err))
		}
		log.Warn("Location mapping unreadable, using defaults", zap.Error(err))
	}

	metricRepo, err := repository.LoadHospitalMetrics(dataset.OpenSource(cfg.Data.HospitalPath), mapping, cfg.Data.MigrateOnLoad, log)
	if err != nil {
		log.Fatal("Failed to load hospital data", zap.Error(err))
	}
	departmentRepo, err := repository.LoadDepartments(dataset.OpenSource(cfg.Data.DepartmentPath), log)
	if err != nil {
		log.Fatal("Failed to load department data", zap.Error(err))
	}
	doctorRepo, err := repository.LoadDoctors(dataset.OpenSource(cfg.Data.DoctorPath), log)
	if err != nil {
		log.Fatal("Failed to load doctor data", zap.Error(err))
	}
	patientRepo, err := repository.LoadPatients(dataset.OpenSource(cfg.Data.PatientPath), log)
	if err != nil {
		log.Fatal("Failed to load patient data", zap.Error(err))
	}

	metrics.SetDatasetRecords(metricRepo.Dataset(), metricRepo.Count())
	metrics.SetDatasetRecords(departmentRepo.Dataset(), departmentRepo.Count())
	metrics.SetDatasetRecords(doctorRepo.Dataset(), doctorRepo.Count())
	metrics.SetDatasetRecords(patientRepo.Dataset(), patientRepo.Count())
	log.Info("Datasets loaded",
		zap.Int("hospital_records", metricRepo.Count()),
		zap.Int("departments", departmentRepo.Count()),
		zap.Int("doctors", doctorRepo.Count()),
		zap.Int("patients", patientRepo.Count()),
	)

	// 5. Initialize services and the tool registry
	svc, err := tools.NewServices(metricRepo, departmentRepo, doctorRepo, patientRepo, cfg.Cache.DistanceCacheSize, log)
	if err != nil {
		log.Fatal("Failed to initialize services", zap.Error(err))
	}
	registry := tools.NewRegistry(svc, log)

	// 6. Mirror datasets into MySQL when enabled
	if cfg.Database.Enabled {
		if db, err := database.Connect(cfg, log); err != nil {
			log.Error("Database mirror disabled", zap.Error(err))
		} else {
			snapshotRepo := repository.NewSnapshotRepo(db)
			if err := snapshotRepo.AutoMigrate(); err != nil {
				log.Error("Failed to migrate mirror tables", zap.Error(err))
			} else {
				snap := repository.Snapshot{
					Metrics:     metricRepo.All(),
					Departments: departmentRepo.All(),
					Doctors:     doctorRepo.All(),
					Patients:    patientRepo.All(),
				}
				if err := snapshotRepo.ReplaceAll(context.Background(), snap); err != nil {
					log.Error("Failed to mirror datasets", zap.Error(err))
				}
				registry.SetRecorder(repository.NewQueryLogRepo(db))
			}
		}
	}

	// 7. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 8. Setup Gin router
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.Metrics())

	// 9. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": serviceName,
		})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api/v1")
	api.Use(middleware.ServiceAuth(cfg.Auth))
	handler.RegisterRoutes(api, svc, registry)

	// 10. Setup graceful shutdown
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("Server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited")
}
