package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/feliperb/gympoint/internal/app/controllers"
	"github.com/feliperb/gympoint/internal/app/jobs"
	appMigrations "github.com/feliperb/gympoint/internal/app/migrations"
	appRepos "github.com/feliperb/gympoint/internal/app/repositories"
	appRoutes "github.com/feliperb/gympoint/internal/app/routes"
	appServices "github.com/feliperb/gympoint/internal/app/services"
	"github.com/feliperb/gympoint/internal/config"
	"github.com/feliperb/gympoint/internal/db"
	appMiddleware "github.com/feliperb/gympoint/internal/middleware"
	pkgAuth "github.com/feliperb/gympoint/internal/pkg/auth"
	"github.com/feliperb/gympoint/internal/pkg/email"
	"github.com/feliperb/gympoint/internal/pkg/helpers"
	"github.com/feliperb/gympoint/internal/pkg/logger"
	"github.com/feliperb/gympoint/internal/pkg/queue"
	"github.com/feliperb/gympoint/internal/seed"
	"github.com/feliperb/gympoint/internal/worker"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          *appServices.AuthService
	StudentService       *appServices.StudentService
	PlanService          *appServices.PlanService
	EnrollmentService    *appServices.EnrollmentService
	CheckinService       *appServices.CheckinService
	HelpOrderService     *appServices.HelpOrderService
	UserController       *appControllers.UserController
	SessionController    *appControllers.SessionController
	StudentController    *appControllers.StudentController
	PlanController       *appControllers.PlanController
	EnrollmentController *appControllers.EnrollmentController
	CheckinController    *appControllers.CheckinController
	HelpOrderController  *appControllers.HelpOrderController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Dispatcher           *jobs.Dispatcher
	Mailer               email.Mailer
	MailQueue            *queue.Queue
	MailWorker           *worker.MailWorker
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default administrator.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seeding is not fatal, the API works without the default admin
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, the mail pipeline, services and
// controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 168*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.Mailer = email.NewSMTPMailer(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.UseTLS,
	}, lgr)

	// The mail pipeline degrades to a logging no-op when no broker is
	// configured; write endpoints keep working without RabbitMQ.
	var publisher queue.Publisher = queue.NopPublisher{Logger: lgr}
	if cfg.RabbitMQ.URL != "" {
		mailQueue, err := queue.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.MailQueue, lgr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to message broker: %w", err)
		}
		deps.MailQueue = mailQueue
		publisher = queue.NewPublisher(mailQueue)
		deps.MailWorker = worker.NewMailWorker(queue.NewConsumer(mailQueue, "gympoint-mail-worker"), deps.Mailer, lgr)
	}
	deps.Dispatcher = jobs.NewDispatcher(publisher)

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.PlanService = appServices.NewPlanService(deps.Repos.PlanRepository)
	deps.EnrollmentService = appServices.NewEnrollmentService(
		deps.Repos.EnrollmentRepository,
		deps.Repos.StudentRepository,
		deps.Repos.PlanRepository,
		deps.Dispatcher,
		lgr,
	)
	deps.CheckinService = appServices.NewCheckinService(deps.Repos.CheckinRepository, deps.Repos.StudentRepository)
	deps.HelpOrderService = appServices.NewHelpOrderService(
		deps.Repos.HelpOrderRepository,
		deps.Repos.StudentRepository,
		deps.Dispatcher,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.UserController = appControllers.NewUserController(deps.AuthService)
	deps.SessionController = appControllers.NewSessionController(deps.AuthService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.PlanController = appControllers.NewPlanController(deps.PlanService)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService)
	deps.CheckinController = appControllers.NewCheckinController(deps.CheckinService)
	deps.HelpOrderController = appControllers.NewHelpOrderController(deps.HelpOrderService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.UserController,
		deps.SessionController,
		deps.StudentController,
		deps.PlanController,
		deps.EnrollmentController,
		deps.CheckinController,
		deps.HelpOrderController,
		deps.AuthMiddleware,
	)

	// Liveness endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
