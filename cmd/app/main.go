package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/lcnogueira/plataforma-sabia/cmd"
	httpin "github.com/lcnogueira/plataforma-sabia/internal/adapters/in/http"
	"github.com/lcnogueira/plataforma-sabia/internal/adapters/out/kafka"
	"github.com/lcnogueira/plataforma-sabia/internal/adapters/out/postgres/reviewrepo"
	"github.com/lcnogueira/plataforma-sabia/internal/adapters/out/postgres/servicerepo"
	"github.com/lcnogueira/plataforma-sabia/internal/adapters/out/postgres/serviceorderrepo"
	"github.com/lcnogueira/plataforma-sabia/internal/adapters/out/postgres/technologyorderrepo"
	"github.com/lcnogueira/plataforma-sabia/internal/adapters/out/postgres/technologyrepo"
	"github.com/lcnogueira/plataforma-sabia/internal/adapters/out/postgres/userrepo"
	"github.com/lcnogueira/plataforma-sabia/internal/jobs"
	"github.com/lcnogueira/plataforma-sabia/internal/notifications"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	producer, err := kafka.NewProducer([]string{configs.KafkaHost}, configs.KafkaMailTopic, logger)
	if err != nil {
		log.Fatalf("Failed to connect to Kafka: %v", err)
	}
	defer producer.Close()

	dispatcher := notifications.NewDispatcher(producer, logger)

	jobManager := jobs.NewJobManager(dispatcher, logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	app := cmd.NewCompositionRoot(configs, gormDB)
	startWebServer(&app, configs, dispatcher)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:      goDotEnvVariable("KAFKA_HOST"),
		KafkaMailTopic: goDotEnvVariable("KAFKA_MAIL_TOPIC"),
		JWTSecret:      goDotEnvVariable("JWT_SECRET"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&technologyrepo.TechnologyDTO{},
		&technologyrepo.TechnologyUserDTO{},
		&technologyorderrepo.OrderDTO{},
		&servicerepo.ServiceDTO{},
		&serviceorderrepo.ServiceOrderDTO{},
		&reviewrepo.ReviewDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config, dispatcher *notifications.Dispatcher) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(app.CreateServerHandlers(), dispatcher)
	server.RegisterRoutes(e, app.CreateAuthMiddleware(configs))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
