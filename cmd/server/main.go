package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/jmoiron/sqlx"
	goredis "github.com/redis/go-redis/v9"
	"github.com/yago/fileuploadd/internal/gateway"
	"github.com/yago/fileuploadd/internal/gateway/middleware"
	"github.com/yago/fileuploadd/internal/modules/files"
	"github.com/yago/fileuploadd/internal/shared/infrastructure/config"
	"github.com/yago/fileuploadd/internal/shared/infrastructure/database"
	"github.com/yago/fileuploadd/pkg/migration"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	var db *sqlx.DB
	var redisClient *goredis.Client

	switch cfg.FileStorage.Backend {
	case "redis":
		var err error
		redisClient, err = database.NewRedis(cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Println("Redis connected successfully")

	default:
		var err error
		db, err = database.NewPostgres(cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to DB: %v", err)
		}
		defer db.Close()
		log.Println("Database connected successfully")

		runner := migration.NewRunner(&migration.Config{
			MigrationsPath: "migrations",
			DatabaseURL:    cfg.Database.URL(),
			Logger:         logger,
		})
		if err := runner.Up(); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	filesModule := files.NewModule(db, redisClient, cfg.FileStorage)

	mux := gateway.SetupRoutes(gateway.RouterConfig{
		FileHandler: filesModule.HTTPHandler(),
	})

	var handler http.Handler = mux
	handler = middleware.PrometheusMiddleware(handler)
	handler = middleware.RequestLogger(logger)(handler)
	handler = middleware.CORSMiddleware(handler, cfg.Server.AllowedOrigins)

	server := gateway.NewServer(cfg.Server.Port, handler)
	if err := server.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
