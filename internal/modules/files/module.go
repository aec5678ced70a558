package files

import (
	"github.com/jmoiron/sqlx"
	goredis "github.com/redis/go-redis/v9"
	"github.com/yago/fileuploadd/internal/modules/files/application"
	"github.com/yago/fileuploadd/internal/modules/files/domain"
	"github.com/yago/fileuploadd/internal/modules/files/infrastructure/persistence/postgres"
	redisrepo "github.com/yago/fileuploadd/internal/modules/files/infrastructure/persistence/redis"
	files_http "github.com/yago/fileuploadd/internal/modules/files/interfaces/http"
	"github.com/yago/fileuploadd/internal/shared/infrastructure/config"
)

// Module wires the files metadata store, service and HTTP handler together.
type Module struct {
	repo    domain.FileRepository
	service *application.FileService
	handler *files_http.FileHandler
}

// NewModule creates and initializes the files module, selecting the metadata
// store backend from configuration.
func NewModule(db *sqlx.DB, redisClient *goredis.Client, cfg config.FileStorageConfig) *Module {
	var repo domain.FileRepository
	switch cfg.Backend {
	case "redis":
		repo = redisrepo.NewFileRepository(redisClient)
	default:
		repo = postgres.NewFileRepository(db)
	}

	service := application.NewFileService(repo, cfg)
	handler := files_http.NewFileHandler(service, cfg)

	return &Module{
		repo:    repo,
		service: service,
		handler: handler,
	}
}

// HTTPHandler returns the HTTP handler for route registration
func (m *Module) HTTPHandler() *files_http.FileHandler {
	return m.handler
}

// Service returns the file service for use by other modules
func (m *Module) Service() *application.FileService {
	return m.service
}
