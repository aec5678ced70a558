package http

import (
	"context"

	"github.com/yago/fileuploadd/internal/modules/files/domain"
)

// FileService defines the interface for file operations
type FileService interface {
	StoreFile(ctx context.Context, originalName, contentType string, data []byte) (*domain.File, error)
	GetFile(ctx context.Context, id int64) (*domain.File, error)
	GetAllFiles(ctx context.Context) ([]domain.File, error)
	DeleteFile(ctx context.Context, id int64) error
	FileExists(ctx context.Context, name string) (bool, error)
}
